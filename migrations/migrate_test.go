package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLiteUpFromScratch(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))

	// Revision 2 must be applied: the telepon column exists.
	_, err = db.Exec(`INSERT INTO data_pengguna
		(nama_pengguna, alamat, telepon, kategori, tipe, tanggal)
		VALUES ('Budi', 'Jl. Mawar', '0812', 'Perorangan', 'Nonreferal', '2024-01-05')`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM data_pengguna`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, "sqlite3"))
	require.NoError(t, Migrate(db, "sqlite3"))
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, Migrate(db, "no-such-dialect"))
}
