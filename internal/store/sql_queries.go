package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/aprasetyo/go-data-pengguna/models"
)

const penggunaTable = "data_pengguna"

// penggunaColumns is the canonical column order used by every SELECT and
// scanned by every row reader in this package.
var penggunaColumns = []string{
	"id",
	"nama_pengguna",
	"alamat",
	"telepon",
	"kategori",
	"tipe",
	"tanggal",
}

// builderFor returns a statement builder with the placeholder format of
// the given driver ($N for Postgres, ? for SQLite).
func builderFor(driver string) sq.StatementBuilderType {
	if driver == "sqlite3" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildListPageQuery builds the windowed listing SELECT: rows ordered by
// id ascending, offset (page-1)*size, limit size.
func buildListPageQuery(driver string, page, size int) (string, []any, error) {
	offset, limit := models.Window(page, size)

	return builderFor(driver).
		Select(penggunaColumns...).
		From(penggunaTable).
		OrderBy("id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
}

// buildListAllQuery builds the unwindowed SELECT used by the CSV export.
func buildListAllQuery(driver string) (string, []any, error) {
	return builderFor(driver).
		Select(penggunaColumns...).
		From(penggunaTable).
		OrderBy("id ASC").
		ToSql()
}

// buildCountQuery builds the exact total row count query.
func buildCountQuery(driver string) (string, []any, error) {
	return builderFor(driver).
		Select("COUNT(*)").
		From(penggunaTable).
		ToSql()
}

// buildInsertQuery builds the INSERT of all fields except id. The caller
// reads the assigned id back via RETURNING (Postgres) or LastInsertId
// (SQLite).
func buildInsertQuery(driver string, record models.Pengguna) (string, []any, error) {
	builder := builderFor(driver).
		Insert(penggunaTable).
		Columns("nama_pengguna", "alamat", "telepon", "kategori", "tipe", "tanggal").
		Values(record.Nama, record.Alamat, record.Telepon, record.Kategori, record.Tipe, record.Tanggal)

	if driver != "sqlite3" {
		builder = builder.Suffix("RETURNING id")
	}

	return builder.ToSql()
}

// buildUpdateQuery builds the full-row UPDATE of exactly one id.
func buildUpdateQuery(driver string, record models.Pengguna) (string, []any, error) {
	return builderFor(driver).
		Update(penggunaTable).
		Set("nama_pengguna", record.Nama).
		Set("alamat", record.Alamat).
		Set("telepon", record.Telepon).
		Set("kategori", record.Kategori).
		Set("tipe", record.Tipe).
		Set("tanggal", record.Tanggal).
		Where(sq.Eq{"id": record.ID}).
		ToSql()
}

// buildDeleteQuery builds the DELETE of exactly one id.
func buildDeleteQuery(driver string, id int64) (string, []any, error) {
	return builderFor(driver).
		Delete(penggunaTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
