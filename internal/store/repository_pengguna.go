package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aprasetyo/go-data-pengguna/internal/logger"
	"github.com/aprasetyo/go-data-pengguna/models"
)

// penggunaRepository is the database-backed implementation of
// [PenggunaRepository]. It executes all CRUD operations directly against
// the data_pengguna table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields.
type penggunaRepository struct {
	*DB
	logger *logger.Logger
}

// NewPenggunaRepository constructs a [PenggunaRepository] backed by the
// provided database connection and logger.
func NewPenggunaRepository(db *DB, logger *logger.Logger) PenggunaRepository {
	return &penggunaRepository{
		DB:     db,
		logger: logger,
	}
}

// ListPage retrieves one window over the table, ordered by id ascending,
// together with the exact total row count.
func (p *penggunaRepository) ListPage(ctx context.Context, page, size int) (models.Page, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPageQuery(p.driver, page, size)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.ListPage").
			Int("page", page).
			Msg("failed to build listing query")
		return models.Page{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.ListPage").
			Int("page", page).
			Msg("failed to execute listing query")
		return models.Page{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items, err := scanPenggunaRows(rows)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.ListPage").
			Int("page", page).
			Msg("failed to scan listing rows")
		return models.Page{}, err
	}

	total, err := p.countAll(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.ListPage").
			Msg("failed to count rows")
		return models.Page{}, err
	}

	if page < 1 {
		page = 1
	}

	return models.Page{Items: items, Number: page, Total: total}, nil
}

// ListAll retrieves the entire table ordered by id ascending.
// Returns an empty slice when the table is empty.
func (p *penggunaRepository) ListAll(ctx context.Context) ([]models.Pengguna, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAllQuery(p.driver)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.ListAll").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.ListAll").
			Msg("failed to execute query for getting all rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items, err := scanPenggunaRows(rows)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.ListAll").
			Msg("failed to scan rows")
		return nil, err
	}

	return items, nil
}

// Insert appends one row and returns the stored record with the id the
// database assigned.
func (p *penggunaRepository) Insert(ctx context.Context, record models.Pengguna) (models.Pengguna, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuery(p.driver, record)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.Insert").
			Msg("failed to build insert query")
		return models.Pengguna{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if p.driver == "sqlite3" {
		res, execErr := p.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return models.Pengguna{}, p.classifyExecError(log, "penggunaRepository.Insert", execErr)
		}

		id, idErr := res.LastInsertId()
		if idErr != nil {
			log.Err(idErr).
				Str("func", "penggunaRepository.Insert").
				Msg("failed to read assigned row id")
			return models.Pengguna{}, fmt.Errorf("%w: %w", ErrPenggunaNotSaved, idErr)
		}

		record.ID = id
		return record, nil
	}

	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&record.ID); err != nil {
		return models.Pengguna{}, p.classifyExecError(log, "penggunaRepository.Insert", err)
	}

	return record, nil
}

// Update mutates all fields of exactly one row. A zero affected-row count
// maps to ErrPenggunaNotFound.
func (p *penggunaRepository) Update(ctx context.Context, record models.Pengguna) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(p.driver, record)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.Update").
			Int64("id", record.ID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return p.classifyExecError(log, "penggunaRepository.Update", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.Update").
			Int64("id", record.ID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPenggunaNotFound
	}

	return nil
}

// Delete removes exactly one row by id. A zero affected-row count maps to
// ErrPenggunaNotFound.
func (p *penggunaRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(p.driver, id)
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.Delete").
			Int64("id", id).
			Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return p.classifyExecError(log, "penggunaRepository.Delete", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "penggunaRepository.Delete").
			Int64("id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPenggunaNotFound
	}

	return nil
}

func (p *penggunaRepository) countAll(ctx context.Context) (int64, error) {
	query, args, err := buildCountQuery(p.driver)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func (p *penggunaRepository) classifyExecError(log *logger.Logger, fn string, err error) error {
	if isConstraintViolation(err) {
		log.Err(err).Str("func", fn).Msg("statement rejected by table constraint")
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	log.Err(err).Str("func", fn).Msg("failed to execute statement")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func scanPenggunaRows(rows *sql.Rows) ([]models.Pengguna, error) {
	items := make([]models.Pengguna, 0, models.DefaultPageSize)

	for rows.Next() {
		var item models.Pengguna

		scanErr := rows.Scan(
			&item.ID,
			&item.Nama,
			&item.Alamat,
			&item.Telepon,
			&item.Kategori,
			&item.Tipe,
			&item.Tanggal,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
