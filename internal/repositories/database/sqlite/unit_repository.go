package sqlite

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/SscSPs/pos_backend/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

const unitColumns = `unit_id, name, created_at, created_by, last_updated_at, last_updated_by`

type SQLiteUnitRepository struct {
	db sqlx.ExtContext
}

func newSQLiteUnitRepository(db sqlx.ExtContext) *SQLiteUnitRepository {
	return &SQLiteUnitRepository{db: db}
}

var _ portsrepo.UnitRepositoryFacade = (*SQLiteUnitRepository)(nil)

func (r *SQLiteUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES (:unit_id, :name, :created_at, :created_by, :last_updated_at, :last_updated_by)`
	if _, err := sqlx.NamedExecContext(ctx, r.db, query, mapping.ToModelUnit(unit)); err != nil {
		return mapSQLiteError("failed to save unit", err)
	}
	return nil
}

func (r *SQLiteUnitRepository) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	ms := []models.Unit{}
	if err := sqlx.SelectContext(ctx, r.db, &ms, `SELECT `+unitColumns+` FROM units ORDER BY name`); err != nil {
		return nil, mapSQLiteError("failed to query units", err)
	}
	return mapping.ToDomainUnitSlice(ms), nil
}
