package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/models"
	"github.com/SscSPs/pos_backend/internal/utils/mapping"
)

const unitColumns = `unit_id, name, created_at, created_by, last_updated_at, last_updated_by`

type PgxUnitRepository struct {
	db querier
}

func newPgxUnitRepository(db querier) *PgxUnitRepository {
	return &PgxUnitRepository{db: db}
}

var _ portsrepo.UnitRepositoryFacade = (*PgxUnitRepository)(nil)

func (r *PgxUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	m := mapping.ToModelUnit(unit)
	query := `
		INSERT INTO units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query, m.UnitID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapPgError("failed to save unit", err)
	}
	return nil
}

func (r *PgxUnitRepository) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	rows, err := r.db.Query(ctx, `SELECT `+unitColumns+` FROM units ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	ms := []models.Unit{}
	for rows.Next() {
		var m models.Unit
		if err := rows.Scan(&m.UnitID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan unit row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit rows: %w", err)
	}
	return mapping.ToDomainUnitSlice(ms), nil
}
