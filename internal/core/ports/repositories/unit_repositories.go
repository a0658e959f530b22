package repositories

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
)

// UnitRepositoryFacade stores units of measure. SaveUnit returns apperrors.ErrDuplicate when
// the name is taken.
type UnitRepositoryFacade interface {
	SaveUnit(ctx context.Context, unit domain.Unit) error
	ListUnits(ctx context.Context) ([]domain.Unit, error)
}
