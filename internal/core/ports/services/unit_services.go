package services

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
)

// UnitSvcFacade defines unit of measure operations
type UnitSvcFacade interface {
	CreateUnit(ctx context.Context, actorID string, req dto.CreateUnitRequest) (*domain.Unit, error)
	ListUnits(ctx context.Context) ([]domain.Unit, error)
}
