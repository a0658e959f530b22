package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
)

type unitService struct {
	BaseService
	unitRepo portsrepo.UnitRepositoryFacade
}

// NewUnitService creates a new unit of measure service.
func NewUnitService(unitRepo portsrepo.UnitRepositoryFacade, options ...ServiceOption) portssvc.UnitSvcFacade {
	return &unitService{
		BaseService: newBaseService(options...),
		unitRepo:    unitRepo,
	}
}

var _ portssvc.UnitSvcFacade = (*unitService)(nil)

func (s *unitService) CreateUnit(ctx context.Context, actorID string, req dto.CreateUnitRequest) (*domain.Unit, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: unit name must not be blank", apperrors.ErrValidation)
	}
	unit := domain.Unit{
		UnitID:      s.IDs.NewID(domain.UnitIDPrefix),
		Name:        name,
		AuditFields: auditFields(actorID, s.now()),
	}
	if err := s.unitRepo.SaveUnit(ctx, unit); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save unit", slog.String("name", name))
		}
		return nil, fmt.Errorf("failed to create unit %q: %w", name, err)
	}
	return &unit, nil
}

func (s *unitService) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	units, err := s.unitRepo.ListUnits(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list units")
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}
