package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/core/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUnit_TrimsNameAndAudits(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUnitRepository)
	svc := services.NewUnitService(repo, services.WithIDGenerator(&sequenceIDs{}), services.WithClock(fixedClock))
	repo.On("SaveUnit", ctx, mock.MatchedBy(func(u domain.Unit) bool {
		return u.UnitID == "unit_1" && u.Name == "kg" && u.CreatedBy == "emp_admin" && u.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	unit, err := svc.CreateUnit(ctx, "emp_admin", dto.CreateUnitRequest{Name: "  kg "})

	require.NoError(t, err)
	assert.Equal(t, "kg", unit.Name)
	repo.AssertExpectations(t)
}

func TestCreateUnit_RejectsBlankName(t *testing.T) {
	repo := new(MockUnitRepository)
	svc := services.NewUnitService(repo)

	_, err := svc.CreateUnit(context.Background(), "emp_admin", dto.CreateUnitRequest{Name: "   "})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveUnit", mock.Anything, mock.Anything)
}

func TestCreateUnit_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUnitRepository)
	svc := services.NewUnitService(repo)
	repo.On("SaveUnit", ctx, mock.Anything).Return(fmt.Errorf("failed to save unit: %w", apperrors.ErrDuplicate))

	_, err := svc.CreateUnit(ctx, "emp_admin", dto.CreateUnitRequest{Name: "dona"})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
