package dto

import "github.com/SscSPs/pos_backend/internal/core/domain"

// CreateUnitRequest defines the data needed to create a unit of measure.
type CreateUnitRequest struct {
	Name string `json:"name" binding:"required,max=32"`
}

// UnitResponse defines the data returned for a unit.
type UnitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToUnitResponse(u *domain.Unit) UnitResponse {
	return UnitResponse{ID: u.UnitID, Name: u.Name}
}

func ToListUnitResponse(units []domain.Unit) []UnitResponse {
	res := make([]UnitResponse, len(units))
	for i := range units {
		res[i] = ToUnitResponse(&units[i])
	}
	return res
}
