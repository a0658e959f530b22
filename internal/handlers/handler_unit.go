package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type unitHandler struct {
	unitService portssvc.UnitSvcFacade
}

// RegisterUnitRoutes registers routes for units of measure.
func RegisterUnitRoutes(rg *gin.RouterGroup, unitService portssvc.UnitSvcFacade) {
	h := &unitHandler{unitService: unitService}

	units := rg.Group("/units")
	{
		units.POST("", h.createUnit)
		units.GET("", h.listUnits)
	}
}

// createUnit godoc
// @Summary Create a unit of measure
// @Tags units
// @Accept  json
// @Produce  json
// @Param   unit body dto.CreateUnitRequest true "Unit details"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Unit already exists"
// @Failure 500 {object} ErrorResponse "Failed to create unit"
// @Security BearerAuth
// @Router /units [post]
func (h *unitHandler) createUnit(c *gin.Context) {
	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), actorID, req)
	if err != nil {
		respondServiceError(c, err, http.StatusBadRequest, "Failed to create unit")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

// listUnits godoc
// @Summary List units of measure
// @Tags units
// @Produce  json
// @Success 200 {array} dto.UnitResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list units"
// @Security BearerAuth
// @Router /units [get]
func (h *unitHandler) listUnits(c *gin.Context) {
	units, err := h.unitService.ListUnits(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, http.StatusInternalServerError, "Failed to list units")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUnitResponse(units))
}
