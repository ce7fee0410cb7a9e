package handlers

import (
	"errors"
	"log"
	"net/http"

	response "hsj_mel/internal/adapter/http/dto/response"
	"hsj_mel/internal/usecase"
	"hsj_mel/pkg"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the read side of the evaluation engine.

type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

// GetAvailability godoc
//
//	@Summary	Compute availability for one sector and equipment group
//	@Tags		availability
//	@Produce	json
//	@Param		sector_id	path		string	true	"sector id"
//	@Param		group_key	path		string	true	"equipment group key"
//	@Success	200			{object}	response.AvailabilityResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/availability/{sector_id}/{group_key} [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	sectorID := c.Param("sector_id")
	groupKey := c.Param("group_key")
	log.Printf("[mel][handler] availability start sector_id=%s group_key=%s", sectorID, groupKey)

	report, err := h.usecase.ComputeAvailability(c.Request.Context(), sectorID, groupKey)
	if err != nil {
		log.Printf("[mel][handler] availability failed sector_id=%s group_key=%s err=%v", sectorID, groupKey, err)
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[mel][handler] availability success sector_id=%s group_key=%s available=%d total=%d in_alert=%t",
		sectorID, groupKey, report.Available, report.Total, report.InAlert)

	c.JSON(http.StatusOK, response.FromAvailabilityReport(report))
}

// ListSectorGroups godoc
//
//	@Summary	List availability across all equipment groups of a sector
//	@Tags		availability
//	@Produce	json
//	@Param		sector_id	path		string	true	"sector id"
//	@Success	200			{array}		response.SectorGroupResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Router		/sectors/{sector_id}/groups [get]
func (h *AvailabilityHandler) ListSectorGroups(c *gin.Context) {
	sectorID := c.Param("sector_id")

	reports, err := h.usecase.ListGroupsForSector(c.Request.Context(), sectorID)
	if err != nil {
		log.Printf("[mel][handler] sector groups failed sector_id=%s err=%v", sectorID, err)
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSectorGroupReports(reports))
}

func mapAvailabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSectorID), errors.Is(err, usecase.ErrInvalidGroupKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMelRuleNotFound):
		return pkg.NewDomainErrorSimple("RULE_NOT_FOUND", "Rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
