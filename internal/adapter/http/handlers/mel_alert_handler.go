package handlers

import (
	"log"
	"net/http"

	response "hsj_mel/internal/adapter/http/dto/response"
	"hsj_mel/internal/usecase"
	"hsj_mel/pkg"

	"github.com/gin-gonic/gin"
)

// MelAlertHandler exposes the alert listing and the reconciliation trigger.

type MelAlertHandler struct {
	usecase usecase.IReconcileUseCase
}

func NewMelAlertHandler(uc usecase.IReconcileUseCase) *MelAlertHandler {
	return &MelAlertHandler{usecase: uc}
}

// Reconcile godoc
//
//	@Summary	Run a full alert reconciliation sweep
//	@Tags		alerts
//	@Produce	json
//	@Success	200	{object}	response.ReconcileResponse
//	@Failure	500	{object}	pkg.HTTPError
//	@Router		/reconcile [post]
func (h *MelAlertHandler) Reconcile(c *gin.Context) {
	log.Printf("[mel][handler] reconcile start")

	summary, err := h.usecase.ReconcileAll(c.Request.Context())
	if err != nil {
		log.Printf("[mel][handler] reconcile failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[mel][handler] reconcile success rules=%d created=%d resolved=%d", summary.RulesEvaluated, summary.AlertsCreated, summary.AlertsResolved)

	c.JSON(http.StatusOK, response.FromReconcileSummary(summary))
}

// ListAlerts godoc
//
//	@Summary	List MEL alerts
//	@Tags		alerts
//	@Produce	json
//	@Param		active	query		bool	false	"only active alerts"
//	@Success	200		{array}		response.MelAlertResponse
//	@Failure	500		{object}	pkg.HTTPError
//	@Router		/alerts [get]
func (h *MelAlertHandler) ListAlerts(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	alerts, err := h.usecase.ListAlerts(c.Request.Context(), activeOnly)
	if err != nil {
		log.Printf("[mel][handler] alert listing failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMelAlerts(alerts))
}
