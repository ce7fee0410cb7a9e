package handlers

import (
	"errors"
	"net/http"

	request "hsj_mel/internal/adapter/http/dto/request"
	response "hsj_mel/internal/adapter/http/dto/response"
	"hsj_mel/internal/usecase"
	"hsj_mel/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRulePayload = pkg.NewDomainErrorSimple("INVALID_RULE_INPUT", "Invalid rule payload", http.StatusBadRequest)
)

// MelRuleHandler handles HTTP requests for sector MEL rule administration.

type MelRuleHandler struct {
	usecase usecase.IMelRuleUseCase
}

func NewMelRuleHandler(uc usecase.IMelRuleUseCase) *MelRuleHandler {
	return &MelRuleHandler{usecase: uc}
}

// CreateRule godoc
//
//	@Summary	Create a sector MEL rule
//	@Tags		rules
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.MelRuleCreateRequest	true	"rule"
//	@Success	201		{object}	response.MelRuleResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/rules [post]
func (h *MelRuleHandler) CreateRule(c *gin.Context) {
	var payload request.MelRuleCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.Create(c.Request.Context(), payload.ResolveInput())
	if err != nil {
		appErr := mapMelRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMelRule(rule))
}

// GetRule godoc
//
//	@Summary	Get one sector MEL rule
//	@Tags		rules
//	@Produce	json
//	@Param		sector_id	path		string	true	"sector id"
//	@Param		group_key	path		string	true	"equipment group key"
//	@Success	200			{object}	response.MelRuleResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/rules/{sector_id}/{group_key} [get]
func (h *MelRuleHandler) GetRule(c *gin.Context) {
	rule, err := h.usecase.GetByKey(c.Request.Context(), c.Param("sector_id"), c.Param("group_key"))
	if err != nil {
		appErr := mapMelRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMelRule(rule))
}

// ListRules godoc
//
//	@Summary	List sector MEL rules
//	@Tags		rules
//	@Produce	json
//	@Param		active	query		bool	false	"only active rules"
//	@Success	200		{array}		response.MelRuleResponse
//	@Router		/rules [get]
func (h *MelRuleHandler) ListRules(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	rules, err := h.usecase.List(c.Request.Context(), activeOnly)
	if err != nil {
		appErr := mapMelRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMelRules(rules))
}

// UpdateRule godoc
//
//	@Summary	Update a sector MEL rule
//	@Tags		rules
//	@Accept		json
//	@Produce	json
//	@Param		sector_id	path		string						true	"sector id"
//	@Param		group_key	path		string						true	"equipment group key"
//	@Param		payload		body		request.MelRuleUpdateRequest	true	"partial update"
//	@Success	200			{object}	response.MelRuleResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/rules/{sector_id}/{group_key} [put]
func (h *MelRuleHandler) UpdateRule(c *gin.Context) {
	var payload request.MelRuleUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}
	if payload.IsEmpty() {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.Update(c.Request.Context(), c.Param("sector_id"), c.Param("group_key"), payload.ResolveInput())
	if err != nil {
		appErr := mapMelRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMelRule(rule))
}

// DeleteRule godoc
//
//	@Summary	Delete a sector MEL rule
//	@Tags		rules
//	@Param		sector_id	path	string	true	"sector id"
//	@Param		group_key	path	string	true	"equipment group key"
//	@Success	204
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/rules/{sector_id}/{group_key} [delete]
func (h *MelRuleHandler) DeleteRule(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("sector_id"), c.Param("group_key")); err != nil {
		appErr := mapMelRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapMelRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSectorID), errors.Is(err, usecase.ErrInvalidSectorName),
		errors.Is(err, usecase.ErrInvalidGroupKey), errors.Is(err, usecase.ErrInvalidMinimumQuantity),
		errors.Is(err, usecase.ErrInvalidDefinition):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMelRuleAlreadyExists):
		return pkg.NewDomainErrorSimple("RULE_ALREADY_EXISTS", "A rule already exists for this sector and equipment group", http.StatusConflict)
	case errors.Is(err, usecase.ErrMelRuleNotFound):
		return pkg.NewDomainErrorSimple("RULE_NOT_FOUND", "Rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
