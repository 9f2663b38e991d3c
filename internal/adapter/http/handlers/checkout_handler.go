package handlers

import (
	"errors"
	"log"
	"net/http"

	request "veredicto/internal/adapter/http/dto/request"
	response "veredicto/internal/adapter/http/dto/response"
	"veredicto/internal/domain/entities"
	"veredicto/internal/usecase"
	"veredicto/internal/usecase/interfaces"
	"veredicto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler starts provider checkout sessions for the two paid tiers.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckoutSession starts a verdict checkout.
//
//	@Summary      Start a verdict checkout
//	@Description  Opens a provider checkout session for the full report.
//	@Tags         checkout
//	@Accept       json
//	@Produce      json
//	@Param        payload  body      request.CheckoutRequest  true  "Checkout intent"
//	@Success      200      {object}  response.CheckoutResponse
//	@Failure      400      {object}  pkg.HTTPError
//	@Failure      404      {object}  pkg.HTTPError
//	@Failure      503      {object}  pkg.HTTPError
//	@Router       /create-checkout-session [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	h.startCheckout(c, payload.ReportID, payload.Email, entities.TierVerdict)
}

// CreateRepairCheckoutSession starts a repair checkout. The report must
// already have a paid verdict.
//
//	@Summary      Start a repair checkout
//	@Description  Opens a provider checkout session for the repair plan. Requires a paid verdict.
//	@Tags         checkout
//	@Accept       json
//	@Produce      json
//	@Param        payload  body      request.RepairCheckoutRequest  true  "Checkout intent"
//	@Success      200      {object}  response.CheckoutResponse
//	@Failure      400      {object}  pkg.HTTPError
//	@Failure      404      {object}  pkg.HTTPError
//	@Failure      409      {object}  pkg.HTTPError
//	@Failure      503      {object}  pkg.HTTPError
//	@Router       /create-repair-checkout-session [post]
func (h *CheckoutHandler) CreateRepairCheckoutSession(c *gin.Context) {
	var payload request.RepairCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	h.startCheckout(c, payload.ReportID, payload.Email, entities.TierRepair)
}

func (h *CheckoutHandler) startCheckout(c *gin.Context, reportID, email string, tier entities.Tier) {
	log.Printf("[checkout][handler] start report_id=%s tier=%s", reportID, tier)

	url, err := h.usecase.StartCheckout(c.Request.Context(), reportID, email, tier)
	if err != nil {
		log.Printf("[checkout][handler] failed report_id=%s tier=%s err=%v", reportID, tier, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] success report_id=%s tier=%s", reportID, tier)

	c.JSON(http.StatusOK, response.CheckoutResponse{CheckoutURL: url})
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportID),
		errors.Is(err, usecase.ErrInvalidCheckoutEmail),
		errors.Is(err, usecase.ErrInvalidTier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepairNotUnlocked):
		return pkg.NewDomainErrorSimple("REPAIR_NOT_UNLOCKED", "Repair plan requires a paid verdict", http.StatusConflict)
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
