package handlers

import (
	"log"
	"net/http"

	"veredicto/internal/usecase"
	"veredicto/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives provider payment notifications.
//
// Status codes drive provider retry behavior: 400 tells the provider the
// delivery was bad (it retries with the same event); 200 acknowledges it.
// Everything past signature/schema validation is acknowledged even on
// failure, because the ingest path is idempotent and redelivery plus the
// recovery sweep finish the job.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Handle ingests one raw notification.
//
//	@Summary      Payment provider webhook
//	@Description  Verifies and applies a payment notification. Body is the raw provider payload.
//	@Tags         webhooks
//	@Accept       json
//	@Produce      json
//	@Success      200  {object}  map[string]string
//	@Failure      400  {object}  pkg.HTTPError
//	@Router       /webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.ProcessWebhook(c.Request.Context(), payload, c.Request.Header); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Webhook rejected", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
