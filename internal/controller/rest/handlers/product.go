package handlers

import (
	"errors"
	"io"
	"net/http"

	"PlanSync/internal/domain/plan"
	"PlanSync/internal/webhook"

	"github.com/gin-gonic/gin"
)

const maxNotificationBytes = 1 << 20

type ProductHandler struct {
	sync *webhook.ProductSyncHandler
}

func NewProductHandler(h *webhook.ProductSyncHandler) *ProductHandler {
	return &ProductHandler{sync: h}
}

func (h *ProductHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxNotificationBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unreadable body"})
		return
	}

	resp, err := h.sync.Handle(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, plan.ErrMalformedInput) && h.sync.Mode() == webhook.ModeNormalized {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	for k, v := range resp.Headers {
		c.Header(k, v)
	}

	if resp.Skipped() {
		c.Status(http.StatusNoContent)
		return
	}

	// A legacy failure has no status code of its own; HTTP needs one.
	status := http.StatusOK
	if resp.StatusCode != nil {
		status = *resp.StatusCode
	}
	c.Data(status, "application/json; charset=utf-8", []byte(resp.Body))
}
