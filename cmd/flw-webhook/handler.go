package main

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	flw "github.com/KriaaCompany/flw-sdk"
	"github.com/KriaaCompany/flw-sdk/inbound"
	"github.com/KriaaCompany/flw-sdk/internal/logger"
)

// Handler serves Flutterwave webhooks and payment redirects
type Handler struct {
	client *flw.Client
	logger *logger.Logger
}

func NewHandler(client *flw.Client, log *logger.Logger) *Handler {
	return &Handler{client: client, logger: log}
}

// NewRouter registers the handler routes on a gin engine
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/webhooks/flutterwave", h.HandleWebhook)
	router.GET("/payments/callback", h.HandleCallback)

	return router
}

// HandleWebhook handles POST /webhooks/flutterwave
func (h *Handler) HandleWebhook(c *gin.Context) {
	if !h.client.VerifyWebhook(inbound.FromGin(c)) {
		h.logger.Warnw("rejected flutterwave webhook with bad verif-hash",
			"remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := h.client.ParseWebhookEvent(body)
	if err != nil {
		h.logger.Errorw("failed to parse flutterwave webhook", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	h.logger.Infow("received flutterwave webhook",
		"event", event.Type,
		"id", event.ID,
		"tx_ref", event.TxRef,
		"reference", event.Reference,
		"status", event.Status)

	// charge status is taken from the verify endpoint, not the webhook body
	verified := ""
	if event.Type == flw.WebhookEventChargeCompleted && event.ID != "" {
		resp, err := h.client.VerifyTransaction(c.Request.Context(), event.ID)
		if err != nil {
			h.logger.Errorw("failed to verify transaction", "id", event.ID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "verification failed"})
			return
		}
		if data := resp.Data(); data != nil {
			verified, _ = data["status"].(string)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"received":        true,
		"event":           event.Type,
		"verified_status": verified,
	})
}

// HandleCallback handles the GET /payments/callback redirect
func (h *Handler) HandleCallback(c *gin.Context) {
	id, err := h.client.GetTransactionIDFromCallback(inbound.FromGin(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing transaction id",
			"hints": flw.Hints(err),
		})
		return
	}

	resp, err := h.client.VerifyTransaction(c.Request.Context(), id)
	if err != nil {
		h.logger.Errorw("failed to verify transaction", "id", id, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "verification failed"})
		return
	}

	tx, err := flw.DecodeTransaction(resp)
	if err != nil {
		h.logger.Errorw("unexpected verify response", "id", id, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transaction_id": id,
		"provider":       resp.Status(),
		"status":         tx.Status,
		"tx_ref":         tx.TxRef,
		"amount":         tx.Amount.String(),
		"currency":       tx.Currency,
	})
}
