package handler

import (
	"errors"

	"webhook-reconciler/internal/adapter/http/dto"
	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"
	"webhook-reconciler/pkg/apperror"
	"webhook-reconciler/pkg/logger"
	"webhook-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NotificationHandler ingests provider notification batches.
type NotificationHandler struct {
	processor ports.NotificationProcessor
	sigSvc    ports.SignatureService
	hmacKey   string // empty disables signature verification
	log       zerolog.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(
	processor ports.NotificationProcessor,
	sigSvc ports.SignatureService,
	hmacKey string,
	log zerolog.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		processor: processor,
		sigSvc:    sigSvc,
		hmacKey:   hmacKey,
		log:       logger.Component(log, "notification_handler"),
	}
}

// Receive handles POST /api/v1/notifications.
//
// The whole batch is decoded and authenticated before any item is processed.
// Items are then reconciled one by one; the batch is acknowledged only when
// every item was handled, so the provider redelivers otherwise.
func (h *NotificationHandler) Receive(c *gin.Context) {
	var batch dto.NotificationBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		response.Error(c, apperror.ErrInvalidNotification(err.Error()))
		return
	}

	live := batch.IsLive()
	notifications := make([]domain.Notification, 0, len(batch.NotificationItems))
	for _, wrap := range batch.NotificationItems {
		n, err := wrap.Item.ToDomain(live)
		if err != nil {
			response.Error(c, apperror.ErrInvalidNotification(err.Error()))
			return
		}
		if !h.verify(wrap.Item, n) {
			h.log.Warn().
				Str("psp_reference", n.PSPReference).
				Str("merchant_reference", n.MerchantReference).
				Msg("notification signature mismatch")
			response.Error(c, apperror.ErrInvalidSignature())
			return
		}
		notifications = append(notifications, n)
	}

	var firstErr error
	for _, n := range notifications {
		_, err := h.processor.Process(c.Request.Context(), n)
		switch {
		case err == nil:
		case apperror.HasCode(err, apperror.CodeOrderNotFound):
			h.log.Warn().
				Str("merchant_reference", n.MerchantReference).
				Str("event_code", string(n.EventCode)).
				Msg("notification for unknown order accepted")
		default:
			h.log.Error().Err(err).
				Str("psp_reference", n.PSPReference).
				Str("merchant_reference", n.MerchantReference).
				Msg("notification processing failed")
			if firstErr == nil {
				firstErr = err
				var appErr *apperror.AppError
				if !errors.As(err, &appErr) {
					firstErr = apperror.InternalError(err)
				}
			}
		}
	}

	if firstErr != nil {
		response.Error(c, firstErr)
		return
	}
	response.Accepted(c)
}

func (h *NotificationHandler) verify(item dto.NotificationRequestItem, n domain.Notification) bool {
	if h.hmacKey == "" {
		return true
	}
	sig := item.Signature()
	if sig == "" {
		return false
	}
	return h.sigSvc.Verify(h.hmacKey, h.sigSvc.BuildCanonicalString(n), sig)
}
