package http

import (
	"github.com/MikeRez0/esimhub/internal/adapter/client/payments"
	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/MikeRez0/esimhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const signatureHeader = "Stripe-Signature"

// Larger events are refused with 413 instead of failing the signature check on a cut body.
const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	Handler
	service  port.PaymentService
	verifier *payments.WebhookVerifier
}

func NewPaymentHandler(service port.PaymentService, verifier *payments.WebhookVerifier,
	logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler:  *NewHandler(logger),
		service:  service,
		verifier: verifier,
	}, nil
}

// Webhook applies a signed payment provider event.
//
// Business errors are acknowledged with 200 so the provider stops redelivering an event
// that can never apply. Unexpected errors return 500 and the event is retried.
func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	payload, err := readBody(ctx.Request.Body, maxWebhookBody)
	if err != nil {
		ph.logger.Warn("payment event body rejected", zap.Error(err))
		ph.handleError(ctx, err)
		return
	}

	event, err := ph.verifier.Parse(payload, ctx.GetHeader(signatureHeader))
	if err != nil {
		ph.logger.Warn("rejected payment event", zap.Error(err))
		ph.handleError(ctx, err)
		return
	}

	log := ph.logger.With(
		zap.String("event_id", event.ID),
		zap.String("type", event.Type),
		zap.String("payment_intent", event.IntentID))

	switch {
	case event.Type == payments.EventPaymentSucceeded && event.Purpose == domain.PaymentPurposeTopUp:
		err = ph.service.OnTopUpSucceeded(ctx, event.ID, event.VendorID, event.Amount, event.IntentID)
	case event.Type == payments.EventPaymentSucceeded:
		err = ph.service.OnPaymentSucceeded(ctx, event.ID, event.OrderID, event.IntentID)
	case event.Type == payments.EventPaymentFailed:
		err = ph.service.OnPaymentFailed(ctx, event.ID, event.IntentID, event.Reason)
	default:
		log.Debug("payment event ignored")
	}

	if err != nil {
		if !domain.KnownError(err) {
			ph.handleError(ctx, err)
			return
		}
		log.Warn("payment event not applied", zap.Error(err))
	}

	ph.handleSuccess(ctx, webhookResponse{Received: true})
}
