package worker

// receipt_worker.go
// Processes receipt jobs enqueued after a successful order: renders the PDF
// receipt and mails it to the client. Failures are logged, never retried —
// the order itself already committed.

import (
	"context"
	"encoding/json"
	"fmt"

	"orderdesk/internal/infra"
	"orderdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReceiptJobPayload is the job envelope sent to QueueReceipts.
type ReceiptJobPayload struct {
	OrderID    string `json:"order_id"`
	ToEmail    string `json:"to_email"`
	ClientName string `json:"client_name"`
}

type ReceiptWorker struct {
	orders      repository.OrderRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewReceiptWorker(orders repository.OrderRepository, mailer *infra.Mailer, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{orders: orders, mailer: mailer, storagePath: storagePath}
}

// Process loads the order, renders its PDF receipt and mails it.
func (w *ReceiptWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("receipt_worker: empty to_email — skipping")
		return
	}

	orderID, err := uuid.Parse(payload.OrderID)
	if err != nil {
		log.Error().Str("order_id", payload.OrderID).Msg("receipt_worker: invalid order id")
		return
	}
	order, err := w.orders.FindByID(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Str("order_id", payload.OrderID).Msg("receipt_worker: order not found")
		return
	}

	pdfPath, err := infra.GenerateReceiptPDF(order, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("order_id", payload.OrderID).Msg("receipt_worker: PDF generation failed")
		return
	}

	subject := fmt.Sprintf("Your order receipt — %s", payload.OrderID[:8])
	body := fmt.Sprintf("Hello %s,\n\nthank you for your order. Your receipt is attached.\n", payload.ClientName)
	if err := w.mailer.SendReceipt(payload.ToEmail, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("receipt_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Str("order_id", payload.OrderID).Msg("receipt_worker: receipt sent")
}
