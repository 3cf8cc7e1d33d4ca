package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"qrpay/cmd/web/validator"
	"qrpay/internal/payment"
)

type PaymentServiceContract interface {
	Initiate(ctx context.Context, req payment.InitiateRequest) (*payment.Payment, error)
	GetStatus(ctx context.Context, paymentID string) (*payment.Payment, error)
}

type Payment struct {
	json    *validator.JSON
	payment PaymentServiceContract
}

func NewPayment(jsonV *validator.JSON, paymentSvc PaymentServiceContract) *Payment {
	return &Payment{json: jsonV, payment: paymentSvc}
}

type createPaymentReq struct {
	SessionID string  `json:"sessionId"`
	Amount    float64 `json:"amount"`
}

type createPaymentResp struct {
	PaymentID string         `json:"paymentId"`
	Status    payment.Status `json:"status"`
	Amount    float64        `json:"amount"`
}

type paymentStatusResp struct {
	ID     string         `json:"id"`
	Status payment.Status `json:"status"`
	Amount float64        `json:"amount"`
}

func (h *Payment) Create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentReq
	if err := h.json.Decode(w, r, &req); err != nil {
		log.Printf("layer=handler component=payment method=Create err=%v", err)
		writeError(w, http.StatusBadRequest, "sessionId and amount required")
		return
	}

	p, err := h.payment.Initiate(r.Context(), payment.ToInitiateRequest(req.SessionID, req.Amount))
	if err != nil {
		log.Printf("layer=handler component=payment method=Create session_id=%s err=%v", req.SessionID, err)
		switch {
		case errors.Is(err, payment.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, "sessionId and amount required")
		case errors.Is(err, payment.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "Session not found")
		case errors.Is(err, payment.ErrSessionExpired):
			writeError(w, http.StatusUnauthorized, "Session expired")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create payment")
		}
		return
	}

	writeJSON(w, http.StatusOK, createPaymentResp{PaymentID: p.ID, Status: p.Status, Amount: p.Amount})
}

func (h *Payment) Get(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")
	p, err := h.payment.GetStatus(r.Context(), paymentID)
	if err != nil {
		log.Printf("layer=handler component=payment method=Get payment_id=%s err=%v", paymentID, err)
		if errors.Is(err, payment.ErrPaymentNotFound) {
			writeError(w, http.StatusNotFound, "Payment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load payment")
		return
	}
	writeJSON(w, http.StatusOK, paymentStatusResp{ID: p.ID, Status: p.Status, Amount: p.Amount})
}
