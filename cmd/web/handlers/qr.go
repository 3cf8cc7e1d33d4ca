package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"qrpay/cmd/web/validator"
	"qrpay/internal/business"
	"qrpay/internal/session"
)

type SessionServiceContract interface {
	Redeem(ctx context.Context, req session.RedeemRequest) (*session.Redemption, error)
}

type QR struct {
	json    *validator.JSON
	session SessionServiceContract
}

func NewQR(jsonV *validator.JSON, svc SessionServiceContract) *QR {
	return &QR{json: jsonV, session: svc}
}

type validateQRReq struct {
	BusinessID string          `json:"businessId"`
	Version    validator.Int64 `json:"v"`
	ExpiresAt  validator.Int64 `json:"exp"`
	Signature  string          `json:"sig"`
}

type validateQRResp struct {
	SessionID string              `json:"sessionId"`
	ExpiresAt int64               `json:"expiresAt"`
	Business  business.PublicView `json:"business"`
}

// Validate redeems a scanned link into a new payment session.
func (h *QR) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateQRReq
	if err := h.json.Decode(w, r, &req); err != nil {
		log.Printf("layer=handler component=qr method=Validate err=%v", err)
		writeError(w, http.StatusBadRequest, "Missing QR parameters")
		return
	}

	red, err := h.session.Redeem(r.Context(), session.ToRedeemRequest(req.BusinessID, req.Version.Ptr(), req.ExpiresAt.Ptr(), req.Signature))
	if err != nil {
		log.Printf("layer=handler component=qr method=Validate business_id=%s err=%v", req.BusinessID, err)
		status, msg := redeemFailure(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, validateQRResp{SessionID: red.Session.ID, ExpiresAt: red.Session.ExpiresAt, Business: red.Business})
}

func redeemFailure(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrMissingParameters):
		return http.StatusBadRequest, "Missing QR parameters"
	case errors.Is(err, session.ErrInvalidSignature):
		return http.StatusUnauthorized, "Invalid QR signature"
	case errors.Is(err, session.ErrLinkExpired):
		return http.StatusUnauthorized, "QR expired"
	case errors.Is(err, session.ErrBusinessNotFound):
		return http.StatusNotFound, "Business not found"
	default:
		return http.StatusInternalServerError, "Failed to validate QR"
	}
}
