package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"qrpay/cmd/web/validator"
	"qrpay/internal/business"
	"qrpay/kit/linksign"
)

type BusinessServiceContract interface {
	Register(ctx context.Context, req business.RegisterRequest) (*business.Registration, error)
	List(ctx context.Context) ([]*business.Business, error)
	Deactivate(ctx context.Context, businessID string) (*business.Business, error)
	IssueLink(ctx context.Context, businessID string) (linksign.Link, error)
}

type Business struct {
	json     *validator.JSON
	business BusinessServiceContract
}

func NewBusiness(jsonV *validator.JSON, svc BusinessServiceContract) *Business {
	return &Business{json: jsonV, business: svc}
}

type registerBusinessReq struct {
	DisplayName    string         `json:"displayName"`
	Message        string         `json:"message"`
	PaymentType    string         `json:"paymentType"`
	PaymentDetails map[string]any `json:"paymentDetails"`
}

type registerBusinessResp struct {
	ID             string         `json:"id"`
	DisplayName    string         `json:"displayName"`
	Message        string         `json:"message"`
	PaymentType    string         `json:"paymentType"`
	PaymentDetails map[string]any `json:"paymentDetails"`
	QRURL          string         `json:"qrUrl"`
	QRImage        string         `json:"qrImage"`
	ExpiresAt      int64          `json:"expiresAt"`
}

type businessListItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Message     string `json:"message"`
	PaymentType string `json:"paymentType"`
	IsActive    bool   `json:"isActive"`
}

type linkResp struct {
	BusinessID string `json:"businessId"`
	QRURL      string `json:"qrUrl"`
	QRImage    string `json:"qrImage"`
	ExpiresAt  int64  `json:"expiresAt"`
}

func (h *Business) Register(w http.ResponseWriter, r *http.Request) {
	var req registerBusinessReq
	if err := h.json.Decode(w, r, &req); err != nil {
		log.Printf("layer=handler component=business method=Register err=%v", err)
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	reg, err := h.business.Register(r.Context(), business.ToRegisterRequest(req.DisplayName, req.Message, req.PaymentType, req.PaymentDetails))
	if err != nil {
		log.Printf("layer=handler component=business method=Register err=%v", err)
		if errors.Is(err, business.ErrInvalidBusiness) {
			writeError(w, http.StatusBadRequest, "displayName required")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create business")
		return
	}

	b := reg.Business
	writeJSON(w, http.StatusOK, registerBusinessResp{
		ID:             b.ID,
		DisplayName:    b.DisplayName,
		Message:        b.Message,
		PaymentType:    b.PaymentType,
		PaymentDetails: b.PaymentDetails,
		QRURL:          reg.Link.URL,
		QRImage:        reg.Link.Image,
		ExpiresAt:      reg.Link.ExpiresAt,
	})
}

func (h *Business) List(w http.ResponseWriter, r *http.Request) {
	bs, err := h.business.List(r.Context())
	if err != nil {
		log.Printf("layer=handler component=business method=List err=%v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list businesses")
		return
	}
	out := make([]businessListItem, 0, len(bs))
	for _, b := range bs {
		out = append(out, businessListItem{ID: b.ID, DisplayName: b.DisplayName, Message: b.Message, PaymentType: b.PaymentType, IsActive: b.Active})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Business) Deactivate(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	b, err := h.business.Deactivate(r.Context(), businessID)
	if err != nil {
		log.Printf("layer=handler component=business method=Deactivate business_id=%s err=%v", businessID, err)
		if errors.Is(err, business.ErrBusinessNotFound) {
			writeError(w, http.StatusNotFound, "Business not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to deactivate business")
		return
	}
	writeJSON(w, http.StatusOK, businessListItem{ID: b.ID, DisplayName: b.DisplayName, Message: b.Message, PaymentType: b.PaymentType, IsActive: b.Active})
}

func (h *Business) IssueLink(w http.ResponseWriter, r *http.Request) {
	businessID := chi.URLParam(r, "businessID")
	link, err := h.business.IssueLink(r.Context(), businessID)
	if err != nil {
		log.Printf("layer=handler component=business method=IssueLink business_id=%s err=%v", businessID, err)
		if errors.Is(err, business.ErrBusinessNotFound) {
			writeError(w, http.StatusNotFound, "Business not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to issue link")
		return
	}
	writeJSON(w, http.StatusOK, linkResp{BusinessID: businessID, QRURL: link.URL, QRImage: link.Image, ExpiresAt: link.ExpiresAt})
}
