package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/preview", h.preview)
	r.Post("/confirm", h.confirm)
	r.Post("/quick/preview", h.previewQuick)
	r.Post("/quick/confirm", h.confirmQuick)
	r.Post("/points/preview", h.previewPoints)
	r.Post("/points/confirm", h.confirmPoints)
}

type transactionRequest struct {
	Type          string     `json:"type"`
	Amount        slot.Value `json:"amount"`
	Quantity      slot.Value `json:"quantity"`
	Unit          string     `json:"unit"`
	UnitPrice     slot.Value `json:"unitPrice"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Memo          string     `json:"memo"`
	PaymentMethod string     `json:"paymentMethod"`
	Store         string     `json:"store"`
}

func (req transactionRequest) slots() transaction.Slots {
	return transaction.Slots{
		Type:          req.Type,
		Amount:        req.Amount,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		UnitPrice:     req.UnitPrice,
		Description:   req.Description,
		Category:      req.Category,
		Memo:          req.Memo,
		PaymentMethod: req.PaymentMethod,
		Store:         req.Store,
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toPreviewResponse(h.svc.Preview(req.slots())))
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toConfirmResponse(h.svc.Confirm(req.slots())))
}

type quickRequest struct {
	Amount      slot.Value `json:"amount"`
	Description string     `json:"description"`
	Payment     string     `json:"payment"`
	Store       string     `json:"store"`
}

func (req quickRequest) slots() transaction.QuickSlots {
	return transaction.QuickSlots{
		Amount:      req.Amount,
		Description: req.Description,
		Payment:     req.Payment,
		Store:       req.Store,
	}
}

func (h *Handler) previewQuick(w http.ResponseWriter, r *http.Request) {
	var req quickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toQuickPreviewResponse(h.svc.PreviewQuick(req.slots())))
}

func (h *Handler) confirmQuick(w http.ResponseWriter, r *http.Request) {
	var req quickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toConfirmResponse(h.svc.ConfirmQuick(req.slots())))
}

type pointsRequest struct {
	Amount      slot.Value `json:"amount"`
	Description string     `json:"description"`
}

func (req pointsRequest) slots() transaction.PointsSlots {
	return transaction.PointsSlots{
		Amount:      req.Amount,
		Description: req.Description,
	}
}

func (h *Handler) previewPoints(w http.ResponseWriter, r *http.Request) {
	var req pointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toPreviewResponse(h.svc.PreviewPoints(req.slots())))
}

func (h *Handler) confirmPoints(w http.ResponseWriter, r *http.Request) {
	var req pointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toConfirmResponse(h.svc.ConfirmPoints(req.slots())))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
