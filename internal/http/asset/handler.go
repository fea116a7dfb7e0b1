package asset

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgervoice/internal/asset"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
)

type Handler struct {
	svc *asset.Service
}

func NewHandler(svc *asset.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/preview", h.preview)
	r.Post("/confirm", h.confirm)
}

type assetRequest struct {
	Category string     `json:"category"`
	Name     string     `json:"name"`
	Amount   slot.Value `json:"amount"`
	Location string     `json:"location"`
	Memo     string     `json:"memo"`
}

func (req assetRequest) slots() asset.Slots {
	return asset.Slots{
		Category: req.Category,
		Name:     req.Name,
		Amount:   req.Amount,
		Location: req.Location,
		Memo:     req.Memo,
	}
}

type recordResponse struct {
	Category asset.Category `json:"category"`
	Name     string         `json:"name,omitempty"`
	Amount   *string        `json:"amount,omitempty"`
	Location string         `json:"location,omitempty"`
	Memo     string         `json:"memo,omitempty"`
}

type previewResponse struct {
	Record  recordResponse `json:"record"`
	Message string         `json:"message"`
}

type confirmResponse struct {
	Success  bool   `json:"success"`
	DeepLink string `json:"deepLink"`
	Message  string `json:"message"`
}

func toRecordResponse(rec asset.Record) recordResponse {
	resp := recordResponse{
		Category: rec.Category,
		Name:     rec.Name,
		Location: rec.Location,
		Memo:     rec.Memo,
	}

	if rec.Amount.Valid {
		s := rec.Amount.Decimal.String()
		resp.Amount = &s
	}

	return resp
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := h.svc.Preview(req.slots())

	writeJSON(w, previewResponse{Record: toRecordResponse(p.Record), Message: p.Message})
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := h.svc.Confirm(req.slots())

	writeJSON(w, confirmResponse{Success: c.Success, DeepLink: c.DeepLink, Message: c.Message})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
