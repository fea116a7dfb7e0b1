package food

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgervoice/internal/food"
	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
)

type Handler struct {
	svc *food.Service
}

func NewHandler(svc *food.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/preview", h.preview)
	r.Post("/confirm", h.confirm)
	r.Post("/upsert", h.upsert)
}

type foodRequest struct {
	Name         string     `json:"name"`
	Quantity     slot.Value `json:"quantity"`
	Unit         string     `json:"unit"`
	Location     string     `json:"location"`
	Category     string     `json:"category"`
	Supplier     string     `json:"supplier"`
	Memo         string     `json:"memo"`
	PurchaseDate string     `json:"purchaseDate"`
	HealthTags   string     `json:"healthTags"`
	ExpiryDays   slot.Value `json:"expiryDays"`
	ExpiryText   string     `json:"expiryText"`
	Price        slot.Value `json:"price"`
}

func (req foodRequest) slots() food.Slots {
	return food.Slots{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Location:     req.Location,
		Category:     req.Category,
		Supplier:     req.Supplier,
		Memo:         req.Memo,
		PurchaseDate: req.PurchaseDate,
		HealthTags:   req.HealthTags,
		ExpiryDays:   req.ExpiryDays,
		ExpiryText:   req.ExpiryText,
		Price:        req.Price,
	}
}

type recordResponse struct {
	Name            string  `json:"name,omitempty"`
	Quantity        *string `json:"quantity,omitempty"`
	Unit            string  `json:"unit,omitempty"`
	Location        string  `json:"location,omitempty"`
	Category        string  `json:"category,omitempty"`
	Supplier        string  `json:"supplier,omitempty"`
	Memo            string  `json:"memo,omitempty"`
	PurchaseDate    string  `json:"purchaseDate,omitempty"`
	HealthTags      string  `json:"healthTags,omitempty"`
	ExpiryDayOffset *int    `json:"expiryDayOffset,omitempty"`
	Price           *string `json:"price,omitempty"`
}

type previewResponse struct {
	Record  recordResponse `json:"record"`
	Message string         `json:"message"`
}

type resultResponse struct {
	Success  bool   `json:"success"`
	DeepLink string `json:"deepLink"`
	Message  string `json:"message"`
}

func toRecordResponse(rec food.Record) recordResponse {
	resp := recordResponse{
		Name:            rec.Name,
		Unit:            rec.Unit,
		Location:        rec.Location,
		Category:        rec.Category,
		Supplier:        rec.Supplier,
		Memo:            rec.Memo,
		PurchaseDate:    rec.PurchaseDateText,
		HealthTags:      rec.HealthTags,
		ExpiryDayOffset: rec.ExpiryDayOffset,
	}

	if rec.Quantity.Valid {
		s := rec.Quantity.Decimal.String()
		resp.Quantity = &s
	}

	if rec.Price.Valid {
		s := rec.Price.Decimal.String()
		resp.Price = &s
	}

	return resp
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := h.svc.Preview(req.slots())

	writeJSON(w, previewResponse{Record: toRecordResponse(p.Record), Message: p.Message})
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := h.svc.Confirm(req.slots())

	writeJSON(w, resultResponse{Success: c.Success, DeepLink: c.DeepLink, Message: c.Message})
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.svc.Upsert(req.slots())

	writeJSON(w, resultResponse{Success: res.Success, DeepLink: res.DeepLink, Message: res.Message})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
