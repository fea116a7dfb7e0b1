package stock

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgervoice/internal/slot"
	"github.com/MrJamesThe3rd/ledgervoice/internal/stock"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=stock

// Service is the slice of the stock engine the webhook needs.
type Service interface {
	Check(productName string) stock.CheckResult
	PreviewUse(sl stock.Slots) stock.Preview
	ConfirmUse(sl stock.Slots) stock.Confirm
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/check", h.check)
	r.Post("/use/preview", h.previewUse)
	r.Post("/use/confirm", h.confirmUse)
}

type checkResponse struct {
	ProductName  string  `json:"productName"`
	CurrentStock int     `json:"currentStock"`
	Unit         string  `json:"unit"`
	ExpiryDays   *int    `json:"expiryDays,omitempty"`
	LastPrice    *string `json:"lastPrice,omitempty"`
	Location     string  `json:"location,omitempty"`
	DeepLink     string  `json:"deepLink"`
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	if product == "" {
		http.Error(w, "missing product", http.StatusBadRequest)
		return
	}

	res := h.svc.Check(product)

	resp := checkResponse{
		ProductName:  res.ProductName,
		CurrentStock: res.CurrentStock,
		Unit:         res.Unit,
		ExpiryDays:   res.ExpiryDays,
		Location:     res.Location,
		DeepLink:     res.DeepLink,
	}

	if res.LastPrice.Valid {
		s := res.LastPrice.Decimal.String()
		resp.LastPrice = &s
	}

	writeJSON(w, resp)
}

type useRequest struct {
	ProductName string     `json:"productName"`
	Amount      slot.Value `json:"amount"`
	Unit        string     `json:"unit"`
}

func (req useRequest) slots() stock.Slots {
	return stock.Slots{
		ProductName: req.ProductName,
		Amount:      req.Amount,
		Unit:        req.Unit,
	}
}

type previewResponse struct {
	ProductName string  `json:"productName"`
	Amount      *string `json:"amount,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Message     string  `json:"message"`
}

type confirmResponse struct {
	Success  bool   `json:"success"`
	DeepLink string `json:"deepLink"`
	Message  string `json:"message"`
}

func (h *Handler) previewUse(w http.ResponseWriter, r *http.Request) {
	var req useRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := h.svc.PreviewUse(req.slots())

	resp := previewResponse{
		ProductName: p.ProductName,
		Unit:        p.Unit,
		Message:     p.Message,
	}

	if p.Amount.Valid {
		s := p.Amount.Decimal.String()
		resp.Amount = &s
	}

	writeJSON(w, resp)
}

func (h *Handler) confirmUse(w http.ResponseWriter, r *http.Request) {
	var req useRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := h.svc.ConfirmUse(req.slots())

	writeJSON(w, confirmResponse{Success: c.Success, DeepLink: c.DeepLink, Message: c.Message})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
