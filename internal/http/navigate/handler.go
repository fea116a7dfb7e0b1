package navigate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/ledgervoice/internal/navigate"
)

type Handler struct {
	svc *navigate.Service
}

func NewHandler(svc *navigate.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/feature", h.feature)
	r.Post("/dashboard", h.dashboard)
	r.Post("/recipe-recommendation", h.recipeRecommendation)
	r.Post("/cookable-recipe-picker", h.cookableRecipePicker)
	r.Post("/usage-mode", h.usageMode)
	r.Post("/income-entry", h.incomeEntry)
	r.Post("/receipt-scan", h.receiptScan)
}

type featureRequest struct {
	Feature string `json:"feature"`
}

type resultResponse struct {
	Success  bool   `json:"success"`
	DeepLink string `json:"deepLink"`
	Message  string `json:"message"`
}

func toResponse(res navigate.Result) resultResponse {
	return resultResponse{
		Success:  res.Success,
		DeepLink: res.DeepLink,
		Message:  res.Message,
	}
}

func (h *Handler) feature(w http.ResponseWriter, r *http.Request) {
	var req featureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toResponse(h.svc.OpenFeature(req.Feature)))
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toResponse(h.svc.OpenDashboard()))
}

func (h *Handler) recipeRecommendation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toResponse(h.svc.OpenRecipeRecommendation()))
}

func (h *Handler) cookableRecipePicker(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toResponse(h.svc.OpenCookableRecipePicker()))
}

func (h *Handler) usageMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toResponse(h.svc.OpenUsageMode()))
}

func (h *Handler) incomeEntry(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toResponse(h.svc.OpenIncomeEntry()))
}

func (h *Handler) receiptScan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toResponse(h.svc.OpenReceiptScan()))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
