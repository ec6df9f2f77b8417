package budget

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/travel-budget/internal/auth"
	"github.com/frahmantamala/travel-budget/internal/transport"
)

type ServiceAPI interface {
	CreateBudget(userID string, dto CreateBudgetDTO) (*BudgetView, error)
	GetBudget(id, userID string) (*BudgetView, error)
	GetBudgetForPlan(travelPlanID, userID string) (*BudgetView, error)
	ListBudgets(userID string) ([]BudgetView, error)
	UpdateBudget(id, userID string, dto UpdateBudgetDTO) (*BudgetView, error)
	GetSummary(id, userID string) (*SummaryView, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("CreateBudget: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBudget: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Service.CreateBudget(user.ID, dto)
	if err != nil {
		h.Logger.Error("CreateBudget: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateBudget: budget created",
		"budget_id", view.ID,
		"user_id", user.ID,
		"currency", view.Currency)

	view.Localize(user.Locale)
	h.WriteJSON(w, http.StatusCreated, view)
}

func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	budgetID := chi.URLParam(r, "id")

	view, err := h.Service.GetBudget(budgetID, user.ID)
	if err != nil {
		h.Logger.Error("GetBudget: service error", "error", err, "budget_id", budgetID, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	view.Localize(user.Locale)
	h.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if planID := r.URL.Query().Get("travel_plan_id"); planID != "" {
		view, err := h.Service.GetBudgetForPlan(planID, user.ID)
		if err != nil {
			h.Logger.Error("ListBudgets: service error", "error", err, "travel_plan_id", planID, "user_id", user.ID)
			h.HandleServiceError(w, err)
			return
		}
		view.Localize(user.Locale)
		h.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"budgets": []BudgetView{*view},
		})
		return
	}

	views, err := h.Service.ListBudgets(user.ID)
	if err != nil {
		h.Logger.Error("ListBudgets: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	for i := range views {
		views[i].Localize(user.Locale)
	}
	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"budgets": views,
	})
}

func (h *Handler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	budgetID := chi.URLParam(r, "id")

	var dto UpdateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateBudget: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.Service.UpdateBudget(budgetID, user.ID, dto)
	if err != nil {
		h.Logger.Error("UpdateBudget: service error", "error", err, "budget_id", budgetID, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("UpdateBudget: budget updated", "budget_id", budgetID, "user_id", user.ID)
	view.Localize(user.Locale)
	h.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	budgetID := chi.URLParam(r, "id")

	summary, err := h.Service.GetSummary(budgetID, user.ID)
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err, "budget_id", budgetID, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	summary.Localize(user.Locale)
	h.WriteJSON(w, http.StatusOK, summary)
}
