package plan

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/travel-budget/internal/auth"
	"github.com/frahmantamala/travel-budget/internal/transport"
)

type ServiceAPI interface {
	CreatePlan(userID string, dto *CreatePlanDTO) (*TravelPlan, error)
	GetPlan(userID, planID string) (*TravelPlan, error)
	ListPlans(userID string) ([]*TravelPlan, error)
	UpdatePlan(userID, planID string, dto *UpdatePlanDTO) (*TravelPlan, error)
	DeletePlan(userID, planID string) error
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

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreatePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreatePlan: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreatePlan(user.ID, &dto)
	if err != nil {
		h.Logger.Error("CreatePlan: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreatePlan: travel plan created", "plan_id", p.ID, "user_id", user.ID)
	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	planID := chi.URLParam(r, "id")

	p, err := h.Service.GetPlan(user.ID, planID)
	if err != nil {
		h.Logger.Error("GetPlan: service error", "error", err, "plan_id", planID, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	plans, err := h.Service.ListPlans(user.ID)
	if err != nil {
		h.Logger.Error("ListPlans: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"plans": plans,
	})
}

func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	planID := chi.URLParam(r, "id")

	var dto UpdatePlanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdatePlan: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.UpdatePlan(user.ID, planID, &dto)
	if err != nil {
		h.Logger.Error("UpdatePlan: service error", "error", err, "plan_id", planID, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("UpdatePlan: travel plan updated", "plan_id", planID, "user_id", user.ID)
	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	planID := chi.URLParam(r, "id")

	if err := h.Service.DeletePlan(user.ID, planID); err != nil {
		h.Logger.Error("DeletePlan: service error", "error", err, "plan_id", planID, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("DeletePlan: travel plan deleted", "plan_id", planID, "user_id", user.ID)
	w.WriteHeader(http.StatusNoContent)
}
