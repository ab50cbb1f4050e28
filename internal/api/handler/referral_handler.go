package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shivsegv/campussetu/internal/api/middleware"
	"github.com/shivsegv/campussetu/internal/app/service"
	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
)

type ReferralHandler struct {
	referralService *service.ReferralService
}

func NewReferralHandler(rs *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralService: rs}
}

func (h *ReferralHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.Get("/", h.listReferrals)
	r.Post("/", h.createReferral)
	r.Post("/{referralID}/apply", h.apply)
}

func (h *ReferralHandler) listReferrals(w http.ResponseWriter, r *http.Request) {
	filter := model.ReferralFilter{
		Company: r.URL.Query().Get("company"),
		Status:  r.URL.Query().Get("status"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			common.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	refs, err := h.referralService.List(r.Context(), filter)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, refs)
}

func (h *ReferralHandler) createReferral(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	ref, err := h.referralService.Create(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, ref)
}

func (h *ReferralHandler) apply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "referralID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "referralID must be an integer")
		return
	}

	ref, err := h.referralService.Apply(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ref)
}
