package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shivsegv/campussetu/internal/app/service"
	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
)

type DirectoryHandler struct {
	directoryService *service.DirectoryService
}

func NewDirectoryHandler(ds *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: ds}
}

func (h *DirectoryHandler) RegisterAlumniRoutes(r chi.Router) {
	r.Get("/", h.listAlumni)
}

func (h *DirectoryHandler) RegisterInsightRoutes(r chi.Router) {
	r.Get("/", h.listInsights)
	r.Get("/{company}", h.getInsight)
}

func (h *DirectoryHandler) listAlumni(w http.ResponseWriter, r *http.Request) {
	filter := model.AlumniFilter{
		Company: r.URL.Query().Get("company"),
	}
	if v := r.URL.Query().Get("batch"); v != "" {
		batch, err := strconv.Atoi(v)
		if err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "batch must be an integer")
			return
		}
		filter.Batch = batch
	}
	if v := r.URL.Query().Get("willing_to_refer"); v != "" {
		willing, err := strconv.ParseBool(v)
		if err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "willing_to_refer must be a boolean")
			return
		}
		filter.WillingToRefer = &willing
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			common.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	alumni, err := h.directoryService.ListAlumni(r.Context(), filter)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, alumni)
}

func (h *DirectoryHandler) listInsights(w http.ResponseWriter, r *http.Request) {
	filter := model.InsightFilter{
		Company: r.URL.Query().Get("company"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			common.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	insights, err := h.directoryService.ListInsights(r.Context(), filter)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, insights)
}

func (h *DirectoryHandler) getInsight(w http.ResponseWriter, r *http.Request) {
	insight, err := h.directoryService.GetInsightByCompany(r.Context(), chi.URLParam(r, "company"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, insight)
}
