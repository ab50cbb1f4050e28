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

type ApplicationHandler struct {
	appService *service.ApplicationService
}

func NewApplicationHandler(as *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: as}
}

func (h *ApplicationHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.Group(func(studentRouter chi.Router) {
		studentRouter.Use(middleware.StudentOnly)
		studentRouter.Get("/me", h.listMine) // GET /api/v1/applications/me
		studentRouter.Post("/", h.apply)     // POST /api/v1/applications
	})

	r.Group(func(recruiterRouter chi.Router) {
		recruiterRouter.Use(middleware.RecruiterOnly)
		recruiterRouter.Get("/job/{jobID}", h.listByJob)              // GET /api/v1/applications/job/42
		recruiterRouter.Patch("/{applicationID}/status", h.setStatus) // PATCH /api/v1/applications/7/status
	})
}

func (h *ApplicationHandler) listMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	apps, err := h.appService.ListByStudent(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) listByJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "jobID must be an integer")
		return
	}
	apps, err := h.appService.ListByJob(r.Context(), jobID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	app, err := h.appService.Apply(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "applicationID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "applicationID must be an integer")
		return
	}

	var req struct {
		Status model.ApplicationStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	app, err := h.appService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, app)
}
