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

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(js *service.JobService) *JobHandler {
	return &JobHandler{jobService: js}
}

func (h *JobHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listJobs)      // GET /api/v1/jobs
	r.Get("/{jobID}", h.getJob) // GET /api/v1/jobs/42
	r.Get("/slug/{slug}", h.getJobBySlug)

	r.Group(func(recruiterRouter chi.Router) {
		recruiterRouter.Use(middleware.Authenticator)
		recruiterRouter.Use(middleware.RecruiterOnly)
		recruiterRouter.Post("/", h.createJob)
		recruiterRouter.Patch("/{jobID}", h.updateJob)
		recruiterRouter.Delete("/{jobID}", h.deleteJob)
	})

	r.Group(func(placementRouter chi.Router) {
		placementRouter.Use(middleware.Authenticator)
		placementRouter.Use(middleware.PlacementOnly)
		placementRouter.Post("/{jobID}/approval", h.setApproval)
	})
}

func (h *JobHandler) listJobs(w http.ResponseWriter, r *http.Request) {
	var filter model.JobFilter

	if v := r.URL.Query().Get("posted_by"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "posted_by must be an integer")
			return
		}
		filter.PostedBy = &id
	}
	if v := r.URL.Query().Get("approved"); v != "" {
		approved, err := strconv.ParseBool(v)
		if err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "approved must be a boolean")
			return
		}
		filter.Approved = &approved
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			common.RespondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	jobs, err := h.jobService.List(r.Context(), filter)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) getJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	job, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}

func (h *JobHandler) getJobBySlug(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}

func (h *JobHandler) createJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	job, err := h.jobService.Create(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) updateJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req service.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	job, err := h.jobService.Update(r.Context(), id, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}

func (h *JobHandler) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.jobService.Delete(r.Context(), id); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *JobHandler) setApproval(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req struct {
		Approved bool `json:"approved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	job, err := h.jobService.SetApproval(r.Context(), id, req.Approved)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, job)
}

func jobIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "jobID"), 10, 64)
	if err != nil {
		return 0, common.Errorf("jobID must be an integer")
	}
	return id, nil
}
