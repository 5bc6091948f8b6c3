package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/job-board-api/internal/service"
)

// CompanyHandler exposes the company-facing surface: company reads,
// owner listings, the job lifecycle and application status updates.
type CompanyHandler struct {
	Companies *service.CompanyService
}

// NewCompanyHandler constructs a CompanyHandler.
func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// GetCompanyInfo returns a company by its own id.
func (h *CompanyHandler) GetCompanyInfo(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	company, err := h.Companies.GetCompanyInfoByCompanyID(ctx, c.Param("company_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, company)
}

// GetCompanyByOwner returns the company owned by the path user.
func (h *CompanyHandler) GetCompanyByOwner(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	profile, err := h.Companies.GetCompanyByOwnerID(ctx, c.Param("user_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ListJobs returns the jobs posted by the path user's company. An
// owner with zero jobs gets an empty array, not a 404.
func (h *CompanyHandler) ListJobs(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	jobs, err := h.Companies.ListJobsByOwner(ctx, c.Param("user_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// ListApplications returns the applications received across the path
// user's company jobs.
func (h *CompanyHandler) ListApplications(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	apps, err := h.Companies.ListApplicationsByOwner(ctx, c.Param("user_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

// CreateJob posts a new job, optionally with a companion location.
func (h *CompanyHandler) CreateJob(c echo.Context) error {
	var in service.JobInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	job, err := h.Companies.CreateJob(ctx, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "job created successfully", "job": job})
}

// GetJob returns one job, enriched with its location when present.
func (h *CompanyHandler) GetJob(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	job, err := h.Companies.GetJobByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, job)
}

// UpdateJob applies a partial job update and upserts the companion
// location when the patch carries full coordinates.
func (h *CompanyHandler) UpdateJob(c echo.Context) error {
	var patch service.JobPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	job, err := h.Companies.UpdateJob(ctx, c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, job)
}

// DeleteJob removes a job and, best-effort, its location.
func (h *CompanyHandler) DeleteJob(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	job, err := h.Companies.DeleteJob(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "job deleted successfully", "job": job})
}

// UpdateApplication changes the status of one application.
func (h *CompanyHandler) UpdateApplication(c echo.Context) error {
	var patch service.ApplicationStatusPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	app, err := h.Companies.UpdateApplicationStatus(ctx, c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "application updated successfully", "application": app})
}
