package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected, recruiter *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/application")
	{
		applications.POST("/apply/:id", handler.Apply)
		applications.GET("/get", handler.ListMine)
	}

	recruiterApplications := recruiter.Group("/application")
	{
		recruiterApplications.GET("/:id/applicants", handler.ListApplicants)
		recruiterApplications.POST("/status/:id/update", handler.UpdateStatus)
	}
}

// Apply godoc
// @Summary      Apply for a Job
// @Description  Submits an application. A user may apply to a given job only once.
// @Tags         application
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /application/apply/{id} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	app, err := h.applicationUC.Apply(c.Request.Context(), jobID, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job applied successfully.", gin.H{"application": app})
}

// ListMine godoc
// @Summary      My Applications
// @Description  Lists the caller's applications with each job and its company, newest first.
// @Tags         application
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /application/get [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.applicationUC.ListAppliedJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications found", gin.H{"applications": apps})
}

// ListApplicants godoc
// @Summary      Job Applicants
// @Description  Returns the job with its applications and applicant profiles. Only the posting recruiter or an admin may call this.
// @Tags         application
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /application/{id}/applicants [get]
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	job, err := h.applicationUC.ListApplicants(c.Request.Context(), jobID, userID, role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicants found", gin.H{"job": job})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Update Application Status
// @Description  Sets an application's status to Pending, Accepted or Rejected. Only the posting recruiter or an admin may call this.
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        id      path  int                  true  "Application ID"
// @Param        status  body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /application/status/{id}/update [post]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Status is required."))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if err := h.applicationUC.UpdateStatus(c.Request.Context(), appID, req.Status, userID, role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status updated successfully.", nil)
}
