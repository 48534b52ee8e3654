package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, recruiter *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/job")
	{
		jobs.GET("/get", handler.Search)
		jobs.GET("/get/:id", handler.GetByID)
	}

	recruiterJobs := recruiter.Group("/job")
	{
		recruiterJobs.POST("/post", handler.Post)
		recruiterJobs.GET("/admin/jobs", handler.ListMine)
		recruiterJobs.PUT("/update/:id", handler.Update)
		recruiterJobs.DELETE("/delete/:id", handler.Delete)
	}
}

type PostJobRequest struct {
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description" binding:"required"`
	Requirements    domain.StringList `json:"requirements" binding:"required"`
	Salary          domain.Number     `json:"salary" binding:"required,gte=0"`
	Location        string            `json:"location" binding:"required"`
	JobType         string            `json:"jobType" binding:"required,oneof=Full-Time Part-Time Contract Internship Remote"`
	ExperienceLevel string            `json:"experienceLevel" binding:"required,oneof='Entry Level' 'Mid Level' 'Senior Level' Manager Director"`
	Position        domain.Count      `json:"position" binding:"required,gte=1"`
	CompanyID       int64             `json:"companyId" binding:"required"`
}

type UpdateJobRequest struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Requirements    domain.StringList `json:"requirements"`
	Salary          *domain.Number    `json:"salary" binding:"omitempty,gte=0"`
	Location        string            `json:"location"`
	JobType         string            `json:"jobType" binding:"omitempty,oneof=Full-Time Part-Time Contract Internship Remote"`
	ExperienceLevel string            `json:"experienceLevel" binding:"omitempty,oneof='Entry Level' 'Mid Level' 'Senior Level' Manager Director"`
	Position        *domain.Count     `json:"position" binding:"omitempty,gte=1"`
	CompanyID       *int64            `json:"companyId"`
}

// Post godoc
// @Summary      Post a Job
// @Description  Create a job posting under one of the caller's companies.
// @Tags         job
// @Accept       json
// @Produce      json
// @Param        job  body  PostJobRequest  true  "Job details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /job/post [post]
func (h *JobHandler) Post(c *gin.Context) {
	var req PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := &domain.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          float64(req.Salary),
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Position:        int(req.Position),
		CompanyID:       req.CompanyID,
	}

	if err := h.jobUC.PostJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "New job created successfully.", job)
}

// Search godoc
// @Summary      Search Jobs
// @Description  List jobs matching the keyword against title and description. Empty keyword returns all jobs.
// @Tags         job
// @Produce      json
// @Param        keyword  query  string  false  "Search keyword"
// @Success      200  {object}  response.Response
// @Router       /job/get [get]
func (h *JobHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")

	jobs, err := h.jobUC.Search(c.Request.Context(), keyword)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs found", gin.H{"jobs": jobs})
}

// GetByID godoc
// @Summary      Job Details
// @Description  Returns a job with its company and application list.
// @Tags         job
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job/get/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	job, err := h.jobUC.GetDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", gin.H{"job": job})
}

// ListMine godoc
// @Summary      My Posted Jobs
// @Description  Lists jobs created by the authenticated recruiter.
// @Tags         job
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /job/admin/jobs [get]
func (h *JobHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListByCreator(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs found", gin.H{"jobs": jobs})
}

// Update godoc
// @Summary      Update Job
// @Description  Partial update of a job the caller created. Admins may update any job.
// @Tags         job
// @Accept       json
// @Produce      json
// @Param        id   path  int               true  "Job ID"
// @Param        job  body  UpdateJobRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job/update/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	input := domain.UpdateJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		CompanyID:       req.CompanyID,
	}
	if req.Salary != nil {
		v := float64(*req.Salary)
		input.Salary = &v
	}
	if req.Position != nil {
		v := int(*req.Position)
		input.Position = &v
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), userID, role, id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully.", gin.H{"job": job})
}

// Delete godoc
// @Summary      Delete Job
// @Description  Deletes a job the caller created. Admins may delete any job.
// @Tags         job
// @Produce      json
// @Param        id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job/delete/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, role, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully.", nil)
}
