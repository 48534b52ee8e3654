package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation panel. The login route is public;
// everything else requires an authenticated recruiter or admin, and the
// usecase re-checks the role on every call.
type AdminHandler struct {
	adminUC domain.AdminUsecase
	authUC  domain.AuthUsecase
	tokens  *auth.Manager
	config  *config.Config
}

func NewAdminHandler(public, moderator *gin.RouterGroup, adminUC domain.AdminUsecase, authUC domain.AuthUsecase, tokens *auth.Manager, cfg *config.Config) {
	handler := &AdminHandler{
		adminUC: adminUC,
		authUC:  authUC,
		tokens:  tokens,
		config:  cfg,
	}

	public.POST("/adminpanel/adminpanellogin", handler.Login)

	panel := moderator.Group("/adminpanel")
	{
		panel.GET("/checkauth", handler.CheckAuth)

		panel.GET("/users", handler.ListUsers)
		panel.PUT("/users/:id", handler.UpdateUser)
		panel.DELETE("/users/:id", handler.DeleteUser)

		panel.GET("/jobs", handler.ListJobs)
		panel.PUT("/jobs/:id", handler.UpdateJob)
		panel.DELETE("/jobs/:id", handler.DeleteJob)

		panel.GET("/companies", handler.ListCompanies)
		panel.PUT("/companies/:id", handler.UpdateCompany)
		panel.DELETE("/companies/:id", handler.DeleteCompany)

		panel.GET("/applications", handler.ListApplications)
		panel.PUT("/applications/:id", handler.UpdateApplication)
		panel.DELETE("/applications/:id", handler.DeleteApplication)
	}
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Admin Panel Login
// @Description  Signs in a recruiter or admin account; jobseekers are rejected. The stored role is used, not a requested one.
// @Tags         adminpanel
// @Accept       json
// @Produce      json
// @Param        login  body  AdminLoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /adminpanel/adminpanellogin [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}

	user, err := h.authUC.ModeratorLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, int(auth.TokenLifetime.Seconds()), "/", "", h.config.CookieSecure, true)

	response.Success(c, http.StatusOK, "Welcome back "+user.Fullname, gin.H{
		"token": token,
		"user":  user,
	})
}

// CheckAuth godoc
// @Summary      Verify Panel Session
// @Tags         adminpanel
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /adminpanel/checkauth [get]
func (h *AdminHandler) CheckAuth(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Authenticated", gin.H{"user": user})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUC.ListUsers(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users found", gin.H{"users": users})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req domain.AdminUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}
	if err := h.adminUC.UpdateUser(c, c.Param("id"), &req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated successfully.", nil)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUC.DeleteUser(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully.", nil)
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.adminUC.ListJobs(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs found", gin.H{"jobs": jobs})
}

func (h *AdminHandler) UpdateJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}
	var req domain.AdminJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}
	if err := h.adminUC.UpdateJob(c, id, &req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully.", nil)
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}
	if err := h.adminUC.DeleteJob(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully.", nil)
}

func (h *AdminHandler) ListCompanies(c *gin.Context) {
	companies, err := h.adminUC.ListCompanies(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies found", gin.H{"companies": companies})
}

func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}
	var req domain.AdminCompanyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}
	if err := h.adminUC.UpdateCompany(c, id, &req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated successfully.", nil)
}

func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}
	if err := h.adminUC.DeleteCompany(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted successfully.", nil)
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.adminUC.ListApplications(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications found", gin.H{"applications": apps})
}

func (h *AdminHandler) UpdateApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}
	var req domain.AdminApplicationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}
	if err := h.adminUC.UpdateApplication(c, id, &req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application updated successfully.", nil)
}

func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}
	if err := h.adminUC.DeleteApplication(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted successfully.", nil)
}
