package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
	media     storage.Uploader
}

func NewCompanyHandler(public, recruiter *gin.RouterGroup, companyUC domain.CompanyUsecase, media storage.Uploader) {
	handler := &CompanyHandler{companyUC: companyUC, media: media}

	companies := public.Group("/company")
	{
		companies.GET("/getcompany/:id", handler.GetByID)
		companies.GET("/getallcompanies", handler.ListNames)
	}

	recruiterCompanies := recruiter.Group("/company")
	{
		recruiterCompanies.POST("/register", handler.Register)
		recruiterCompanies.GET("/get", handler.ListMine)
		recruiterCompanies.PUT("/update/:id", handler.Update)
		recruiterCompanies.DELETE("/delete/:id", handler.Delete)
	}
}

type RegisterCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required,no_emoji"`
}

// Register godoc
// @Summary      Register Company
// @Description  Creates a company owned by the caller. The name must be unique among the caller's own companies.
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        company  body  RegisterCompanyRequest  true  "Company name"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /company/register [post]
func (h *CompanyHandler) Register(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	company, err := h.companyUC.Register(c.Request.Context(), userID, req.CompanyName)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company registered successfully.", gin.H{"company": company})
}

// ListMine godoc
// @Summary      My Companies
// @Description  Lists companies owned by the caller.
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /company/get [get]
func (h *CompanyHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	companies, err := h.companyUC.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Companies found", gin.H{"companies": companies})
}

// GetByID godoc
// @Summary      Company Details
// @Tags         company
// @Produce      json
// @Param        id  path  int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /company/getcompany/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}

	company, err := h.companyUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company details", gin.H{"company": company})
}

// ListNames godoc
// @Summary      All Company Names
// @Description  Name-only projection of every company, for pickers.
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /company/getallcompanies [get]
func (h *CompanyHandler) ListNames(c *gin.Context) {
	names, err := h.companyUC.ListAllNames(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Companies found", gin.H{"companies": names})
}

type UpdateCompanyRequest struct {
	Name        string `form:"name" binding:"omitempty,no_emoji"`
	Description string `form:"description"`
	Website     string `form:"website" binding:"omitempty,url"`
	Location    string `form:"location"`
}

// Update godoc
// @Summary      Update Company
// @Description  Partial update of a company the caller owns; accepts an optional logo as multipart "file". Admins may update any company.
// @Tags         company
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /company/update/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}

	input := domain.UpdateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	}

	if logoURL, err := uploadCompanyLogo(c, h.media); err != nil {
		c.Error(err)
		return
	} else if logoURL != "" {
		input.LogoURL = logoURL
	}

	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	company, err := h.companyUC.Update(c.Request.Context(), userID, role, id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company information updated.", gin.H{"company": company})
}

// Delete godoc
// @Summary      Delete Company
// @Description  Deletes a company the caller owns. Admins may delete any company.
// @Tags         company
// @Produce      json
// @Param        id  path  int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /company/delete/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if err := h.companyUC.Delete(c.Request.Context(), userID, role, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company deleted successfully.", nil)
}

func uploadCompanyLogo(c *gin.Context, media storage.Uploader) (string, error) {
	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return "", nil
	}
	data, contentType, err := readUpload(file)
	if err != nil {
		return "", err
	}

	result := storage.ValidateFile(file.Filename, data, contentType)
	if !result.Valid {
		return "", apperror.BadRequest("Invalid file: " + result.Error)
	}
	switch result.DetectedMIME {
	case "image/jpeg", "image/png", "image/webp":
	default:
		return "", apperror.BadRequest("Only image files are allowed here.")
	}

	compressed, err := storage.CompressImage(data, 800, 80)
	if err == nil {
		data = compressed
		contentType = "image/jpeg"
	}

	url, err := media.Upload(c.Request.Context(), "logo", file.Filename, data, contentType)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}
