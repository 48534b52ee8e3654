package v1

import (
	"io"
	"mime/multipart"
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type UserHandler struct {
	authUC domain.AuthUsecase
	tokens *auth.Manager
	media  storage.Uploader
	config *config.Config
}

func NewUserHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *auth.Manager, media storage.Uploader, cfg *config.Config) {
	handler := &UserHandler{
		authUC: authUC,
		tokens: tokens,
		media:  media,
		config: cfg,
	}

	publicUser := public.Group("/user")
	{
		publicUser.POST("/register", handler.Register)
		publicUser.POST("/login", handler.Login)
		publicUser.GET("/logout", handler.Logout)
	}

	protectedUser := protected.Group("/user")
	{
		protectedUser.POST("/profile/update", handler.UpdateProfile)
		protectedUser.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Fullname    string `form:"fullname" binding:"required,valid_name,no_emoji"`
	Email       string `form:"email" binding:"required,email"`
	PhoneNumber string `form:"phoneNumber" binding:"required,valid_phone"`
	Password    string `form:"password" binding:"required,min=6"`
	Role        string `form:"role" binding:"required,oneof=jobseeker recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=jobseeker recruiter admin"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register with fullname, email, phone number, password and role. Accepts an optional profile photo as multipart "file".
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullname     formData  string  true   "Full name"
// @Param        email        formData  string  true   "Email"
// @Param        phoneNumber  formData  string  true   "Phone number"
// @Param        password     formData  string  true   "Password"
// @Param        role         formData  string  true   "jobseeker or recruiter"
// @Param        file         formData  file    false  "Profile photo"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}

	user := &domain.User{
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	}

	if photoURL, err := h.uploadImage(c, "profile"); err != nil {
		c.Error(err)
		return
	} else if photoURL != "" {
		user.Profile.PhotoURL = photoURL
	}

	if err := h.authUC.Register(c.Request.Context(), user, req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully.", nil)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email, password and role. Sets the session token as an httpOnly cookie and returns it in the body.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        login  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}

	user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	h.setSessionCookie(c, token)

	response.Success(c, http.StatusOK, "Welcome back "+user.Fullname, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the session cookie.
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /user/logout [get]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", "", h.config.CookieSecure, true)
	response.Success(c, http.StatusOK, "Logged out successfully.", nil)
}

// Me godoc
// @Summary      Current User
// @Description  Returns the authenticated user's record.
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /user/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details", user)
}

type UpdateProfileRequest struct {
	Fullname    string `form:"fullname" binding:"omitempty,valid_name,no_emoji"`
	Email       string `form:"email" binding:"omitempty,email"`
	PhoneNumber string `form:"phoneNumber" binding:"omitempty,valid_phone"`
	Bio         string `form:"bio"`
	Skills      string `form:"skills"`
}

// UpdateProfile godoc
// @Summary      Update Profile
// @Description  Partial profile update; omitted fields stay unchanged. Accepts an optional resume as multipart "file". Skills are comma-separated.
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /user/profile/update [post]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FriendlyMessage(err)))
		return
	}

	input := domain.UpdateProfileInput{
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
	}
	if req.Skills != "" {
		input.Skills = domain.SplitList(req.Skills)
	}

	file, err := c.FormFile("file")
	if err == nil && file != nil {
		url, upErr := h.uploadDocument(c, "resume")
		if upErr != nil {
			c.Error(upErr)
			return
		}
		input.ResumeURL = url
		input.ResumeOriginalName = file.Filename
	}

	user, err := h.authUC.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully.", user)
}

func (h *UserHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, int(auth.TokenLifetime.Seconds()), "/", "", h.config.CookieSecure, true)
}

// uploadImage reads the optional multipart "file", validates it as an
// image, recompresses it and stores it. Returns "" when no file was
// sent.
func (h *UserHandler) uploadImage(c *gin.Context, folder string) (string, error) {
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

	// Recompressing strips metadata and bounds the stored size.
	compressed, err := storage.CompressImage(data, 1200, 80)
	if err == nil {
		data = compressed
		contentType = "image/jpeg"
	}

	url, err := h.media.Upload(c.Request.Context(), folder, file.Filename, data, contentType)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}

// uploadDocument stores a resume-type file (PDF or Word document).
func (h *UserHandler) uploadDocument(c *gin.Context, folder string) (string, error) {
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

	url, err := h.media.Upload(c.Request.Context(), folder, file.Filename, data, contentType)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return url, nil
}

func readUpload(file *multipart.FileHeader) ([]byte, string, error) {
	if file.Size > maxUploadBytes {
		return nil, "", apperror.BadRequest("File too large. Maximum size is 10MB.")
	}
	src, err := file.Open()
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if len(data) > maxUploadBytes {
		return nil, "", apperror.BadRequest("File too large. Maximum size is 10MB.")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
