package v1_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
}

func bindJSON(t *testing.T, body string, out interface{}) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/job/post", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(out)
}

const validJobBody = `{
	"title": "Backend Engineer",
	"description": "Go services",
	"requirements": ["Go", "SQL"],
	"salary": 52000,
	"location": "Jakarta",
	"jobType": "Full-Time",
	"experienceLevel": "Mid Level",
	"position": 2,
	"companyId": 1
}`

func TestPostJobRequestValidation(t *testing.T) {
	t.Run("Accepts a valid posting", func(t *testing.T) {
		var req v1.PostJobRequest
		assert.NoError(t, bindJSON(t, validJobBody, &req))
	})

	t.Run("Accepts salary as a numeric string", func(t *testing.T) {
		var req v1.PostJobRequest
		body := strings.Replace(validJobBody, `"salary": 52000`, `"salary": "52000"`, 1)
		assert.NoError(t, bindJSON(t, body, &req))
		assert.Equal(t, float64(52000), float64(req.Salary))
	})

	t.Run("Rejects a negative salary", func(t *testing.T) {
		var req v1.PostJobRequest
		body := strings.Replace(validJobBody, `"salary": 52000`, `"salary": -50000`, 1)
		assert.Error(t, bindJSON(t, body, &req))
	})

	t.Run("Rejects a non-positive position count", func(t *testing.T) {
		for _, position := range []string{"-3", "0"} {
			var req v1.PostJobRequest
			body := strings.Replace(validJobBody, `"position": 2`, `"position": `+position, 1)
			assert.Error(t, bindJSON(t, body, &req))
		}
	})

	t.Run("Rejects an unknown job type", func(t *testing.T) {
		var req v1.PostJobRequest
		body := strings.Replace(validJobBody, `"jobType": "Full-Time"`, `"jobType": "Gig"`, 1)
		assert.Error(t, bindJSON(t, body, &req))
	})
}

func TestUpdateJobRequestValidation(t *testing.T) {
	t.Run("Accepts a partial update without numeric fields", func(t *testing.T) {
		var req v1.UpdateJobRequest
		assert.NoError(t, bindJSON(t, `{"title": "Senior Backend Engineer"}`, &req))
	})

	t.Run("Rejects a negative salary", func(t *testing.T) {
		var req v1.UpdateJobRequest
		assert.Error(t, bindJSON(t, `{"salary": -1}`, &req))
	})

	t.Run("Rejects a negative position count", func(t *testing.T) {
		var req v1.UpdateJobRequest
		assert.Error(t, bindJSON(t, `{"position": -3}`, &req))
	})
}
