package auth_test

import (
	"testing"

	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	m := auth.NewManager("test-secret")

	token, err := m.Issue("user-1", "recruiter")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer := auth.NewManager("secret-a")
	verifier := auth.NewManager("secret-b")

	token, err := issuer.Issue("user-1", "jobseeker")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := auth.NewManager("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
}

func TestIssueRequiresSecret(t *testing.T) {
	m := auth.NewManager("")
	_, err := m.Issue("user-1", "admin")
	assert.Error(t, err)
}
