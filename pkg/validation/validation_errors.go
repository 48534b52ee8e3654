package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels.
var FieldLabels = map[string]string{
	"Fullname":        "Full name",
	"Email":           "Email",
	"PhoneNumber":     "Phone number",
	"Password":        "Password",
	"Role":            "Role",
	"Bio":             "Bio",
	"Skills":          "Skills",
	"Title":           "Title",
	"Description":     "Description",
	"Requirements":    "Requirements",
	"Salary":          "Salary",
	"Location":        "Location",
	"JobType":         "Job type",
	"ExperienceLevel": "Experience level",
	"Position":        "Position count",
	"CompanyID":       "Company",
	"Name":            "Company name",
	"Website":         "Website",
	"Status":          "Status",
}

func label(field string) string {
	if l, ok := FieldLabels[field]; ok {
		return l
	}
	return field
}

// FriendlyMessage converts a validator error into a readable message for
// the 400 response. Non-validator errors pass through unchanged.
func FriendlyMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", label(fe.Field())))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", label(fe.Field())))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", label(fe.Field()), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", label(fe.Field()), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", label(fe.Field()), fe.Param()))
		case "valid_phone":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid phone number", label(fe.Field())))
		case "valid_name":
			msgs = append(msgs, fmt.Sprintf("%s contains invalid characters", label(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", label(fe.Field())))
		}
	}
	return strings.Join(msgs, "; ")
}
