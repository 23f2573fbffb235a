package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// BindForm binds the request form into obj and turns binding failures into
// a validation error with a readable message.
func BindForm(c *gin.Context, obj any) error {
	err := c.ShouldBind(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, formatValidationError(fe))
		}
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, strings.Join(msgs, "; ")).
			WithField(verrs[0].Field())
	}
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid form submission.")
}

func formatValidationError(e validator.FieldError) string {
	field := fieldLabel(e.Field())
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	default:
		return field + " is invalid"
	}
}

// fieldLabel turns "StudentNumber" into "Student number".
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
