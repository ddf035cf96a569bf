package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"showcase-portal-backend/internal/database/models"
	apperrors "showcase-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var packageNameRegex = regexp.MustCompile(`^[a-z0-9_-]{2,100}$`)

// NewValidator returns a validator with the showcase-specific tags registered
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterValidations(v)
	return v
}

// RegisterValidations adds the approval_status, reuse_type and package_name tags to v
// and makes field errors report JSON field names
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("approval_status", func(fl validator.FieldLevel) bool {
		_, ok := models.ParseApprovalStatus(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("reuse_type", func(fl validator.FieldLevel) bool {
		return models.ReuseType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("package_name", func(fl validator.FieldLevel) bool {
		return packageNameRegex.MatchString(fl.Field().String())
	})
}

// validationError turns validator output into a field -> message mapping
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("", err.Error())
	}

	out := apperrors.ValidationErrors{}
	for _, fe := range fieldErrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing value"
	case "approval_status":
		return fmt.Sprintf("Status must be one of: %s", strings.Join(models.ApprovalStatusCodes(), ", "))
	case "reuse_type":
		return fmt.Sprintf("Reuse type must be one of: %s", strings.Join(models.ReuseTypeCodes(), ", "))
	case "package_name":
		return "Must be 2-100 characters of lowercase alphanumerics, - and _"
	case "url":
		return "Please provide a valid URL"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}
