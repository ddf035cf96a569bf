package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for package x and showcase y"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors carries a field -> message mapping for multi-field failures
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s - %s", f, e[f]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrShowcaseNotFound    = &NotFoundError{Entity: "showcase"}
	ErrDatasetNotFound     = &NotFoundError{Entity: "dataset"}
	ErrPackageNotFound     = &NotFoundError{Entity: "package"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrAssociationNotFound = &NotFoundError{Entity: "showcase-package association"}
	ErrAdminNotFound       = &NotFoundError{Entity: "showcase admin"}
	ErrStatusNotFound      = &NotFoundError{Entity: "showcase approval status"}
)

// Already Exists Errors
var (
	ErrShowcaseExists    = &AlreadyExistsError{Entity: "showcase", Context: "with this name"}
	ErrPackageExists     = &AlreadyExistsError{Entity: "package", Context: "with this name"}
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this name"}
	ErrAssociationExists = &AlreadyExistsError{Entity: "showcase-package association"}
	ErrAdminExists       = &AlreadyExistsError{Entity: "showcase admin"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = &ValidationError{Field: "status", Message: "invalid status"}
	ErrFeedbackRequired        = &ValidationError{Field: "feedback", Message: "feedback is required when status is Needs Revision"}
	ErrInvalidSort             = &ValidationError{Field: "sort", Message: "invalid sort"}
	ErrInvalidPaginationParams = &ValidationError{Field: "limit", Message: "invalid pagination parameters"}
	ErrInvalidDate             = &ValidationError{Field: "created", Message: "dates must be formatted as YYYY-MM-DD"}
	ErrUnsupportedImageType    = &ValidationError{Field: "image_upload", Message: "file is not a supported image type"}
	ErrImageTooLarge           = &ValidationError{Field: "image_upload", Message: "file exceeds the maximum image size"}
	ErrActiveImageContent      = &ValidationError{Field: "image_upload", Message: "SVG images must not contain scripts or event handlers"}
)

// Authentication / Authorization Errors
var (
	ErrLoginRequired      = &AuthenticationError{Message: "login required"}
	ErrNotAuthorized      = &AuthorizationError{Message: "user not authorized"}
	ErrDeleteNotAllowed   = &AuthorizationError{Message: "User not authorized to delete a submitted Reuse"}
	ErrUpdateNotAllowed   = &AuthorizationError{Message: "User not authorized to edit this Reuse"}
	ErrViewNotAllowed     = &AuthorizationError{Message: "User not authorized to view this Reuse"}
	ErrStatusNotAllowed   = &AuthorizationError{Message: "User not authorized to update Reuse status"}
	ErrSysadminRequired   = &AuthorizationError{Message: "only sysadmins can manage showcase admins"}
	ErrInvalidTokenClaims = &AuthenticationError{Message: "invalid token claims"}
)

// Configuration Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "upload storage is not configured"}
	ErrSMTPNotConfigured    = &ConfigurationError{Message: "SMTP_HOST is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewAssociationExistsError reports a duplicate package/showcase pair
func NewAssociationExistsError(packageID, showcaseID string) error {
	return &AlreadyExistsError{
		Entity:  "showcase-package association",
		Context: fmt.Sprintf("for package %s and showcase %s", packageID, showcaseID),
	}
}
