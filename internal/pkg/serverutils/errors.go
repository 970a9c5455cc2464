package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"knowex-be/internal/constant"
	"knowex-be/pkg/dataset"
	"knowex-be/pkg/enhancement"
	"knowex-be/pkg/wizard"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AppError is an error with the HTTP status and user-facing text it maps to.
type AppError struct {
	Status      int
	Title       string
	Description string
	Err         error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Title, e.Err)
	}
	return e.Title
}

func (e *AppError) Unwrap() error { return e.Err }

// Message is the envelope message: the description when there is one.
func (e *AppError) Message() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Title
}

func NewAppError(status int, title, description string, err error) *AppError {
	return &AppError{Status: status, Title: title, Description: description, Err: err}
}

func BadRequest(description string, err error) *AppError {
	return NewAppError(fiber.StatusBadRequest, "Bad request", description, err)
}

func NotFound(description string) *AppError {
	return NewAppError(fiber.StatusNotFound, "Not found", description, nil)
}

func Conflict(description string, err error) *AppError {
	return NewAppError(fiber.StatusConflict, "Conflict", description, err)
}

var (
	ErrSessionRequired = errors.New("session id required")
	ErrSessionNotFound = errors.New("session not found")
)

// ToAppError classifies err. Domain sentinels are matched with errors.Is;
// anything unknown becomes a 500.
func ToAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return BadRequest(describeValidation(validationErrs), err)
	}

	switch {
	case errors.Is(err, wizard.ErrInvalidConfiguration):
		return NewAppError(fiber.StatusBadRequest, constant.ToastInvalidConfigurationTitle, constant.ToastInvalidConfigurationDescription, err)
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		return NewAppError(fiber.StatusBadRequest, constant.ToastInvalidFileFormatTitle, constant.ToastInvalidFileFormatDescription, err)
	case errors.Is(err, wizard.ErrBuildInProgress),
		errors.Is(err, wizard.ErrAlreadyBuilt),
		errors.Is(err, wizard.ErrNotBuilt):
		return Conflict(capitalize(err.Error()), err)
	case errors.Is(err, wizard.ErrUnknownTab),
		errors.Is(err, wizard.ErrUnknownSource),
		errors.Is(err, enhancement.ErrUnknownTechnique):
		return BadRequest(capitalize(err.Error()), err)
	case errors.Is(err, ErrSessionRequired):
		return BadRequest("Missing X-Session-Id header", err)
	case errors.Is(err, ErrSessionNotFound):
		return NewAppError(fiber.StatusNotFound, "Not found", "Session not found or expired", err)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return NewAppError(fiberErr.Code, fiberErr.Message, "", err)
	}

	return NewAppError(fiber.StatusInternalServerError, "Internal server error", "", err)
}

func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
