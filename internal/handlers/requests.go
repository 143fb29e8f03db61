package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// sendMessageBody is the raw JSON shape of a POST /api/chat body. Fields are
// untyped so a wrong-typed value degrades to a missing field instead of a
// generic bind failure.
type sendMessageBody struct {
	ChatID  any `json:"chatId"`
	Message any `json:"message"`
}

// SendMessageRequest is the validated, typed form handed to the handler.
// Field order matters: chatId is reported first when both are missing.
type SendMessageRequest struct {
	ChatID  string `validate:"required"`
	Message string `validate:"required"`
}

// validationMessage maps the first failed field to the exact client-facing
// error string for that field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "ChatID":
			return "chatId is required"
		case "Message":
			return "message is required"
		}
	}
	return "invalid request"
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
