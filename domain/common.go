package domain

var (
	MessageFailedBodyRequest   = "failed to parse request body"
	MessageFailedValidation    = "request validation failed"
	MessageInternalServerError = "Internal Server Error"
)

type (
	FieldError struct {
		Field   string `json:"field"`
		Tag     string `json:"tag"`
		Param   string `json:"param,omitempty"`
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Detail string       `json:"detail"`
		Errors []FieldError `json:"errors,omitempty"`
	}
)
