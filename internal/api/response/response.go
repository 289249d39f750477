package response

import (
	"github.com/gin-gonic/gin"
)

// Client-facing texts shared by the handlers.
const (
	MsgTechnicalError     = "A technical error has occurred"
	MsgInvalidPayload     = "Invalid request payload"
	StatusUserCreated     = "User created successfully"
	StatusUserNotCreated  = "User not created"
	StatusTokenUnverified = "Could not verify token"
	StatusRequestFailed   = "Request failed"
)

// Envelope is the body of register and details responses.
type Envelope struct {
	Errors []string `json:"errors"`
	Data   Status   `json:"data"`
}

// Status is a single status line.
type Status struct {
	Status string `json:"status"`
}

// Message is the body of login failures.
type Message struct {
	Message string `json:"message"`
}

// NewEnvelope builds an Envelope; a nil errs is rendered as an empty list.
func NewEnvelope(errs []string, status string) Envelope {
	if errs == nil {
		errs = []string{}
	}
	return Envelope{Errors: errs, Data: Status{Status: status}}
}

// EnvelopeResponse writes an Envelope with the given status code.
func EnvelopeResponse(c *gin.Context, code int, errs []string, status string) {
	c.JSON(code, NewEnvelope(errs, status))
}

// TechnicalErrorResponse writes the generic technical failure envelope.
func TechnicalErrorResponse(c *gin.Context, code int, status string) {
	c.JSON(code, NewEnvelope([]string{MsgTechnicalError}, status))
}

// MessageResponse writes a {"message": ...} body.
func MessageResponse(c *gin.Context, code int, message string) {
	c.JSON(code, Message{Message: message})
}
