package model

// ErrorResponse represents a standardised error response. Error carries the
// stable code for domain errors, or the plain message for validation errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeItemNotFound  = "ITEM_NOT_FOUND"
	ErrCodeEmptyCart     = "EMPTY_CART"
	ErrCodeInvalidStatus = "INVALID_STATUS"
	ErrCodeNotConfirmed  = "NOT_CONFIRMED"
	ErrCodeRelayFailed   = "RELAY_FAILED"
)

// DomainError carries a stable error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidJSON   = NewDomainError(ErrCodeInvalidJSON, "Invalid request body")
	ErrItemNotFound  = NewDomainError(ErrCodeItemNotFound, "Menu item not found")
	ErrEmptyCart     = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidStatus = NewDomainError(ErrCodeInvalidStatus, "Unknown status value")
	ErrNotConfirmed  = NewDomainError(ErrCodeNotConfirmed, "Reset requires explicit confirmation")
	ErrRelayFailed   = NewDomainError(ErrCodeRelayFailed, "Could not send message, please try again")
)
