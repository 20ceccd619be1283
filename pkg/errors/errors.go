package errors

import (
	"errors"
	"fmt"
)

var (
	ErrGuildUnavailable = errors.New("guild unavailable")
	ErrChannelNotFound  = errors.New("channel not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrRoleNotFound     = errors.New("role not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTimeout          = errors.New("discord API timeout")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("missing staff role")
	ErrAlreadyProcessed = errors.New("evaluation batch already processed")
	ErrUnknownTaskKind  = errors.New("unknown task kind")
	ErrInvalidColor     = errors.New("invalid embed color")
	ErrEmptyRoster      = errors.New("evaluation roster has no valid entries")
	ErrUnknownTraining  = errors.New("unknown training type")
)

type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s",
		e.Field, e.Value, e.Message)
}

// DeliveryError wraps a failed Discord sub-operation with a reason sentinel
// so callers can tell member-not-found from permission-denied from timeout.
type DeliveryError struct {
	Op     string
	Reason error
	Err    error
}

func (e DeliveryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason.Error())
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Reason.Error(), e.Err.Error())
}

func (e DeliveryError) Unwrap() error {
	return e.Reason
}

func NewDeliveryError(op string, reason, err error) error {
	return DeliveryError{Op: op, Reason: reason, Err: err}
}
