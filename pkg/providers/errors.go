package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies a provider failure for the retry policy.
type ErrorKind string

// Error kinds. The queue runtime retries transient and rate_limited;
// permanent failures mark the stage failed immediately; unavailable is
// retried like transient but signals the provider as a whole is down.
const (
	KindTransient   ErrorKind = "transient"
	KindRateLimited ErrorKind = "rate_limited"
	KindPermanent   ErrorKind = "permanent"
	KindUnavailable ErrorKind = "unavailable"
)

// Error is a classified provider failure.
type Error struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s provider: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a classification.
func NewError(provider string, kind ErrorKind, err error) *Error {
	return &Error{Provider: provider, Kind: kind, Err: err}
}

// Classify returns the error kind, defaulting to transient for
// unclassified failures so the runtime errs on the side of retrying.
func Classify(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransient
}

// Retryable reports whether the runtime should re-enqueue after err.
func Retryable(err error) bool {
	switch Classify(err) {
	case KindPermanent:
		return false
	default:
		return true
	}
}

// classifyHTTPStatus maps an HTTP response status to an error kind.
func classifyHTTPStatus(code int) ErrorKind {
	switch {
	case code == http.StatusTooManyRequests:
		return KindRateLimited
	case code == http.StatusServiceUnavailable:
		return KindUnavailable
	case code >= 500:
		return KindTransient
	default:
		// Remaining 4xx: the request itself is wrong; retrying cannot help.
		return KindPermanent
	}
}

// classifyCallError maps a transport-level error (no HTTP status) to a kind.
func classifyCallError(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransient
	}
	return KindTransient
}

// classifyGRPC maps a gRPC status error to an error kind.
func classifyGRPC(err error) ErrorKind {
	st, ok := status.FromError(err)
	if !ok {
		return classifyCallError(err)
	}
	switch st.Code() {
	case codes.ResourceExhausted:
		return KindRateLimited
	case codes.Unavailable:
		return KindUnavailable
	case codes.DeadlineExceeded, codes.Aborted, codes.Internal, codes.Unknown:
		return KindTransient
	case codes.InvalidArgument, codes.NotFound, codes.FailedPrecondition,
		codes.Unimplemented, codes.PermissionDenied, codes.Unauthenticated:
		return KindPermanent
	default:
		return KindTransient
	}
}
