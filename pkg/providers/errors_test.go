package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify(t *testing.T) {
	t.Run("unclassified errors default to transient", func(t *testing.T) {
		assert.Equal(t, KindTransient, Classify(errors.New("boom")))
	})

	t.Run("sees through wrapping", func(t *testing.T) {
		err := fmt.Errorf("translate stage: %w",
			NewError("translate_primary", KindRateLimited, errors.New("429")))
		assert.Equal(t, KindRateLimited, Classify(err))
	})

	t.Run("retryable for everything but permanent", func(t *testing.T) {
		assert.True(t, Retryable(NewError("p", KindTransient, errors.New("x"))))
		assert.True(t, Retryable(NewError("p", KindRateLimited, errors.New("x"))))
		assert.True(t, Retryable(NewError("p", KindUnavailable, errors.New("x"))))
		assert.False(t, Retryable(NewError("p", KindPermanent, errors.New("x"))))
	})
}

func TestClassifyHTTPStatus(t *testing.T) {
	assert.Equal(t, KindRateLimited, classifyHTTPStatus(http.StatusTooManyRequests))
	assert.Equal(t, KindUnavailable, classifyHTTPStatus(http.StatusServiceUnavailable))
	assert.Equal(t, KindTransient, classifyHTTPStatus(http.StatusInternalServerError))
	assert.Equal(t, KindTransient, classifyHTTPStatus(http.StatusBadGateway))
	assert.Equal(t, KindPermanent, classifyHTTPStatus(http.StatusBadRequest))
	assert.Equal(t, KindPermanent, classifyHTTPStatus(http.StatusUnauthorized))
}

func TestClassifyGRPC(t *testing.T) {
	for code, want := range map[codes.Code]ErrorKind{
		codes.ResourceExhausted: KindRateLimited,
		codes.Unavailable:       KindUnavailable,
		codes.DeadlineExceeded:  KindTransient,
		codes.Internal:          KindTransient,
		codes.InvalidArgument:   KindPermanent,
		codes.Unimplemented:     KindPermanent,
	} {
		assert.Equal(t, want, classifyGRPC(status.Error(code, "test")), "code %s", code)
	}

	t.Run("non-status errors fall back to transport classification", func(t *testing.T) {
		assert.Equal(t, KindTransient, classifyGRPC(context.DeadlineExceeded))
	})
}
