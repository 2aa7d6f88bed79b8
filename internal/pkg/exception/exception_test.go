//go:build unit

package exception

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	kindOf := func(err error, want Kind) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, KindOf(err))
		}
	}

	t.Run("application_error", kindOf(Validation("source", "source is a required field"), KindValidation))
	t.Run("wrapped_application_error", kindOf(
		fmt.Errorf("flight service: %w", ApplicationError{Kind: KindUpstreamTransport, Message: "boom"}),
		KindUpstreamTransport))
	t.Run("plain_error", kindOf(errors.New("boom"), KindInternal))
	t.Run("empty_kind", kindOf(ApplicationError{Message: "boom"}, KindInternal))
}

func TestApplicationError_Is(t *testing.T) {
	sentinel := ApplicationError{Kind: KindUpstreamResponse, Message: "malformed upstream response"}

	wrapped := fmt.Errorf("serpapi: %w", sentinel.WithCause(errors.New("unexpected EOF")))

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, ApplicationError{Kind: KindUpstreamTransport, Message: "malformed upstream response"})
	assert.Equal(t, "serpapi: malformed upstream response: unexpected EOF", wrapped.Error())
}
