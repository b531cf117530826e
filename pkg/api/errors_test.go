package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerError_ExtractsEnvelopeMessage(t *testing.T) {
	err := ServerError(404, []byte(`{"success":false,"error":true,"message":"Award not found"}`))
	assert.Equal(t, KindServer, err.Kind)
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, "Award not found", err.Message)
}

func TestServerError_FallsBackToStatus(t *testing.T) {
	err := ServerError(502, []byte(`<html>bad gateway</html>`))
	assert.Equal(t, "request failed: status 502", err.Message)
}

func TestTransportError_WrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := TransportError(cause)
	assert.Equal(t, KindTransport, err.Kind)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestErrUnauthenticated_MatchesByKind(t *testing.T) {
	wrapped := fmt.Errorf("fetch user: %w", ErrUnauthenticated)
	assert.ErrorIs(t, wrapped, ErrUnauthenticated)
	assert.NotErrorIs(t, wrapped, ErrTransport)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "nope", ErrorMessage(ServerError(400, []byte(`{"message":"nope"}`))))
	assert.Equal(t, "plain", ErrorMessage(errors.New("plain")))

	wrapped := fmt.Errorf("create award: %w", ServerError(400, []byte(`{"message":"title required"}`)))
	assert.Equal(t, "title required", ErrorMessage(wrapped))
}
