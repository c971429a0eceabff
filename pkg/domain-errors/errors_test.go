package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	base := errors.New("db down")
	err := fmt.Errorf("load request: %w", Wrap(base, CodeInternal, "failed to load request"))

	assert.True(t, HasCode(err, CodeInternal))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.ErrorIs(t, err, base)
	assert.False(t, HasCode(base, CodeInternal))
}

func TestAs(t *testing.T) {
	de, ok := As(fmt.Errorf("wrapped: %w", New(CodeForbidden, "not yours")))
	require.True(t, ok)
	assert.Equal(t, CodeForbidden, de.Code)
	assert.Equal(t, "not yours", de.Message)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:   http.StatusBadRequest,
		CodeBadRequest:   http.StatusBadRequest,
		CodeNotFound:     http.StatusNotFound,
		CodeConflict:     http.StatusConflict,
		CodeForbidden:    http.StatusForbidden,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeRateLimited:  http.StatusTooManyRequests,
		CodeInternal:     http.StatusInternalServerError,
		Code("unknown"):  http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code %s", code)
	}
}
