package jwt

import (
	"net/http"
	"testing"
	"time"

	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.NewToken("bob")
	require.NoError(t, err)

	username, err := svc.Username(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}

func TestRejects(t *testing.T) {
	svc := New("secret", time.Hour)
	other := New("other-secret", time.Hour)
	expired := New("secret", -time.Minute)

	foreign, err := other.NewToken("bob")
	require.NoError(t, err)
	old, err := expired.NewToken("bob")
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"expired":      old,
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Username(token)
			require.Error(t, err)
			assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))
		})
	}
}
