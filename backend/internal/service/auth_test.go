package service

import (
	"net/http"
	"testing"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup(t *testing.T) {
	data := domain.SignupData{Credentials: domain.Credentials{Username: "bob", Password: "secret"}, Name: "Bob"}

	t.Run("success", func(t *testing.T) {
		var saved domain.Account
		storage := &MockAuthStorage{SaveUserFunc: func(account domain.Account) error {
			saved = account
			return nil
		}}
		auth := NewAuth(storage, &MockJwt{})

		token, err := auth.Signup(data)
		require.NoError(t, err)
		assert.Equal(t, "token-bob", token)
		assert.Equal(t, "bob", saved.Username)
		assert.Equal(t, "Bob", saved.Name)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.NotEqual(t, "secret", saved.PassHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PassHash), []byte("secret")))
	})

	t.Run("username taken", func(t *testing.T) {
		storage := &MockAuthStorage{SaveUserFunc: func(account domain.Account) error {
			return &internal_errors.ErrorWithStatusCode{Message: "taken", StatusCode: http.StatusConflict}
		}}
		_, err := NewAuth(storage, &MockJwt{}).Signup(data)
		assert.Equal(t, http.StatusConflict, internal_errors.StatusCode(err))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := NewAuth(&MockAuthStorage{}, &MockJwt{}).Signup(domain.SignupData{Credentials: data.Credentials})
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
	})
}

func TestLogin(t *testing.T) {
	passHash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	storage := &MockAuthStorage{UserFunc: func(username domain.Username) (domain.Account, error) {
		if username != "bob" {
			return domain.Account{}, &internal_errors.ErrorWithStatusCode{Message: "not found", StatusCode: http.StatusNotFound}
		}
		return domain.Account{Profile: domain.Profile{Username: "bob"}, PassHash: string(passHash)}, nil
	}}
	auth := NewAuth(storage, &MockJwt{})

	tests := []struct {
		name       string
		creds      domain.Credentials
		wantStatus int
	}{
		{"correct password", domain.Credentials{Username: "bob", Password: "secret"}, 0},
		{"wrong password", domain.Credentials{Username: "bob", Password: "nope"}, http.StatusUnauthorized},
		{"unknown user", domain.Credentials{Username: "amy", Password: "secret"}, http.StatusUnauthorized},
		{"missing password", domain.Credentials{Username: "bob"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.Login(tt.creds)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, "token-bob", token)
				return
			}
			assert.Equal(t, tt.wantStatus, internal_errors.StatusCode(err))
			assert.Empty(t, token)
		})
	}
}
