package service

import (
	"net/http"
	"time"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/itchan-dev/hackorsnooze/shared/logger"
	"github.com/itchan-dev/hackorsnooze/shared/validation"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(data domain.SignupData) (domain.Token, error)
	Login(creds domain.Credentials) (domain.Token, error)
}

type AuthStorage interface {
	SaveUser(account domain.Account) error
	User(username domain.Username) (domain.Account, error)
}

type Jwt interface {
	NewToken(username domain.Username) (domain.Token, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Signup saves a new account and returns a token for it.
// A taken username is a 409.
func (a *Auth) Signup(data domain.SignupData) (domain.Token, error) {
	if err := validation.Struct(data); err != nil {
		return "", &errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusBadRequest}
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}

	now := time.Now().UTC()
	account := domain.Account{
		Profile:   domain.Profile{Username: data.Username, Name: data.Name, CreatedAt: now},
		PassHash:  string(passHash),
		UpdatedAt: now,
	}
	if err := a.storage.SaveUser(account); err != nil {
		return "", err
	}

	logger.Component("auth").Info("user signed up", "username", data.Username)
	return a.jwt.NewToken(data.Username)
}

// Login checks the password and returns a fresh token.
func (a *Auth) Login(creds domain.Credentials) (domain.Token, error) {
	if err := validation.Struct(creds); err != nil {
		return "", &errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusBadRequest}
	}

	account, err := a.storage.User(creds.Username)
	if errors.StatusCode(err) == http.StatusNotFound {
		return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PassHash), []byte(creds.Password)); err != nil {
		logger.Component("auth").Debug("password mismatch", "username", creds.Username)
		return "", &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	}
	return a.jwt.NewToken(creds.Username)
}
