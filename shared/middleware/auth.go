package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
	jwt_internal "github.com/itchan-dev/hackorsnooze/shared/jwt"
	"github.com/itchan-dev/hackorsnooze/shared/utils"
)

// Key to store the authenticated username in the request context
type key int

const UsernameKey key = 0

// maxTokenBody bounds how much of a request body is buffered to look for a
// token. Larger bodies are rejected.
const maxTokenBody = 1 << 20

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that rejects requests without a valid token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractToken(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if token == "" {
				utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized})
				return
			}

			username, err := a.jwtService.Username(token)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken looks at ?token=, then the Authorization header, then a
// "token" field in a JSON body. The body is restored for the handler.
func extractToken(r *http.Request) (domain.Token, error) {
	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return token, nil
	}
	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxTokenBody+1))
	r.Body.Close()
	if err != nil {
		return "", &errors.ErrorWithStatusCode{Message: "Can't read body", StatusCode: http.StatusBadRequest}
	}
	if len(body) > maxTokenBody {
		return "", &errors.ErrorWithStatusCode{Message: "Request body too large", StatusCode: http.StatusRequestEntityTooLarge}
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	var withToken struct {
		Token string `json:"token"`
	}
	if len(body) == 0 || json.Unmarshal(body, &withToken) != nil {
		return "", nil
	}
	return withToken.Token, nil
}

// GetUsernameFromContext retrieves the authenticated username, or "" if none.
func GetUsernameFromContext(r *http.Request) domain.Username {
	username, _ := r.Context().Value(UsernameKey).(string)
	return username
}
