package handler

import (
	"net/http"
	"strconv"

	"github.com/itchan-dev/hackorsnooze/backend/internal/service"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
)

type Handler struct {
	auth    service.AuthService
	stories service.StoryService
	users   service.UserService
}

func New(auth service.AuthService, stories service.StoryService, users service.UserService) *Handler {
	return &Handler{auth: auth, stories: stories, users: users}
}

// parseIntParam parses an optional integer query parameter; empty means 0.
func parseIntParam(param string, paramName string) (int, error) {
	if param == "" {
		return 0, nil
	}
	val, err := strconv.Atoi(param)
	if err != nil {
		return 0, &errors.ErrorWithStatusCode{Message: "invalid " + paramName + ": must be an integer", StatusCode: http.StatusBadRequest}
	}
	return val, nil
}
