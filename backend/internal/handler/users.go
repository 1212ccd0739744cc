package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/hackorsnooze/shared/api"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
	mw "github.com/itchan-dev/hackorsnooze/shared/middleware"
	"github.com/itchan-dev/hackorsnooze/shared/utils"
)

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	details, err := h.users.Get(chi.URLParam(r, "username"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.UserResponse{User: api.FromUserDetails(details)})
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.changeFavorite(w, r, h.users.AddFavorite, "Favorite Added!")
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.changeFavorite(w, r, h.users.RemoveFavorite, "Favorite Removed!")
}

type favoriteChange func(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error)

func (h *Handler) changeFavorite(w http.ResponseWriter, r *http.Request, change favoriteChange, message string) {
	requester := mw.GetUsernameFromContext(r)
	if requester == "" {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Not authorized", StatusCode: http.StatusUnauthorized})
		return
	}

	details, err := change(requester, chi.URLParam(r, "username"), chi.URLParam(r, "storyId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.UserResponse{Message: message, User: api.FromUserDetails(details)})
}
