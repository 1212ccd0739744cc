package handler

import (
	"net/http"

	"github.com/itchan-dev/hackorsnooze/shared/api"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body api.SignupRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := domain.SignupData{
		Credentials: domain.Credentials{Username: body.User.Username, Password: body.User.Password},
		Name:        body.User.Name,
	}
	token, err := h.auth.Signup(data)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.writeAuthResponse(w, http.StatusCreated, token, data.Username)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creds := domain.Credentials{Username: body.User.Username, Password: body.User.Password}
	token, err := h.auth.Login(creds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	h.writeAuthResponse(w, http.StatusOK, token, creds.Username)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, status int, token domain.Token, username domain.Username) {
	details, err := h.users.Get(username)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, status, api.AuthResponse{Token: token, User: api.FromUserDetails(details)})
}
