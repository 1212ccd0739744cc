package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/itchan-dev/hackorsnooze/shared/api"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
)

// Signup registers a new account and returns its first token.
func (c *APIClient) Signup(ctx context.Context, data domain.SignupData) (api.AuthResponse, error) {
	req := api.SignupRequest{User: api.SignupUser{
		Username: data.Username,
		Password: data.Password,
		Name:     data.Name,
	}}
	var resp api.AuthResponse
	err := c.do(ctx, "signup", http.MethodPost, "/signup", req, &resp)
	return resp, err
}

func (c *APIClient) Login(ctx context.Context, creds domain.Credentials) (api.AuthResponse, error) {
	req := api.LoginRequest{User: api.LoginUser{Username: creds.Username, Password: creds.Password}}
	var resp api.AuthResponse
	err := c.do(ctx, "login", http.MethodPost, "/login", req, &resp)
	return resp, err
}

// User fetches a user's record, which also validates token.
func (c *APIClient) User(ctx context.Context, token domain.Token, username domain.Username) (api.UserRecord, error) {
	path := fmt.Sprintf("/users/%s?%s", url.PathEscape(username), url.Values{"token": {token}}.Encode())
	var resp api.UserResponse
	if err := c.do(ctx, "get_user", http.MethodGet, path, nil, &resp); err != nil {
		return api.UserRecord{}, err
	}
	return resp.User, nil
}

func (c *APIClient) AddFavorite(ctx context.Context, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error) {
	return c.favorite(ctx, "add_favorite", http.MethodPost, token, username, storyId)
}

func (c *APIClient) RemoveFavorite(ctx context.Context, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error) {
	return c.favorite(ctx, "remove_favorite", http.MethodDelete, token, username, storyId)
}

func (c *APIClient) favorite(ctx context.Context, op, method string, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error) {
	path := fmt.Sprintf("/users/%s/favorites/%s", url.PathEscape(username), url.PathEscape(storyId))
	var resp api.UserResponse
	if err := c.do(ctx, op, method, path, api.TokenRequest{Token: token}, &resp); err != nil {
		return api.UserRecord{}, err
	}
	return resp.User, nil
}
