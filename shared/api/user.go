package api

import (
	"fmt"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/validation"
)

type UserRecord struct {
	Username  string        `json:"username" validate:"required"`
	Name      string        `json:"name"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt,omitempty"`
	Favorites []StoryRecord `json:"favorites"`
	Stories   []StoryRecord `json:"stories"`
}

// Profile validates the record's identity fields.
func (r UserRecord) Profile() (domain.Profile, error) {
	if err := validation.Struct(struct {
		Username string `validate:"required"`
	}{r.Username}); err != nil {
		return domain.Profile{}, fmt.Errorf("user record: %w", err)
	}
	createdAt, _ := ParseTime(r.CreatedAt)
	return domain.Profile{Username: r.Username, Name: r.Name, CreatedAt: createdAt}, nil
}

func FromUserDetails(d domain.UserDetails) UserRecord {
	return UserRecord{
		Username:  d.Username,
		Name:      d.Name,
		CreatedAt: FormatTime(d.CreatedAt),
		UpdatedAt: FormatTime(d.UpdatedAt),
		Favorites: FromStories(d.Favorites),
		Stories:   FromStories(d.Stories),
	}
}

// Request DTOs

type SignupUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type SignupRequest struct {
	User SignupUser `json:"user"`
}

type LoginUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	User LoginUser `json:"user"`
}

// Response DTOs

type AuthResponse struct {
	Token string     `json:"token"`
	User  UserRecord `json:"user"`
}

type UserResponse struct {
	Message string     `json:"message,omitempty"`
	User    UserRecord `json:"user"`
}

type ErrorBody struct {
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
