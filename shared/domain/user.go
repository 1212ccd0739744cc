package domain

import "time"

type Credentials struct {
	Username Username `validate:"required"`
	Password Password `validate:"required"`
}

type SignupData struct {
	Credentials
	Name string `validate:"required"`
}

// Profile is the identity part of a user as the API reports it.
type Profile struct {
	Username  Username
	Name      string
	CreatedAt time.Time
}

// Account is a user as the server stores it.
type Account struct {
	Profile
	PassHash  string
	UpdatedAt time.Time
}

// UserDetails is a profile with the stories attached to it.
type UserDetails struct {
	Profile
	UpdatedAt time.Time
	Favorites []Story
	Stories   []Story
}
