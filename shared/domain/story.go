package domain

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
)

var ErrInvalidURL = fmt.Errorf("%w: invalid story url", internal_errors.ErrValidation)

type Story struct {
	StoryId   StoryId
	Title     string
	Author    string
	Url       string
	Username  Username // who posted it
	CreatedAt time.Time
}

// Hostname parses Url and returns its host without port.
func (s Story) Hostname() (string, error) {
	u, err := url.Parse(s.Url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if !u.IsAbs() || u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q is not an absolute url", ErrInvalidURL, s.Url)
	}
	return u.Hostname(), nil
}

// NewStory is what a user submits; the server assigns the rest.
type NewStory struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Url    string `validate:"required,http_url"`
}

// IndexOf returns the position of the story with id, or -1.
func IndexOf(stories []Story, id StoryId) int {
	for i, s := range stories {
		if s.StoryId == id {
			return i
		}
	}
	return -1
}

// Without returns a new slice of stories excluding id. The input is not modified.
func Without(stories []Story, id StoryId) []Story {
	out := make([]Story, 0, len(stories))
	for _, s := range stories {
		if s.StoryId != id {
			out = append(out, s)
		}
	}
	return out
}

// IsInvalidURL reports whether err came from Hostname.
func IsInvalidURL(err error) bool {
	return errors.Is(err, ErrInvalidURL)
}

// IsOwnedBy reports whether username posted the story.
func (s Story) IsOwnedBy(username Username) bool {
	return s.Username == username
}
