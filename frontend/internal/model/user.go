package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/itchan-dev/hackorsnooze/shared/api"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/itchan-dev/hackorsnooze/shared/logger"
	"github.com/itchan-dev/hackorsnooze/shared/validation"
)

// User is the authenticated identity of a session.
type User struct {
	domain.Profile

	api        API
	token      domain.Token
	favorites  []domain.Story
	ownStories []domain.Story
}

func newUser(op string, a API, record api.UserRecord, token domain.Token) (*User, error) {
	if token == "" {
		return nil, badResponse(op, errors.New("missing token"))
	}
	profile, err := record.Profile()
	if err != nil {
		return nil, badResponse(op, err)
	}
	return &User{
		Profile:    profile,
		api:        a,
		token:      token,
		favorites:  storiesFromRecords(op, record.Favorites),
		ownStories: storiesFromRecords(op, record.Stories),
	}, nil
}

// Signup registers a new account and returns it logged in.
func Signup(ctx context.Context, a API, data domain.SignupData) (*User, error) {
	if err := validation.Struct(data); err != nil {
		return nil, internal_errors.Validation("signup", err)
	}
	resp, err := a.Signup(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("signing up %s: %w", data.Username, err)
	}
	return newUser("signup", a, resp.User, resp.Token)
}

func Login(ctx context.Context, a API, creds domain.Credentials) (*User, error) {
	if err := validation.Struct(creds); err != nil {
		return nil, internal_errors.Validation("login", err)
	}
	resp, err := a.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("logging in %s: %w", creds.Username, err)
	}
	return newUser("login", a, resp.User, resp.Token)
}

// RestoreSession revalidates a stored token. A stale session is routine at
// startup, so failure is logged and reported as nil rather than an error.
func RestoreSession(ctx context.Context, a API, token domain.Token, username domain.Username) *User {
	if token == "" || username == "" {
		return nil
	}
	record, err := a.User(ctx, token, username)
	if err != nil {
		logger.Component("model").Warn("stored session rejected",
			"username", username,
			"error", err)
		return nil
	}
	user, err := newUser("restore_session", a, record, token)
	if err != nil {
		logger.Component("model").Warn("stored session unusable",
			"username", username,
			"error", err)
		return nil
	}
	return user
}

func (u *User) Token() domain.Token {
	return u.token
}

// Favorites returns a copy of the user's favorite stories.
func (u *User) Favorites() []domain.Story {
	return clone(u.favorites)
}

// OwnStories returns a copy of the stories the user posted.
func (u *User) OwnStories() []domain.Story {
	return clone(u.ownStories)
}

// IsFavorite reports whether story is among the user's favorites.
func (u *User) IsFavorite(story domain.Story) bool {
	if u == nil {
		return false
	}
	return domain.IndexOf(u.favorites, story.StoryId) >= 0
}

func (u *User) IsOwnStory(story domain.Story) bool {
	if u == nil {
		return false
	}
	return domain.IndexOf(u.ownStories, story.StoryId) >= 0
}

// ToggleFavorite unfavorites story if it is a favorite and favorites it
// otherwise. The server's answer replaces the local favorites.
func (u *User) ToggleFavorite(ctx context.Context, story domain.Story) ([]domain.Story, error) {
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	if u.IsFavorite(story) {
		return u.RemoveFavorite(ctx, story)
	}
	return u.AddFavorite(ctx, story)
}

func (u *User) AddFavorite(ctx context.Context, story domain.Story) ([]domain.Story, error) {
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	record, err := u.api.AddFavorite(ctx, u.token, u.Username, story.StoryId)
	if err != nil {
		return nil, fmt.Errorf("favoriting %s: %w", story.StoryId, err)
	}
	return u.replaceFavorites("add_favorite", record), nil
}

func (u *User) RemoveFavorite(ctx context.Context, story domain.Story) ([]domain.Story, error) {
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	record, err := u.api.RemoveFavorite(ctx, u.token, u.Username, story.StoryId)
	if err != nil {
		return nil, fmt.Errorf("unfavoriting %s: %w", story.StoryId, err)
	}
	return u.replaceFavorites("remove_favorite", record), nil
}

// replaceFavorites trusts the server's set; membership is never computed locally.
func (u *User) replaceFavorites(op string, record api.UserRecord) []domain.Story {
	u.favorites = storiesFromRecords(op, record.Favorites)
	return u.Favorites()
}
