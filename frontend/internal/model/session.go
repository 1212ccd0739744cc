package model

import (
	"context"
	"fmt"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
)

// StoredCredentials is what the surrounding app may keep between runs.
type StoredCredentials struct {
	Token    domain.Token    `json:"token"`
	Username domain.Username `json:"username"`
}

// Session is the application's explicit state: the story list and the
// current user, nil while anonymous.
type Session struct {
	api     API
	Stories *StoryList
	User    *User
}

func NewSession(a API) *Session {
	return &Session{api: a}
}

// Start restores stored credentials, if any, and loads the story list.
// A rejected session leaves the Session anonymous without error.
func (s *Session) Start(ctx context.Context, stored *StoredCredentials) error {
	if stored != nil {
		s.User = RestoreSession(ctx, s.api, stored.Token, stored.Username)
	}
	return s.Refresh(ctx)
}

// Refresh replaces the story list with a fresh fetch. On error the old list stays.
func (s *Session) Refresh(ctx context.Context) error {
	list, err := GetStories(ctx, s.api)
	if err != nil {
		return err
	}
	s.Stories = list
	return nil
}

func (s *Session) Signup(ctx context.Context, data domain.SignupData) error {
	user, err := Signup(ctx, s.api, data)
	if err != nil {
		return err
	}
	s.User = user
	return nil
}

func (s *Session) Login(ctx context.Context, creds domain.Credentials) error {
	user, err := Login(ctx, s.api, creds)
	if err != nil {
		return err
	}
	s.User = user
	return nil
}

// Logout discards the user. The token is not revoked server side.
func (s *Session) Logout() {
	s.User = nil
}

func (s *Session) Authenticated() bool {
	return s.User != nil
}

// Credentials returns what to persist to restore this session, or nil.
func (s *Session) Credentials() *StoredCredentials {
	if s.User == nil {
		return nil
	}
	return &StoredCredentials{Token: s.User.token, Username: s.User.Username}
}

func (s *Session) Submit(ctx context.Context, story domain.NewStory) (domain.Story, error) {
	if s.Stories == nil {
		return domain.Story{}, ErrNotStarted
	}
	return s.Stories.AddStory(ctx, s.User, story)
}

func (s *Session) Delete(ctx context.Context, id domain.StoryId) error {
	if s.Stories == nil {
		return ErrNotStarted
	}
	return s.Stories.RemoveStory(ctx, s.User, id)
}

// ToggleFavorite toggles the story with id, looking it up in the story list
// first and then in the user's own collections.
func (s *Session) ToggleFavorite(ctx context.Context, id domain.StoryId) ([]domain.Story, error) {
	if s.User == nil {
		return nil, ErrNotLoggedIn
	}
	story, ok := s.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: story %s", internal_errors.ErrNotFound, id)
	}
	return s.User.ToggleFavorite(ctx, story)
}

func (s *Session) lookup(id domain.StoryId) (domain.Story, bool) {
	if s.Stories != nil {
		if story, ok := s.Stories.Find(id); ok {
			return story, true
		}
	}
	for _, stories := range [][]domain.Story{s.User.favorites, s.User.ownStories} {
		if i := domain.IndexOf(stories, id); i >= 0 {
			return stories[i], true
		}
	}
	return domain.Story{}, false
}
