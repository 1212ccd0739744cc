// Package model keeps the client's view of the stories service: the global
// story list, the current user and that user's own and favorite stories.
//
// Every operation is a single blocking call to the API. Nothing is retried
// and nothing is locked; a Session belongs to one thread of control.
package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/itchan-dev/hackorsnooze/shared/api"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/itchan-dev/hackorsnooze/shared/logger"
)

// API is the remote service as the model layer uses it.
// *apiclient.APIClient implements it.
type API interface {
	Stories(ctx context.Context) ([]api.StoryRecord, error)
	CreateStory(ctx context.Context, token domain.Token, story domain.NewStory) (api.StoryRecord, error)
	DeleteStory(ctx context.Context, token domain.Token, storyId domain.StoryId) error

	Signup(ctx context.Context, data domain.SignupData) (api.AuthResponse, error)
	Login(ctx context.Context, creds domain.Credentials) (api.AuthResponse, error)
	User(ctx context.Context, token domain.Token, username domain.Username) (api.UserRecord, error)
	AddFavorite(ctx context.Context, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error)
	RemoveFavorite(ctx context.Context, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error)
}

var (
	ErrNotLoggedIn = fmt.Errorf("%w: not logged in", internal_errors.ErrAuth)
	ErrNotStarted  = errors.New("session not started")
)

// storiesFromRecords converts records in order, skipping malformed ones and
// repeated ids so a list never holds the same story twice.
func storiesFromRecords(op string, records []api.StoryRecord) []domain.Story {
	stories := make([]domain.Story, 0, len(records))
	seen := make(map[domain.StoryId]struct{}, len(records))
	for _, r := range records {
		s, err := r.ToDomain()
		if err != nil {
			logger.Component("model").Warn("skipping malformed story record",
				"op", op,
				"error", err)
			continue
		}
		if _, dup := seen[s.StoryId]; dup {
			logger.Component("model").Warn("skipping duplicate story",
				"op", op,
				"story_id", s.StoryId)
			continue
		}
		seen[s.StoryId] = struct{}{}
		stories = append(stories, s)
	}
	return stories
}

// badResponse marks a success response whose content can't be used.
func badResponse(op string, err error) error {
	return &internal_errors.APIError{Op: op, Message: "unusable response", Kind: internal_errors.ErrServer, Err: err}
}

func clone(stories []domain.Story) []domain.Story {
	return append([]domain.Story(nil), stories...)
}
