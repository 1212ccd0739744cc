package model

import (
	"context"
	"testing"

	"github.com/itchan-dev/hackorsnooze/shared/api"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockAPI struct {
	StoriesFunc        func(ctx context.Context) ([]api.StoryRecord, error)
	CreateStoryFunc    func(ctx context.Context, token domain.Token, story domain.NewStory) (api.StoryRecord, error)
	DeleteStoryFunc    func(ctx context.Context, token domain.Token, storyId domain.StoryId) error
	SignupFunc         func(ctx context.Context, data domain.SignupData) (api.AuthResponse, error)
	LoginFunc          func(ctx context.Context, creds domain.Credentials) (api.AuthResponse, error)
	UserFunc           func(ctx context.Context, token domain.Token, username domain.Username) (api.UserRecord, error)
	AddFavoriteFunc    func(ctx context.Context, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error)
	RemoveFavoriteFunc func(ctx context.Context, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error)

	calls []string
}

func (m *MockAPI) Stories(ctx context.Context) ([]api.StoryRecord, error) {
	m.calls = append(m.calls, "Stories")
	if m.StoriesFunc != nil {
		return m.StoriesFunc(ctx)
	}
	return nil, nil
}

func (m *MockAPI) CreateStory(ctx context.Context, token domain.Token, story domain.NewStory) (api.StoryRecord, error) {
	m.calls = append(m.calls, "CreateStory")
	if m.CreateStoryFunc != nil {
		return m.CreateStoryFunc(ctx, token, story)
	}
	return api.StoryRecord{}, nil
}

func (m *MockAPI) DeleteStory(ctx context.Context, token domain.Token, storyId domain.StoryId) error {
	m.calls = append(m.calls, "DeleteStory")
	if m.DeleteStoryFunc != nil {
		return m.DeleteStoryFunc(ctx, token, storyId)
	}
	return nil
}

func (m *MockAPI) Signup(ctx context.Context, data domain.SignupData) (api.AuthResponse, error) {
	m.calls = append(m.calls, "Signup")
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, data)
	}
	return api.AuthResponse{}, nil
}

func (m *MockAPI) Login(ctx context.Context, creds domain.Credentials) (api.AuthResponse, error) {
	m.calls = append(m.calls, "Login")
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return api.AuthResponse{}, nil
}

func (m *MockAPI) User(ctx context.Context, token domain.Token, username domain.Username) (api.UserRecord, error) {
	m.calls = append(m.calls, "User")
	if m.UserFunc != nil {
		return m.UserFunc(ctx, token, username)
	}
	return api.UserRecord{}, nil
}

func (m *MockAPI) AddFavorite(ctx context.Context, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error) {
	m.calls = append(m.calls, "AddFavorite")
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(ctx, token, username, storyId)
	}
	return api.UserRecord{}, nil
}

func (m *MockAPI) RemoveFavorite(ctx context.Context, token domain.Token, username domain.Username, storyId domain.StoryId) (api.UserRecord, error) {
	m.calls = append(m.calls, "RemoveFavorite")
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(ctx, token, username, storyId)
	}
	return api.UserRecord{}, nil
}

// --- Fixtures ---

func record(id string) api.StoryRecord {
	return api.StoryRecord{
		StoryId:   id,
		Title:     "title " + id,
		Author:    "author " + id,
		Url:       "http://example.com/" + id,
		Username:  "bob",
		CreatedAt: "2021-09-13T19:06:21.351Z",
	}
}

func records(storyIds ...string) []api.StoryRecord {
	out := make([]api.StoryRecord, len(storyIds))
	for i, id := range storyIds {
		out[i] = record(id)
	}
	return out
}

func ids(stories []domain.Story) []string {
	out := make([]string, len(stories))
	for i, s := range stories {
		out[i] = s.StoryId
	}
	return out
}

// newTestUser builds a logged-in user directly, bypassing the API.
func newTestUser(t *testing.T, m *MockAPI, favorites, own []string) *User {
	u, err := newUser("test", m, api.UserRecord{
		Username:  "bob",
		Name:      "Bob",
		Favorites: records(favorites...),
		Stories:   records(own...),
	}, "tok")
	require.NoError(t, err)
	return u
}

func newTestList(m *MockAPI, stories ...string) *StoryList {
	return &StoryList{api: m, stories: storiesFromRecords("test", records(stories...))}
}
