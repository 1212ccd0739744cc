package service

import (
	"net/http"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
)

// --- Mocks ---

type MockAuthStorage struct {
	SaveUserFunc func(account domain.Account) error
	UserFunc     func(username domain.Username) (domain.Account, error)
}

func (m *MockAuthStorage) SaveUser(account domain.Account) error {
	if m.SaveUserFunc != nil {
		return m.SaveUserFunc(account)
	}
	return nil
}

func (m *MockAuthStorage) User(username domain.Username) (domain.Account, error) {
	if m.UserFunc != nil {
		return m.UserFunc(username)
	}
	return domain.Account{}, &errors.ErrorWithStatusCode{Message: "not found", StatusCode: http.StatusNotFound}
}

type MockJwt struct {
	NewTokenFunc func(username domain.Username) (domain.Token, error)
}

func (m *MockJwt) NewToken(username domain.Username) (domain.Token, error) {
	if m.NewTokenFunc != nil {
		return m.NewTokenFunc(username)
	}
	return "token-" + username, nil
}

type MockStoryStorage struct {
	SaveStoryFunc   func(story domain.Story) error
	StoryFunc       func(id domain.StoryId) (domain.Story, error)
	StoriesFunc     func(skip, limit int) []domain.Story
	DeleteStoryFunc func(username domain.Username, id domain.StoryId) (domain.Story, error)
}

func (m *MockStoryStorage) SaveStory(story domain.Story) error {
	if m.SaveStoryFunc != nil {
		return m.SaveStoryFunc(story)
	}
	return nil
}

func (m *MockStoryStorage) Story(id domain.StoryId) (domain.Story, error) {
	if m.StoryFunc != nil {
		return m.StoryFunc(id)
	}
	return domain.Story{}, &errors.ErrorWithStatusCode{Message: "not found", StatusCode: http.StatusNotFound}
}

func (m *MockStoryStorage) Stories(skip, limit int) []domain.Story {
	if m.StoriesFunc != nil {
		return m.StoriesFunc(skip, limit)
	}
	return nil
}

func (m *MockStoryStorage) DeleteStory(username domain.Username, id domain.StoryId) (domain.Story, error) {
	if m.DeleteStoryFunc != nil {
		return m.DeleteStoryFunc(username, id)
	}
	return domain.Story{StoryId: id, Username: username}, nil
}

type MockUserStorage struct {
	UserDetailsFunc    func(username domain.Username) (domain.UserDetails, error)
	AddFavoriteFunc    func(username domain.Username, id domain.StoryId) error
	RemoveFavoriteFunc func(username domain.Username, id domain.StoryId) error
}

func (m *MockUserStorage) UserDetails(username domain.Username) (domain.UserDetails, error) {
	if m.UserDetailsFunc != nil {
		return m.UserDetailsFunc(username)
	}
	return domain.UserDetails{Profile: domain.Profile{Username: username}}, nil
}

func (m *MockUserStorage) AddFavorite(username domain.Username, id domain.StoryId) error {
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(username, id)
	}
	return nil
}

func (m *MockUserStorage) RemoveFavorite(username domain.Username, id domain.StoryId) error {
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(username, id)
	}
	return nil
}
