package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/itchan-dev/hackorsnooze/shared/logger"
	"github.com/itchan-dev/hackorsnooze/shared/validation"
	"github.com/microcosm-cc/bluemonday"
)

// MaxStoriesPerPage caps the limit a client may ask for.
const MaxStoriesPerPage = 100

type StoryService interface {
	List(skip, limit int) ([]domain.Story, error)
	Get(id domain.StoryId) (domain.Story, error)
	Create(username domain.Username, story domain.NewStory) (domain.Story, error)
	Delete(username domain.Username, id domain.StoryId) (domain.Story, error)
}

type StoryStorage interface {
	SaveStory(story domain.Story) error
	Story(id domain.StoryId) (domain.Story, error)
	Stories(skip, limit int) []domain.Story
	DeleteStory(username domain.Username, id domain.StoryId) (domain.Story, error)
}

type Stories struct {
	storage StoryStorage
	policy  *bluemonday.Policy
	newId   func() domain.StoryId
}

func NewStories(storage StoryStorage) *Stories {
	return &Stories{
		storage: storage,
		policy:  bluemonday.StrictPolicy(),
		newId:   uuid.NewString,
	}
}

// List returns stories newest first. limit is clamped to MaxStoriesPerPage;
// zero means the maximum.
func (s *Stories) List(skip, limit int) ([]domain.Story, error) {
	if skip < 0 || limit < 0 {
		return nil, &errors.ErrorWithStatusCode{Message: "skip and limit must not be negative", StatusCode: http.StatusBadRequest}
	}
	if limit == 0 || limit > MaxStoriesPerPage {
		limit = MaxStoriesPerPage
	}
	return s.storage.Stories(skip, limit), nil
}

func (s *Stories) Get(id domain.StoryId) (domain.Story, error) {
	return s.storage.Story(id)
}

// Create stores a story posted by username. Markup is stripped from the
// title and author.
func (s *Stories) Create(username domain.Username, story domain.NewStory) (domain.Story, error) {
	story.Title = strings.TrimSpace(s.policy.Sanitize(story.Title))
	story.Author = strings.TrimSpace(s.policy.Sanitize(story.Author))
	if err := validation.Struct(story); err != nil {
		return domain.Story{}, &errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusBadRequest}
	}

	created := domain.Story{
		StoryId:   s.newId(),
		Title:     story.Title,
		Author:    story.Author,
		Url:       story.Url,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.storage.SaveStory(created); err != nil {
		return domain.Story{}, err
	}

	logger.Component("stories").Info("story created",
		"story_id", created.StoryId,
		"username", username)
	return created, nil
}

// Delete removes a story. Only the user who posted it may do so; storage
// checks ownership and deletes in one step.
func (s *Stories) Delete(username domain.Username, id domain.StoryId) (domain.Story, error) {
	story, err := s.storage.DeleteStory(username, id)
	if err != nil {
		return domain.Story{}, err
	}

	logger.Component("stories").Info("story deleted",
		"story_id", id,
		"username", username)
	return story, nil
}
