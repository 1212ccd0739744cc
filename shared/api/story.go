package api

import (
	"fmt"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/validation"
)

// StoryRecord is a story as it travels over the wire.
type StoryRecord struct {
	StoryId   string `json:"storyId" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Url       string `json:"url" validate:"required"`
	Username  string `json:"username" validate:"required"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ToDomain validates the record and converts it to a domain.Story.
// A missing or unparsable createdAt normalizes to the zero time.
func (r StoryRecord) ToDomain() (domain.Story, error) {
	if err := validation.Struct(r); err != nil {
		return domain.Story{}, fmt.Errorf("story record %q: %w", r.StoryId, err)
	}
	createdAt, _ := ParseTime(r.CreatedAt)
	return domain.Story{
		StoryId:   r.StoryId,
		Title:     r.Title,
		Author:    r.Author,
		Url:       r.Url,
		Username:  r.Username,
		CreatedAt: createdAt,
	}, nil
}

func FromStory(s domain.Story) StoryRecord {
	return StoryRecord{
		StoryId:   s.StoryId,
		Title:     s.Title,
		Author:    s.Author,
		Url:       s.Url,
		Username:  s.Username,
		CreatedAt: FormatTime(s.CreatedAt),
		UpdatedAt: FormatTime(s.CreatedAt),
	}
}

func FromStories(stories []domain.Story) []StoryRecord {
	records := make([]StoryRecord, len(stories))
	for i, s := range stories {
		records[i] = FromStory(s)
	}
	return records
}

// Request DTOs

type NewStoryFields struct {
	Author string `json:"author" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Url    string `json:"url" validate:"required,http_url"`
}

type CreateStoryRequest struct {
	Token string         `json:"token" validate:"required"`
	Story NewStoryFields `json:"story"`
}

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// Response DTOs

type StoriesResponse struct {
	Stories []StoryRecord `json:"stories"`
}

type StoryResponse struct {
	Message string      `json:"message,omitempty"`
	Story   StoryRecord `json:"story"`
}
