package model

import (
	"context"
	"fmt"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/itchan-dev/hackorsnooze/shared/validation"
)

// StoryList is the ordered, duplicate-free cache of every story.
type StoryList struct {
	api     API
	stories []domain.Story
}

// GetStories fetches all stories and builds a new list in server order.
func GetStories(ctx context.Context, a API) (*StoryList, error) {
	records, err := a.Stories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching stories: %w", err)
	}
	return &StoryList{api: a, stories: storiesFromRecords("get_stories", records)}, nil
}

// Stories returns a copy of the list.
func (l *StoryList) Stories() []domain.Story {
	return clone(l.stories)
}

func (l *StoryList) Len() int {
	return len(l.stories)
}

func (l *StoryList) Find(id domain.StoryId) (domain.Story, bool) {
	if i := domain.IndexOf(l.stories, id); i >= 0 {
		return l.stories[i], true
	}
	return domain.Story{}, false
}

// AddStory posts a story as user, then appends it to the list and to the
// user's own stories.
func (l *StoryList) AddStory(ctx context.Context, user *User, story domain.NewStory) (domain.Story, error) {
	if user == nil {
		return domain.Story{}, ErrNotLoggedIn
	}
	if err := validation.Struct(story); err != nil {
		return domain.Story{}, internal_errors.Validation("create_story", err)
	}

	record, err := l.api.CreateStory(ctx, user.token, story)
	if err != nil {
		return domain.Story{}, fmt.Errorf("adding story: %w", err)
	}
	created, err := record.ToDomain()
	if err != nil {
		return domain.Story{}, badResponse("create_story", err)
	}

	if domain.IndexOf(l.stories, created.StoryId) < 0 {
		l.stories = append(l.stories, created)
	}
	if domain.IndexOf(user.ownStories, created.StoryId) < 0 {
		user.ownStories = append(user.ownStories, created)
	}
	return created, nil
}

// RemoveStory deletes the story on the server, then drops it from the list
// and from the user's own and favorite stories. On error nothing changes.
func (l *StoryList) RemoveStory(ctx context.Context, user *User, id domain.StoryId) error {
	if user == nil {
		return ErrNotLoggedIn
	}
	if err := l.api.DeleteStory(ctx, user.token, id); err != nil {
		return fmt.Errorf("removing story %s: %w", id, err)
	}
	removeEverywhere(l, user, id)
	return nil
}

// removeEverywhere filters id out of all three collections. Every result is
// built before any is assigned, so the caller sees all three change together.
func removeEverywhere(l *StoryList, user *User, id domain.StoryId) {
	stories := domain.Without(l.stories, id)
	own := domain.Without(user.ownStories, id)
	favorites := domain.Without(user.favorites, id)

	l.stories, user.ownStories, user.favorites = stories, own, favorites
}
