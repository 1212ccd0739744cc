// Package memory is a process-local store for the API server. It keeps
// everything in maps guarded by one RWMutex and loses it on restart.
package memory

import (
	"net/http"
	"slices"
	"sync"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
)

type user struct {
	account   domain.Account
	favorites []domain.StoryId // in the order they were added
}

type Storage struct {
	mu      sync.RWMutex
	users   map[domain.Username]*user
	stories map[domain.StoryId]domain.Story
	order   []domain.StoryId // insertion order
}

func New() *Storage {
	return &Storage{
		users:   make(map[domain.Username]*user),
		stories: make(map[domain.StoryId]domain.Story),
	}
}

func userNotFound() error {
	return &errors.ErrorWithStatusCode{Message: "No user found with that username", StatusCode: http.StatusNotFound}
}

func storyNotFound() error {
	return &errors.ErrorWithStatusCode{Message: "No story found with that id", StatusCode: http.StatusNotFound}
}

// =========================================================================
// Users
// =========================================================================

func (s *Storage) SaveUser(account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[account.Username]; exists {
		return &errors.ErrorWithStatusCode{Message: "There is already a user with username '" + account.Username + "'", StatusCode: http.StatusConflict}
	}
	s.users[account.Username] = &user{account: account}
	return nil
}

func (s *Storage) User(username domain.Username) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return domain.Account{}, userNotFound()
	}
	return u.account, nil
}

// UserDetails returns the profile with favorites (in the order added) and the
// stories the user posted (in insertion order).
func (s *Storage) UserDetails(username domain.Username) (domain.UserDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return domain.UserDetails{}, userNotFound()
	}
	details := domain.UserDetails{
		Profile:   u.account.Profile,
		UpdatedAt: u.account.UpdatedAt,
		Favorites: make([]domain.Story, 0, len(u.favorites)),
		Stories:   []domain.Story{},
	}
	for _, id := range u.favorites {
		details.Favorites = append(details.Favorites, s.stories[id])
	}
	for _, id := range s.order {
		if story := s.stories[id]; story.IsOwnedBy(username) {
			details.Stories = append(details.Stories, story)
		}
	}
	return details, nil
}

// =========================================================================
// Stories
// =========================================================================

func (s *Storage) SaveStory(story domain.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stories[story.StoryId]; exists {
		return &errors.ErrorWithStatusCode{Message: "Story id already taken", StatusCode: http.StatusConflict}
	}
	s.stories[story.StoryId] = story
	s.order = append(s.order, story.StoryId)
	return nil
}

func (s *Storage) Story(id domain.StoryId) (domain.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	story, ok := s.stories[id]
	if !ok {
		return domain.Story{}, storyNotFound()
	}
	return story, nil
}

// Stories returns up to limit stories, newest first, after skipping skip of them.
// A non-positive limit means no limit.
func (s *Storage) Stories(skip, limit int) []domain.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Story{}
	for i := len(s.order) - 1 - skip; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, s.stories[s.order[i]])
	}
	return out
}

// DeleteStory removes a story posted by username and drops it from every
// user's favorites. Stories posted by someone else are left alone.
func (s *Storage) DeleteStory(username domain.Username, id domain.StoryId) (domain.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	story, ok := s.stories[id]
	if !ok {
		return domain.Story{}, storyNotFound()
	}
	if !story.IsOwnedBy(username) {
		return domain.Story{}, &errors.ErrorWithStatusCode{Message: "You can only delete your own stories", StatusCode: http.StatusForbidden}
	}
	delete(s.stories, id)
	s.order = slices.DeleteFunc(s.order, func(other domain.StoryId) bool { return other == id })
	for _, u := range s.users {
		u.favorites = slices.DeleteFunc(u.favorites, func(other domain.StoryId) bool { return other == id })
	}
	return story, nil
}

// =========================================================================
// Favorites
// =========================================================================

// AddFavorite is a no-op when the story is already a favorite.
func (s *Storage) AddFavorite(username domain.Username, id domain.StoryId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return userNotFound()
	}
	if _, ok := s.stories[id]; !ok {
		return storyNotFound()
	}
	if !slices.Contains(u.favorites, id) {
		u.favorites = append(u.favorites, id)
	}
	return nil
}

// RemoveFavorite is a no-op when the story is not a favorite.
func (s *Storage) RemoveFavorite(username domain.Username, id domain.StoryId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return userNotFound()
	}
	if _, ok := s.stories[id]; !ok {
		return storyNotFound()
	}
	u.favorites = slices.DeleteFunc(u.favorites, func(other domain.StoryId) bool { return other == id })
	return nil
}
