package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
	mw "github.com/itchan-dev/hackorsnooze/shared/middleware"
)

type MockAuthService struct {
	MockSignup func(data domain.SignupData) (domain.Token, error)
	MockLogin  func(creds domain.Credentials) (domain.Token, error)
}

func (m *MockAuthService) Signup(data domain.SignupData) (domain.Token, error) {
	if m.MockSignup != nil {
		return m.MockSignup(data)
	}
	return "token", nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (domain.Token, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return "token", nil
}

type MockStoryService struct {
	MockList   func(skip, limit int) ([]domain.Story, error)
	MockGet    func(id domain.StoryId) (domain.Story, error)
	MockCreate func(username domain.Username, story domain.NewStory) (domain.Story, error)
	MockDelete func(username domain.Username, id domain.StoryId) (domain.Story, error)
}

func (m *MockStoryService) List(skip, limit int) ([]domain.Story, error) {
	if m.MockList != nil {
		return m.MockList(skip, limit)
	}
	return nil, nil
}

func (m *MockStoryService) Get(id domain.StoryId) (domain.Story, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Story{StoryId: id}, nil
}

func (m *MockStoryService) Create(username domain.Username, story domain.NewStory) (domain.Story, error) {
	if m.MockCreate != nil {
		return m.MockCreate(username, story)
	}
	return domain.Story{}, nil
}

func (m *MockStoryService) Delete(username domain.Username, id domain.StoryId) (domain.Story, error) {
	if m.MockDelete != nil {
		return m.MockDelete(username, id)
	}
	return domain.Story{StoryId: id, Username: username}, nil
}

type MockUserService struct {
	MockGet            func(username domain.Username) (domain.UserDetails, error)
	MockAddFavorite    func(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error)
	MockRemoveFavorite func(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error)
}

func (m *MockUserService) Get(username domain.Username) (domain.UserDetails, error) {
	if m.MockGet != nil {
		return m.MockGet(username)
	}
	return domain.UserDetails{Profile: domain.Profile{Username: username}}, nil
}

func (m *MockUserService) AddFavorite(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error) {
	if m.MockAddFavorite != nil {
		return m.MockAddFavorite(requester, username, id)
	}
	return domain.UserDetails{Profile: domain.Profile{Username: username}}, nil
}

func (m *MockUserService) RemoveFavorite(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error) {
	if m.MockRemoveFavorite != nil {
		return m.MockRemoveFavorite(requester, username, id)
	}
	return domain.UserDetails{Profile: domain.Profile{Username: username}}, nil
}

// asUser puts username in the request context the way the auth middleware does.
func asUser(username domain.Username) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), mw.UsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func setupTestRouter(h *Handler, username domain.Username) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/stories", h.GetStories)
	router.Get("/stories/{storyId}", h.GetStory)
	router.Post("/signup", h.Signup)
	router.Post("/login", h.Login)
	router.Get("/users/{username}", h.GetUser)

	router.Group(func(r chi.Router) {
		if username != "" {
			r.Use(asUser(username))
		}
		r.Post("/stories", h.CreateStory)
		r.Delete("/stories/{storyId}", h.DeleteStory)
		r.Post("/users/{username}/favorites/{storyId}", h.AddFavorite)
		r.Delete("/users/{username}/favorites/{storyId}", h.RemoveFavorite)
	})
	return router
}
