package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/hackorsnooze/shared/api"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
	mw "github.com/itchan-dev/hackorsnooze/shared/middleware"
	"github.com/itchan-dev/hackorsnooze/shared/utils"
)

func (h *Handler) GetStories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	skip, err := parseIntParam(query.Get("skip"), "skip")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	limit, err := parseIntParam(query.Get("limit"), "limit")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	stories, err := h.stories.List(skip, limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.StoriesResponse{Stories: api.FromStories(stories)})
}

func (h *Handler) GetStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.stories.Get(chi.URLParam(r, "storyId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.StoryResponse{Story: api.FromStory(story)})
}

func (h *Handler) CreateStory(w http.ResponseWriter, r *http.Request) {
	username := mw.GetUsernameFromContext(r)
	if username == "" {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Not authorized", StatusCode: http.StatusUnauthorized})
		return
	}

	// the token may have come from a header, so only the story is validated
	var body api.CreateStoryRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	story, err := h.stories.Create(username, domain.NewStory{
		Title:  body.Story.Title,
		Author: body.Story.Author,
		Url:    body.Story.Url,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.StoryResponse{Story: api.FromStory(story)})
}

func (h *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	username := mw.GetUsernameFromContext(r)
	if username == "" {
		utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{Message: "Not authorized", StatusCode: http.StatusUnauthorized})
		return
	}

	story, err := h.stories.Delete(username, chi.URLParam(r, "storyId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.StoryResponse{Message: "Deleted story", Story: api.FromStory(story)})
}
