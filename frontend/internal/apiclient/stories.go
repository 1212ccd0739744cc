package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/itchan-dev/hackorsnooze/shared/api"
	"github.com/itchan-dev/hackorsnooze/shared/domain"
)

// Stories fetches every story in the order the server returns them.
func (c *APIClient) Stories(ctx context.Context) ([]api.StoryRecord, error) {
	var resp api.StoriesResponse
	if err := c.do(ctx, "get_stories", http.MethodGet, "/stories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stories, nil
}

func (c *APIClient) CreateStory(ctx context.Context, token domain.Token, story domain.NewStory) (api.StoryRecord, error) {
	req := api.CreateStoryRequest{
		Token: token,
		Story: api.NewStoryFields{Author: story.Author, Title: story.Title, Url: story.Url},
	}
	var resp api.StoryResponse
	if err := c.do(ctx, "create_story", http.MethodPost, "/stories", req, &resp); err != nil {
		return api.StoryRecord{}, err
	}
	return resp.Story, nil
}

func (c *APIClient) DeleteStory(ctx context.Context, token domain.Token, storyId domain.StoryId) error {
	path := "/stories/" + url.PathEscape(storyId)
	return c.do(ctx, "delete_story", http.MethodDelete, path, api.TokenRequest{Token: token}, nil)
}
