package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryRecordToDomain(t *testing.T) {
	body := `{"stories":[{"storyId":"1","title":"A","author":"X","url":"http://example.com/a","username":"bob","createdAt":"t1"}]}`

	var resp StoriesResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Len(t, resp.Stories, 1)
	s, err := resp.Stories[0].ToDomain()
	require.NoError(t, err)

	assert.Equal(t, "1", s.StoryId)
	assert.Equal(t, "bob", s.Username)
	assert.True(t, s.CreatedAt.IsZero(), "unparsable timestamp normalizes to zero")

	host, err := s.Hostname()
	require.NoError(t, err)
	assert.Equal(t, "example.com", host)
}

func TestStoryRecordMissingFields(t *testing.T) {
	_, err := StoryRecord{StoryId: "1", Title: "A"}.ToDomain()
	require.Error(t, err)
	assert.ErrorIs(t, err, internal_errors.ErrValidation)
	assert.Contains(t, err.Error(), `story record "1"`)
}

func TestTimestamps(t *testing.T) {
	ts, err := ParseTime("2021-09-13T19:06:21.351Z")
	require.NoError(t, err)
	assert.Equal(t, 351*time.Millisecond, time.Duration(ts.Nanosecond()))

	ts2, err := ParseTime("2021-09-13T19:06:21Z")
	require.NoError(t, err)
	assert.Equal(t, 2021, ts2.Year())

	_, err = ParseTime("yesterday")
	assert.ErrorIs(t, err, internal_errors.ErrValidation)

	assert.Equal(t, "2021-09-13T19:06:21.351Z", FormatTime(ts))
	assert.Equal(t, "", FormatTime(time.Time{}))
}

func TestFromStory(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := domain.Story{StoryId: "9", Title: "T", Author: "Au", Url: "http://x.com", Username: "alice", CreatedAt: created}

	back, err := FromStory(s).ToDomain()
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestUserRecordProfile(t *testing.T) {
	p, err := UserRecord{Username: "bob", Name: "Bob", CreatedAt: "2021-09-13T19:06:21.351Z"}.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Bob", p.Name)

	_, err = UserRecord{Name: "nobody"}.Profile()
	assert.ErrorIs(t, err, internal_errors.ErrValidation)
}
