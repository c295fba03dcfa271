package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var past = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func TestConstructorsRejectInvalidFields(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)

	tests := []struct {
		name    string
		build   func() (Entity, error)
		wantErr error
	}{
		{"post empty caption", func() (Entity, error) { return NewPost(1, "", past) }, ErrInvalidField},
		{"post future date", func() (Entity, error) { return NewPost(1, "c", future) }, ErrInvalidField},
		{"comment zero id", func() (Entity, error) { return NewComment(0, "c", past, false) }, ErrInvalidID},
		{"comment empty content", func() (Entity, error) { return NewComment(1, "", past, false) }, ErrInvalidField},
		{"like future date", func() (Entity, error) { return NewLike(1, future) }, ErrInvalidField},
		{"media empty type", func() (Entity, error) { return NewMedia(1, "") }, ErrInvalidField},
		{"group empty name", func() (Entity, error) { return NewGroup(1, "", "d") }, ErrInvalidField},
		{"group empty description", func() (Entity, error) { return NewGroup(1, "n", "") }, ErrInvalidField},
		{"tag no categories", func() (Entity, error) { return NewTag(1, nil) }, ErrInvalidField},
		{"tag empty category", func() (Entity, error) { return NewTag(1, []string{"music", ""}) }, ErrInvalidField},
		{"tag eleven categories", func() (Entity, error) {
			return NewTag(1, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"})
		}, ErrInvalidField},
		{"post tag future", func() (Entity, error) { return NewPostTag(1, future) }, ErrInvalidField},
		{"musician empty bio", func() (Entity, error) { return NewMusician(1, "", 1) }, ErrInvalidField},
		{"musician zero account", func() (Entity, error) { return NewMusician(1, "bio", 0) }, ErrInvalidID},
		{"album unknown type", func() (Entity, error) { return NewMusicAlbum(1, "EP", "d") }, ErrInvalidField},
		{"album empty description", func() (Entity, error) { return NewMusicAlbum(1, AlbumLive, "") }, ErrInvalidField},
		{"music empty description", func() (Entity, error) { return NewMusic(1, "") }, ErrInvalidField},
		{"editor zero account", func() (Entity, error) { return NewVideoEditor(1, "bio", -1) }, ErrInvalidID},
		{"video empty description", func() (Entity, error) { return NewVideo(1, "") }, ErrInvalidField},
		{"moderator no rights", func() (Entity, error) { return NewModerator(1, past, []string{}) }, ErrInvalidField},
		{"moderator six rights", func() (Entity, error) {
			return NewModerator(1, past, []string{"a", "b", "c", "d", "e", "f"})
		}, ErrInvalidField},
		{"moderator future assignment", func() (Entity, error) { return NewModerator(1, future, []string{"ban"}) }, ErrInvalidField},
		{"user zero account", func() (Entity, error) { return NewUser(0, false) }, ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructorsAcceptValidFields(t *testing.T) {
	tests := []struct {
		name   string
		build  func() (Entity, error)
		wantID int
	}{
		{"post", func() (Entity, error) { return NewPost(2, "caption", past) }, 2},
		{"comment", func() (Entity, error) { return NewComment(3, "nice", past, true) }, 3},
		{"like", func() (Entity, error) { return NewLike(4, past) }, 4},
		{"media", func() (Entity, error) { return NewMedia(5, "image") }, 5},
		{"group", func() (Entity, error) { return NewGroup(6, "gophers", "go fans") }, 6},
		{"tag", func() (Entity, error) { return NewTag(7, []string{"music"}) }, 7},
		{"post tag", func() (Entity, error) { return NewPostTag(8, past) }, 8},
		{"musician", func() (Entity, error) { return NewMusician(9, "bio", 1) }, 9},
		{"album", func() (Entity, error) { return NewMusicAlbum(10, AlbumMix, "summer") }, 10},
		{"music", func() (Entity, error) { return NewMusic(11, "track") }, 11},
		{"editor", func() (Entity, error) { return NewVideoEditor(12, "bio", 1) }, 12},
		{"video", func() (Entity, error) { return NewVideo(13, "clip") }, 13},
		{"moderator", func() (Entity, error) { return NewModerator(14, past, []string{"ban", "mute"}) }, 14},
		{"user", func() (Entity, error) { return NewUser(15, true) }, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, e.ID())
			assert.NoError(t, e.Validate())
		})
	}
}

func TestModeratorRightsAreCopied(t *testing.T) {
	rights := []string{"ban", "mute"}
	m, err := NewModerator(1, past, rights)
	require.NoError(t, err)

	rights[0] = "changed"
	assert.Equal(t, []string{"ban", "mute"}, m.Rights())

	got := m.Rights()
	got[1] = "changed"
	assert.Equal(t, []string{"ban", "mute"}, m.Rights())
}

func TestTagSetCategoriesKeepsOldValueOnError(t *testing.T) {
	tag, err := NewTag(1, []string{"music"})
	require.NoError(t, err)

	assert.ErrorIs(t, tag.SetCategories([]string{""}), ErrInvalidField)
	assert.Equal(t, []string{"music"}, tag.Categories())
}

func TestUnmarshalValidatesRecords(t *testing.T) {
	tests := []struct {
		name   string
		target any
		data   string
	}{
		{"post without caption", &Post{}, `{"post_id":1,"caption":"","created_at":"2020-01-01T00:00:00Z"}`},
		{"album bad type", &MusicAlbum{}, `{"album_id":1,"type":"EP","description":"d"}`},
		{"moderator too many rights", &Moderator{}, `{"account_id":1,"assigned_at":"2020-01-01T00:00:00Z","rights":["a","b","c","d","e","f"]}`},
		{"malformed json", &Like{}, `{"like_id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, json.Unmarshal([]byte(tt.data), tt.target))
		})
	}
}

func TestPostJSONRoundTrip(t *testing.T) {
	p, err := NewPost(1, "first", past)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"post_id":1,"caption":"first","created_at":"2020-01-01T00:00:00Z"}`, string(data))

	var got Post
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *p, got)
}
