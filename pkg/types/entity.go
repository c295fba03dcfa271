package types

import (
	"fmt"
	"time"
)

// Entity is implemented by every record kept in an extent.
type Entity interface {
	// ID returns the caller-assigned, type-scoped identifier.
	ID() int

	// Validate re-checks every field constraint.
	Validate() error
}

// Now is the clock used by "not in the future" checks. Tests may replace it.
var Now = time.Now

// Default resource names, one per extent.
const (
	AccountsExtent     = "Accounts"
	PostsExtent        = "Posts"
	CommentsExtent     = "Comments"
	LikesExtent        = "Likes"
	MediaExtent        = "Media"
	GroupsExtent       = "Groups"
	TagsExtent         = "Tags"
	PostTagsExtent     = "PostTags"
	MusiciansExtent    = "Musicians"
	MusicAlbumsExtent  = "MusicAlbums"
	MusicExtent        = "Music"
	VideoEditorsExtent = "VideoEditors"
	VideosExtent       = "Videos"
	ModeratorsExtent   = "Moderators"
	UsersExtent        = "Users"

	// LinksExtent holds association rows, not entities.
	LinksExtent = "Links"
)

// StandardExtentNames lists the entity extents in load order.
var StandardExtentNames = []string{
	AccountsExtent,
	PostsExtent,
	CommentsExtent,
	LikesExtent,
	MediaExtent,
	GroupsExtent,
	TagsExtent,
	PostTagsExtent,
	MusiciansExtent,
	MusicAlbumsExtent,
	MusicExtent,
	VideoEditorsExtent,
	VideosExtent,
	ModeratorsExtent,
	UsersExtent,
}

func checkID(entity, field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s %s %d: %w", entity, field, v, ErrInvalidID)
	}
	return nil
}

func checkText(entity, field, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s %s must not be empty", ErrInvalidField, entity, field)
	}
	return nil
}

func checkNotFuture(entity, field string, v time.Time) error {
	if v.After(Now()) {
		return fmt.Errorf("%w: %s %s cannot be in the future", ErrInvalidField, entity, field)
	}
	return nil
}

// checkList validates a multi-valued attribute with between lo and hi
// non-empty entries.
func checkList(entity, field string, v []string, lo, hi int) error {
	if len(v) < lo || len(v) > hi {
		return fmt.Errorf("%w: %s %s must contain between %d and %d values", ErrInvalidField, entity, field, lo, hi)
	}
	for _, s := range v {
		if s == "" {
			return fmt.Errorf("%w: %s %s must not contain empty values", ErrInvalidField, entity, field)
		}
	}
	return nil
}

func copyStrings(v []string) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
