package store

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/extents/pkg/types"
)

// Seed fills an empty store with a small connected graph touching every
// extent and every link. Timestamps are taken relative to types.Now.
func (s *Store) Seed() error {
	for name, n := range s.Counts() {
		if n > 0 {
			return fmt.Errorf("seeding: %s is not empty", name)
		}
	}
	now := types.Now().UTC().Truncate(time.Second)
	day := 24 * time.Hour

	b := &builder{}
	alice := build(b, func() (*types.Account, error) {
		return types.NewAccount(1, "alice", "alice@example.com", now.AddDate(-30, 0, 0), "12 Harbour Rd", "hunter2")
	})
	bob := build(b, func() (*types.Account, error) {
		return types.NewAccount(2, "bob", "bob@example.com", now.AddDate(-25, 0, 0), "3 Mill Ln", "correct-horse")
	})
	p1 := build(b, func() (*types.Post, error) { return types.NewPost(1, "First light over the bay", now.Add(-3*day)) })
	p2 := build(b, func() (*types.Post, error) { return types.NewPost(2, "Studio session notes", now.Add(-2*day)) })
	c1 := build(b, func() (*types.Comment, error) { return types.NewComment(1, "Gorgeous colours", now.Add(-2*day), false) })
	c2 := build(b, func() (*types.Comment, error) {
		return types.NewComment(2, "Which mic did you use?", now.Add(-day), true)
	})
	l1 := build(b, func() (*types.Like, error) { return types.NewLike(1, now.Add(-2*day)) })
	m1 := build(b, func() (*types.Media, error) { return types.NewMedia(1, "image") })
	m2 := build(b, func() (*types.Media, error) { return types.NewMedia(2, "audio") })
	grp := build(b, func() (*types.Group, error) { return types.NewGroup(1, "Field Recording", "Sounds from outside") })
	tag := build(b, func() (*types.Tag, error) { return types.NewTag(1, []string{"music", "photography"}) })
	pt := build(b, func() (*types.PostTag, error) { return types.NewPostTag(1, now.Add(-day)) })
	musician := build(b, func() (*types.Musician, error) { return types.NewMusician(1, "Ambient guitarist", bob.ID()) })
	album := build(b, func() (*types.MusicAlbum, error) {
		return types.NewMusicAlbum(1, types.AlbumLive, "Recorded at the harbour")
	})
	track := build(b, func() (*types.Music, error) { return types.NewMusic(1, "Tidewater") })
	editor := build(b, func() (*types.VideoEditor, error) { return types.NewVideoEditor(1, "Cuts short films", alice.ID()) })
	video := build(b, func() (*types.Video, error) { return types.NewVideo(1, "Harbour timelapse") })
	mod := build(b, func() (*types.Moderator, error) {
		return types.NewModerator(alice.ID(), now.Add(-7*day), []string{"delete_post", "ban_user"})
	})
	user := build(b, func() (*types.User, error) { return types.NewUser(bob.ID(), false) })
	if b.err != nil {
		return fmt.Errorf("seeding: %w", b.err)
	}

	steps := []func() error{
		func() error { return s.RegisterAccount(alice) },
		func() error { return s.RegisterAccount(bob) },
		func() error { return s.RegisterPost(p1) },
		func() error { return s.RegisterPost(p2) },
		func() error { return s.RegisterComment(c1) },
		func() error { return s.RegisterComment(c2) },
		func() error { return s.RegisterLike(l1) },
		func() error { return s.RegisterMedia(m1) },
		func() error { return s.RegisterMedia(m2) },
		func() error { return s.RegisterGroup(grp) },
		func() error { return s.RegisterTag(tag) },
		func() error { return s.RegisterPostTag(pt) },
		func() error { return s.RegisterMusician(musician) },
		func() error { return s.RegisterMusicAlbum(album) },
		func() error { return s.RegisterVideoEditor(editor) },
		func() error { return s.RegisterModerator(mod) },
		func() error { return s.RegisterUser(user) },

		func() error { return s.AddPost(alice, p1) },
		func() error { return s.AddPost(bob, p2) },
		func() error { return s.AddComment(bob, p1, c1) },
		func() error { return s.AddComment(alice, p2, c2) },
		func() error { return s.AddLike(bob, p1, l1) },
		func() error { return s.AttachMedia(p1, m1) },
		func() error { return s.AttachMedia(p2, m2) },
		func() error { return s.ShareMedia(grp, m2) },
		func() error { return s.TagPost(tag, p1) },
		func() error { return s.TagPost(tag, p2) },
		func() error { return s.AddPostTag(tag, pt) },
		func() error { return s.SetMusician(bob, musician) },
		func() error { return s.AddAlbum(musician, album) },
		func() error { return s.CreateMusic(track, musician, album) },
		func() error { return s.SetVideoEditor(alice, editor) },
		func() error { return s.CreateVideo(video, editor) },
		func() error { return s.SetModerator(alice, mod) },
		func() error { return s.ModerateGroup(mod, grp) },
		func() error { return s.SetUser(bob, user) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			s.Reset()
			return fmt.Errorf("seeding step %d: %w", i, err)
		}
	}
	return nil
}

// builder keeps the first construction error so a run of constructors can
// be checked once.
type builder struct {
	err error
}

func build[T any](b *builder, construct func() (*T, error)) *T {
	if b.err != nil {
		return nil
	}
	v, err := construct()
	if err != nil {
		b.err = err
		return nil
	}
	return v
}
