package store

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/extents/internal/extent"
	"github.com/mesh-intelligence/extents/pkg/types"
)

// remove detaches e from every link and then unregisters it. Each detach
// returns how many partners it dropped. Removing an entity that is not
// registered still detaches it and reports false.
func remove[T extent.Member](s *Store, reg *extent.Registry[T], e T, detach ...func() int) bool {
	var zero T
	if e == zero {
		return false
	}
	dropped := 0
	for _, d := range detach {
		dropped += d()
	}
	removed := reg.Unregister(e)
	s.logger.Debug("removed",
		zap.String("extent", reg.Name()),
		zap.Int("id", e.ID()),
		zap.Bool("registered", removed),
		zap.Int("detached", dropped))
	return removed
}

// RemoveAccount detaches the account's posts, comments, likes and roles,
// then unregisters it. The posts and roles themselves stay registered.
func (s *Store) RemoveAccount(a *types.Account) bool {
	return remove(s, s.Accounts, a,
		func() int { return len(s.AccountPosts.DetachA(a)) },
		func() int { return len(s.AccountComments.DetachA(a)) },
		func() int { return len(s.AccountLikes.DetachA(a)) },
		func() int { return len(s.AccountMusician.DetachA(a)) },
		func() int { return len(s.AccountVideoEditor.DetachA(a)) },
		func() int { return len(s.AccountModerator.DetachA(a)) },
		func() int { return len(s.AccountUser.DetachA(a)) },
	)
}

func (s *Store) RemovePost(p *types.Post) bool {
	return remove(s, s.Posts, p,
		func() int { return len(s.AccountPosts.DetachB(p)) },
		func() int { return len(s.PostComments.DetachA(p)) },
		func() int { return len(s.PostLikes.DetachA(p)) },
		func() int { return len(s.PostMedia.DetachA(p)) },
		func() int { return len(s.TagPosts.DetachB(p)) },
	)
}

func (s *Store) RemoveComment(c *types.Comment) bool {
	return remove(s, s.Comments, c,
		func() int { return len(s.AccountComments.DetachB(c)) },
		func() int { return len(s.PostComments.DetachB(c)) },
	)
}

func (s *Store) RemoveLike(l *types.Like) bool {
	return remove(s, s.Likes, l,
		func() int { return len(s.AccountLikes.DetachB(l)) },
		func() int { return len(s.PostLikes.DetachB(l)) },
	)
}

func (s *Store) RemoveMedia(m *types.Media) bool {
	return remove(s, s.Media, m,
		func() int { return len(s.PostMedia.DetachB(m)) },
		func() int { return len(s.GroupMedia.DetachB(m)) },
	)
}

func (s *Store) RemoveGroup(g *types.Group) bool {
	return remove(s, s.Groups, g,
		func() int { return len(s.GroupMedia.DetachA(g)) },
		func() int { return len(s.ModeratorGroups.DetachB(g)) },
	)
}

func (s *Store) RemoveTag(t *types.Tag) bool {
	return remove(s, s.Tags, t,
		func() int { return len(s.TagPosts.DetachA(t)) },
		func() int { return len(s.TagPostTags.DetachA(t)) },
	)
}

func (s *Store) RemovePostTag(pt *types.PostTag) bool {
	return remove(s, s.PostTags, pt,
		func() int { return len(s.TagPostTags.DetachB(pt)) },
	)
}

func (s *Store) RemoveMusician(m *types.Musician) bool {
	return remove(s, s.Musicians, m,
		func() int { return len(s.AccountMusician.DetachB(m)) },
		func() int { return len(s.MusicianAlbums.DetachA(m)) },
		func() int { return len(s.MusicianMusic.DetachA(m)) },
	)
}

func (s *Store) RemoveMusicAlbum(a *types.MusicAlbum) bool {
	return remove(s, s.MusicAlbums, a,
		func() int { return len(s.MusicianAlbums.DetachB(a)) },
		func() int { return len(s.AlbumMusic.DetachA(a)) },
	)
}

func (s *Store) RemoveMusic(m *types.Music) bool {
	return remove(s, s.Music, m,
		func() int { return len(s.MusicianMusic.DetachB(m)) },
		func() int { return len(s.AlbumMusic.DetachB(m)) },
	)
}

func (s *Store) RemoveVideoEditor(e *types.VideoEditor) bool {
	return remove(s, s.VideoEditors, e,
		func() int { return len(s.AccountVideoEditor.DetachB(e)) },
		func() int { return len(s.EditorVideos.DetachA(e)) },
	)
}

func (s *Store) RemoveVideo(v *types.Video) bool {
	return remove(s, s.Videos, v,
		func() int { return len(s.EditorVideos.DetachB(v)) },
	)
}

func (s *Store) RemoveModerator(m *types.Moderator) bool {
	return remove(s, s.Moderators, m,
		func() int { return len(s.AccountModerator.DetachB(m)) },
		func() int { return len(s.ModeratorGroups.DetachA(m)) },
	)
}

func (s *Store) RemoveUser(u *types.User) bool {
	return remove(s, s.Users, u,
		func() int { return len(s.AccountUser.DetachB(u)) },
	)
}
