package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/extents/internal/extent"
	"github.com/mesh-intelligence/extents/pkg/types"
)

func register[T extent.Member](s *Store, reg *extent.Registry[T], e T) error {
	if err := reg.Register(e); err != nil {
		return err
	}
	s.logger.Debug("registered", zap.String("extent", reg.Name()), zap.Int("id", e.ID()))
	return nil
}

func (s *Store) RegisterAccount(e *types.Account) error   { return register(s, s.Accounts, e) }
func (s *Store) RegisterPost(e *types.Post) error         { return register(s, s.Posts, e) }
func (s *Store) RegisterComment(e *types.Comment) error   { return register(s, s.Comments, e) }
func (s *Store) RegisterLike(e *types.Like) error         { return register(s, s.Likes, e) }
func (s *Store) RegisterMedia(e *types.Media) error       { return register(s, s.Media, e) }
func (s *Store) RegisterGroup(e *types.Group) error       { return register(s, s.Groups, e) }
func (s *Store) RegisterTag(e *types.Tag) error           { return register(s, s.Tags, e) }
func (s *Store) RegisterPostTag(e *types.PostTag) error   { return register(s, s.PostTags, e) }
func (s *Store) RegisterMusician(e *types.Musician) error { return register(s, s.Musicians, e) }
func (s *Store) RegisterMusicAlbum(e *types.MusicAlbum) error {
	return register(s, s.MusicAlbums, e)
}
func (s *Store) RegisterMusic(e *types.Music) error { return register(s, s.Music, e) }
func (s *Store) RegisterVideoEditor(e *types.VideoEditor) error {
	return register(s, s.VideoEditors, e)
}
func (s *Store) RegisterVideo(e *types.Video) error         { return register(s, s.Videos, e) }
func (s *Store) RegisterModerator(e *types.Moderator) error { return register(s, s.Moderators, e) }
func (s *Store) RegisterUser(e *types.User) error           { return register(s, s.Users, e) }

// requireRegistered returns ErrNilEntity for a nil parent and
// ErrNotRegistered when the parent is not in its registry.
func requireRegistered[T extent.Member](reg *extent.Registry[T], e T) error {
	var zero T
	if e == zero {
		return fmt.Errorf("%s parent: %w", reg.Name(), types.ErrNilEntity)
	}
	if !reg.Contains(e) {
		return fmt.Errorf("%s %d: %w", reg.Name(), e.ID(), types.ErrNotRegistered)
	}
	return nil
}

// CreateVideo registers v and attaches it to its editor. A video cannot
// exist without an editor, so a nil or unregistered editor leaves v
// unregistered.
func (s *Store) CreateVideo(v *types.Video, editor *types.VideoEditor) error {
	if err := requireRegistered(s.VideoEditors, editor); err != nil {
		return fmt.Errorf("creating video: %w", err)
	}
	if err := s.RegisterVideo(v); err != nil {
		return err
	}
	if _, err := s.EditorVideos.Connect(editor, v); err != nil {
		s.Videos.Unregister(v)
		return err
	}
	return nil
}

// CreateMusic registers m and attaches it to its musician and album.
func (s *Store) CreateMusic(m *types.Music, musician *types.Musician, album *types.MusicAlbum) error {
	if err := requireRegistered(s.Musicians, musician); err != nil {
		return fmt.Errorf("creating music: %w", err)
	}
	if err := requireRegistered(s.MusicAlbums, album); err != nil {
		return fmt.Errorf("creating music: %w", err)
	}
	if err := s.RegisterMusic(m); err != nil {
		return err
	}
	if _, err := s.MusicianMusic.Connect(musician, m); err != nil {
		s.Music.Unregister(m)
		return err
	}
	if _, err := s.AlbumMusic.Connect(album, m); err != nil {
		s.MusicianMusic.Disconnect(musician, m)
		s.Music.Unregister(m)
		return err
	}
	return nil
}

// AddPost makes account the author of p. A post that had another author
// moves to this one.
func (s *Store) AddPost(account *types.Account, p *types.Post) error {
	_, err := s.AccountPosts.Connect(account, p)
	return err
}

// ReassignPost moves p to account. A nil account leaves p without an author.
func (s *Store) ReassignPost(p *types.Post, account *types.Account) error {
	if p == nil {
		return fmt.Errorf("reassigning post: %w", types.ErrNilEntity)
	}
	if account == nil {
		s.AccountPosts.DetachB(p)
		return nil
	}
	return s.AddPost(account, p)
}

// AddComment attaches c to both its author and the post it belongs to.
// Both halves are admitted before either changes, so a refused call leaves
// c where it was.
func (s *Store) AddComment(account *types.Account, p *types.Post, c *types.Comment) error {
	if account == nil {
		return fmt.Errorf("adding comment: %w", types.ErrNilEntity)
	}
	if err := s.PostComments.CanConnect(p, c); err != nil {
		return err
	}
	if err := s.AccountComments.CanConnect(account, c); err != nil {
		return err
	}
	if _, err := s.PostComments.Connect(p, c); err != nil {
		return err
	}
	_, err := s.AccountComments.Connect(account, c)
	return err
}

// AddLike attaches l to both the liking account and the post.
func (s *Store) AddLike(account *types.Account, p *types.Post, l *types.Like) error {
	if account == nil {
		return fmt.Errorf("adding like: %w", types.ErrNilEntity)
	}
	if err := s.PostLikes.CanConnect(p, l); err != nil {
		return err
	}
	if err := s.AccountLikes.CanConnect(account, l); err != nil {
		return err
	}
	if _, err := s.PostLikes.Connect(p, l); err != nil {
		return err
	}
	_, err := s.AccountLikes.Connect(account, l)
	return err
}

// AttachMedia adds m to p. A post holds at most MaxMediaPerPost media.
func (s *Store) AttachMedia(p *types.Post, m *types.Media) error {
	_, err := s.PostMedia.Connect(p, m)
	return err
}

// ReplaceMedia swaps old for next on p. On error p is unchanged.
func (s *Store) ReplaceMedia(p *types.Post, old, next *types.Media) error {
	return s.PostMedia.Reassign(p, old, next)
}

func (s *Store) TagPost(t *types.Tag, p *types.Post) error {
	_, err := s.TagPosts.Connect(t, p)
	return err
}

func (s *Store) AddPostTag(t *types.Tag, pt *types.PostTag) error {
	_, err := s.TagPostTags.Connect(t, pt)
	return err
}

func (s *Store) ShareMedia(g *types.Group, m *types.Media) error {
	_, err := s.GroupMedia.Connect(g, m)
	return err
}

func (s *Store) ModerateGroup(m *types.Moderator, g *types.Group) error {
	_, err := s.ModeratorGroups.Connect(m, g)
	return err
}

func (s *Store) AddAlbum(m *types.Musician, a *types.MusicAlbum) error {
	_, err := s.MusicianAlbums.Connect(m, a)
	return err
}

// SetMusician gives account its musician profile, replacing any previous
// one on either side.
func (s *Store) SetMusician(account *types.Account, m *types.Musician) error {
	_, err := s.AccountMusician.Connect(account, m)
	return err
}

func (s *Store) SetVideoEditor(account *types.Account, e *types.VideoEditor) error {
	_, err := s.AccountVideoEditor.Connect(account, e)
	return err
}

func (s *Store) SetModerator(account *types.Account, m *types.Moderator) error {
	_, err := s.AccountModerator.Connect(account, m)
	return err
}

func (s *Store) SetUser(account *types.Account, u *types.User) error {
	_, err := s.AccountUser.Connect(account, u)
	return err
}
