// Package store holds the live object graph: one registry per entity type
// and one link per relationship between types.
//
// Registries and links are exported so callers can read and connect
// directly. Removal should go through the Remove methods, which detach every
// association the entity takes part in before unregistering it. A Store is
// not safe for concurrent use.
package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/extents/internal/association"
	"github.com/mesh-intelligence/extents/internal/extent"
	"github.com/mesh-intelligence/extents/pkg/types"
)

// Store is the in-memory domain model.
type Store struct {
	logger *zap.Logger

	Accounts     *extent.Registry[*types.Account]
	Posts        *extent.Registry[*types.Post]
	Comments     *extent.Registry[*types.Comment]
	Likes        *extent.Registry[*types.Like]
	Media        *extent.Registry[*types.Media]
	Groups       *extent.Registry[*types.Group]
	Tags         *extent.Registry[*types.Tag]
	PostTags     *extent.Registry[*types.PostTag]
	Musicians    *extent.Registry[*types.Musician]
	MusicAlbums  *extent.Registry[*types.MusicAlbum]
	Music        *extent.Registry[*types.Music]
	VideoEditors *extent.Registry[*types.VideoEditor]
	Videos       *extent.Registry[*types.Video]
	Moderators   *extent.Registry[*types.Moderator]
	Users        *extent.Registry[*types.User]

	AccountPosts    *association.Link[*types.Account, *types.Post]
	AccountComments *association.Link[*types.Account, *types.Comment]
	AccountLikes    *association.Link[*types.Account, *types.Like]
	PostComments    *association.Link[*types.Post, *types.Comment]
	PostLikes       *association.Link[*types.Post, *types.Like]
	PostMedia       *association.Link[*types.Post, *types.Media]
	GroupMedia      *association.Link[*types.Group, *types.Media]
	TagPosts        *association.Link[*types.Tag, *types.Post]
	TagPostTags     *association.Link[*types.Tag, *types.PostTag]
	MusicianAlbums  *association.Link[*types.Musician, *types.MusicAlbum]
	MusicianMusic   *association.Link[*types.Musician, *types.Music]
	AlbumMusic      *association.Link[*types.MusicAlbum, *types.Music]
	EditorVideos    *association.Link[*types.VideoEditor, *types.Video]
	ModeratorGroups *association.Link[*types.Moderator, *types.Group]

	AccountMusician    *association.Link[*types.Account, *types.Musician]
	AccountVideoEditor *association.Link[*types.Account, *types.VideoEditor]
	AccountModerator   *association.Link[*types.Account, *types.Moderator]
	AccountUser        *association.Link[*types.Account, *types.User]

	extents  []extentOps
	bindings []binding
}

// New returns an empty store. A nil logger discards output.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	unique := extent.Policy{UniqueIDs: true}
	s := &Store{
		logger: logger.Named("store"),

		Accounts:     extent.New[*types.Account](types.AccountsExtent, unique),
		Posts:        extent.New[*types.Post](types.PostsExtent, unique),
		Comments:     extent.New[*types.Comment](types.CommentsExtent, unique),
		Likes:        extent.New[*types.Like](types.LikesExtent, unique),
		Media:        extent.New[*types.Media](types.MediaExtent, unique),
		Groups:       extent.New[*types.Group](types.GroupsExtent, unique),
		Tags:         extent.New[*types.Tag](types.TagsExtent, unique),
		PostTags:     extent.New[*types.PostTag](types.PostTagsExtent, unique),
		Musicians:    extent.New[*types.Musician](types.MusiciansExtent, unique),
		MusicAlbums:  extent.New[*types.MusicAlbum](types.MusicAlbumsExtent, unique),
		Music:        extent.New[*types.Music](types.MusicExtent, unique),
		VideoEditors: extent.New[*types.VideoEditor](types.VideoEditorsExtent, unique),
		Videos:       extent.New[*types.Video](types.VideosExtent, unique),
		Moderators:   extent.New[*types.Moderator](types.ModeratorsExtent, unique),
		Users:        extent.New[*types.User](types.UsersExtent, unique),

		AccountPosts:    oneToMany[*types.Account, *types.Post](types.LinkAccountPosts, 0),
		AccountComments: oneToMany[*types.Account, *types.Comment](types.LinkAccountComments, 0),
		AccountLikes:    oneToMany[*types.Account, *types.Like](types.LinkAccountLikes, 0),
		PostComments:    oneToMany[*types.Post, *types.Comment](types.LinkPostComments, 0),
		PostLikes:       oneToMany[*types.Post, *types.Like](types.LinkPostLikes, 0),
		PostMedia:       oneToMany[*types.Post, *types.Media](types.LinkPostMedia, types.MaxMediaPerPost),
		GroupMedia:      manyToMany[*types.Group, *types.Media](types.LinkGroupMedia),
		TagPosts:        manyToMany[*types.Tag, *types.Post](types.LinkTagPosts),
		TagPostTags:     manyToMany[*types.Tag, *types.PostTag](types.LinkTagPostTags),
		MusicianAlbums:  oneToMany[*types.Musician, *types.MusicAlbum](types.LinkMusicianAlbums, 0),
		MusicianMusic:   oneToMany[*types.Musician, *types.Music](types.LinkMusicianMusic, 0),
		AlbumMusic:      oneToMany[*types.MusicAlbum, *types.Music](types.LinkAlbumMusic, 0),
		EditorVideos:    oneToMany[*types.VideoEditor, *types.Video](types.LinkEditorVideos, 0),
		ModeratorGroups: manyToMany[*types.Moderator, *types.Group](types.LinkModeratorGroups),

		AccountMusician:    oneToOne[*types.Account, *types.Musician](types.LinkAccountMusician),
		AccountVideoEditor: oneToOne[*types.Account, *types.VideoEditor](types.LinkAccountVideoEditor),
		AccountModerator:   oneToOne[*types.Account, *types.Moderator](types.LinkAccountModerator),
		AccountUser:        oneToOne[*types.Account, *types.User](types.LinkAccountUser),
	}

	s.extents = []extentOps{
		extentOf(s.Accounts), extentOf(s.Posts), extentOf(s.Comments), extentOf(s.Likes),
		extentOf(s.Media), extentOf(s.Groups), extentOf(s.Tags), extentOf(s.PostTags),
		extentOf(s.Musicians), extentOf(s.MusicAlbums), extentOf(s.Music),
		extentOf(s.VideoEditors), extentOf(s.Videos), extentOf(s.Moderators), extentOf(s.Users),
	}
	s.bindings = []binding{
		bind(s.AccountPosts, s.Accounts, s.Posts),
		bind(s.AccountComments, s.Accounts, s.Comments),
		bind(s.AccountLikes, s.Accounts, s.Likes),
		bind(s.PostComments, s.Posts, s.Comments),
		bind(s.PostLikes, s.Posts, s.Likes),
		bind(s.PostMedia, s.Posts, s.Media),
		bind(s.GroupMedia, s.Groups, s.Media),
		bind(s.TagPosts, s.Tags, s.Posts),
		bind(s.TagPostTags, s.Tags, s.PostTags),
		bind(s.MusicianAlbums, s.Musicians, s.MusicAlbums),
		bind(s.MusicianMusic, s.Musicians, s.Music),
		bind(s.AlbumMusic, s.MusicAlbums, s.Music),
		bind(s.EditorVideos, s.VideoEditors, s.Videos),
		bind(s.ModeratorGroups, s.Moderators, s.Groups),
		bind(s.AccountMusician, s.Accounts, s.Musicians),
		bind(s.AccountVideoEditor, s.Accounts, s.VideoEditors),
		bind(s.AccountModerator, s.Accounts, s.Moderators),
		bind(s.AccountUser, s.Accounts, s.Users),
	}
	return s
}

func oneToOne[A, B extent.Member](name string) *association.Link[A, B] {
	return association.New[A, B](association.Spec{Name: name, Kind: association.OneToOne})
}

func oneToMany[A, B extent.Member](name string, maxPerA int) *association.Link[A, B] {
	return association.New[A, B](association.Spec{Name: name, Kind: association.OneToMany, MaxPerA: maxPerA})
}

func manyToMany[A, B extent.Member](name string) *association.Link[A, B] {
	return association.New[A, B](association.Spec{Name: name, Kind: association.ManyToMany})
}

// ExtentNames returns the resource name of every registry in a fixed order.
func (s *Store) ExtentNames() []string {
	names := make([]string, len(s.extents))
	for i, e := range s.extents {
		names[i] = e.name()
	}
	return names
}

// LinkNames returns the name of every link in a fixed order.
func (s *Store) LinkNames() []string {
	names := make([]string, len(s.bindings))
	for i, b := range s.bindings {
		names[i] = b.name()
	}
	return names
}

// Counts returns registry sizes keyed by resource name.
func (s *Store) Counts() map[string]int {
	out := make(map[string]int, len(s.extents))
	for _, e := range s.extents {
		out[e.name()] = e.size()
	}
	return out
}

// LinkCounts returns the number of connected pairs keyed by link name.
func (s *Store) LinkCounts() map[string]int {
	out := make(map[string]int, len(s.bindings))
	for _, b := range s.bindings {
		out[b.name()] = b.size()
	}
	return out
}

// Records returns the members of the named extent, in order, for display.
func (s *Store) Records(name string) ([]any, error) {
	for _, e := range s.extents {
		if e.name() == name {
			return e.records(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", types.ErrUnknownExtent, name)
}

// Reset clears every link and registry.
func (s *Store) Reset() {
	for _, b := range s.bindings {
		b.clear()
	}
	for _, e := range s.extents {
		e.clear()
	}
}
