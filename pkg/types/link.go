package types

// Association names. Each names one configured link in the store and is the
// key used for link rows in the Links extent.
const (
	LinkAccountPosts       = "account_posts"        // account → posts
	LinkAccountComments    = "account_comments"     // account → comments
	LinkAccountLikes       = "account_likes"        // account → likes
	LinkPostComments       = "post_comments"        // post → comments
	LinkPostLikes          = "post_likes"           // post → likes
	LinkPostMedia          = "post_media"           // post → media, at most MaxMediaPerPost
	LinkGroupMedia         = "group_media"          // groups ↔ media
	LinkTagPosts           = "tag_posts"            // tags ↔ posts
	LinkTagPostTags        = "tag_post_tags"        // tags ↔ post tags
	LinkMusicianAlbums     = "musician_albums"      // musician → albums
	LinkMusicianMusic      = "musician_music"       // musician → music
	LinkAlbumMusic         = "album_music"          // album → music
	LinkEditorVideos       = "editor_videos"        // video editor → videos
	LinkModeratorGroups    = "moderator_groups"     // moderators ↔ groups
	LinkAccountMusician    = "account_musician"     // account ↔ musician role
	LinkAccountVideoEditor = "account_video_editor" // account ↔ video editor role
	LinkAccountModerator   = "account_moderator"    // account ↔ moderator role
	LinkAccountUser        = "account_user"         // account ↔ user role
)

// MaxMediaPerPost bounds the post → media association.
const MaxMediaPerPost = 10

// LinkRow is the persisted form of one connected pair. Rows carry identifiers
// only; endpoints are resolved against the loaded extents.
type LinkRow struct {
	Link   string `json:"link"`
	FromID int    `json:"from_id"`
	ToID   int    `json:"to_id"`
}
