package types

import (
	"encoding/json"
	"time"
)

// Comment is a reply left by an account on a post.
type Comment struct {
	commentID int
	content   string
	createdAt time.Time
	edited    bool
}

type commentJSON struct {
	CommentID int       `json:"comment_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Edited    bool      `json:"edited"`
}

// NewComment returns a validated Comment.
func NewComment(id int, content string, createdAt time.Time, edited bool) (*Comment, error) {
	if err := checkID("comment", "id", id); err != nil {
		return nil, err
	}
	c := &Comment{commentID: id, edited: edited}
	if err := c.SetContent(content); err != nil {
		return nil, err
	}
	if err := c.SetCreatedAt(createdAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) ID() int              { return c.commentID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) Edited() bool         { return c.edited }

// SetContent replaces the text. It does not mark the comment as edited.
func (c *Comment) SetContent(v string) error {
	if err := checkText("comment", "content", v); err != nil {
		return err
	}
	c.content = v
	return nil
}

func (c *Comment) SetCreatedAt(v time.Time) error {
	if err := checkNotFuture("comment", "created at", v); err != nil {
		return err
	}
	c.createdAt = v
	return nil
}

func (c *Comment) SetEdited(v bool) { c.edited = v }

func (c *Comment) Validate() error {
	_, err := NewComment(c.commentID, c.content, c.createdAt, c.edited)
	return err
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(commentJSON{
		CommentID: c.commentID,
		Content:   c.content,
		CreatedAt: c.createdAt,
		Edited:    c.edited,
	})
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	var r commentJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewComment(r.CommentID, r.Content, r.CreatedAt, r.Edited)
	if err != nil {
		return err
	}
	*c = *v
	return nil
}
