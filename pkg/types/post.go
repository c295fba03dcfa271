package types

import (
	"encoding/json"
	"time"
)

// Post is a piece of content published by an account.
type Post struct {
	postID    int
	caption   string
	createdAt time.Time
}

type postJSON struct {
	PostID    int       `json:"post_id"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPost returns a validated Post.
func NewPost(id int, caption string, createdAt time.Time) (*Post, error) {
	if err := checkID("post", "id", id); err != nil {
		return nil, err
	}
	p := &Post{postID: id}
	if err := p.SetCaption(caption); err != nil {
		return nil, err
	}
	if err := p.SetCreatedAt(createdAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Post) ID() int              { return p.postID }
func (p *Post) Caption() string      { return p.caption }
func (p *Post) CreatedAt() time.Time { return p.createdAt }

func (p *Post) SetCaption(v string) error {
	if err := checkText("post", "caption", v); err != nil {
		return err
	}
	p.caption = v
	return nil
}

func (p *Post) SetCreatedAt(v time.Time) error {
	if err := checkNotFuture("post", "created at", v); err != nil {
		return err
	}
	p.createdAt = v
	return nil
}

func (p *Post) Validate() error {
	_, err := NewPost(p.postID, p.caption, p.createdAt)
	return err
}

func (p *Post) MarshalJSON() ([]byte, error) {
	return json.Marshal(postJSON{PostID: p.postID, Caption: p.caption, CreatedAt: p.createdAt})
}

func (p *Post) UnmarshalJSON(data []byte) error {
	var r postJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewPost(r.PostID, r.Caption, r.CreatedAt)
	if err != nil {
		return err
	}
	*p = *v
	return nil
}
