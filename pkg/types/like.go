package types

import (
	"encoding/json"
	"time"
)

// Like records an account's reaction to a post.
type Like struct {
	likeID    int
	createdAt time.Time
}

type likeJSON struct {
	LikeID    int       `json:"like_id"`
	CreatedAt time.Time `json:"created_at"`
}

func NewLike(id int, createdAt time.Time) (*Like, error) {
	if err := checkID("like", "id", id); err != nil {
		return nil, err
	}
	l := &Like{likeID: id}
	if err := l.SetCreatedAt(createdAt); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Like) ID() int              { return l.likeID }
func (l *Like) CreatedAt() time.Time { return l.createdAt }

func (l *Like) SetCreatedAt(v time.Time) error {
	if err := checkNotFuture("like", "created at", v); err != nil {
		return err
	}
	l.createdAt = v
	return nil
}

func (l *Like) Validate() error {
	_, err := NewLike(l.likeID, l.createdAt)
	return err
}

func (l *Like) MarshalJSON() ([]byte, error) {
	return json.Marshal(likeJSON{LikeID: l.likeID, CreatedAt: l.createdAt})
}

func (l *Like) UnmarshalJSON(data []byte) error {
	var r likeJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewLike(r.LikeID, r.CreatedAt)
	if err != nil {
		return err
	}
	*l = *v
	return nil
}
