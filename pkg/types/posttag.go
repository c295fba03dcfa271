package types

import (
	"encoding/json"
	"time"
)

// PostTag records when a set of tags was applied.
type PostTag struct {
	postTagID int
	addedAt   time.Time
}

type postTagJSON struct {
	PostTagID int       `json:"post_tag_id"`
	AddedAt   time.Time `json:"added_at"`
}

func NewPostTag(id int, addedAt time.Time) (*PostTag, error) {
	if err := checkID("post tag", "id", id); err != nil {
		return nil, err
	}
	pt := &PostTag{postTagID: id}
	if err := pt.SetAddedAt(addedAt); err != nil {
		return nil, err
	}
	return pt, nil
}

func (pt *PostTag) ID() int            { return pt.postTagID }
func (pt *PostTag) AddedAt() time.Time { return pt.addedAt }

func (pt *PostTag) SetAddedAt(v time.Time) error {
	if err := checkNotFuture("post tag", "added at", v); err != nil {
		return err
	}
	pt.addedAt = v
	return nil
}

func (pt *PostTag) Validate() error {
	_, err := NewPostTag(pt.postTagID, pt.addedAt)
	return err
}

func (pt *PostTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(postTagJSON{PostTagID: pt.postTagID, AddedAt: pt.addedAt})
}

func (pt *PostTag) UnmarshalJSON(data []byte) error {
	var r postTagJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewPostTag(r.PostTagID, r.AddedAt)
	if err != nil {
		return err
	}
	*pt = *v
	return nil
}
