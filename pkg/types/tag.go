package types

import "encoding/json"

// Tag category bounds.
const (
	MinTagCategories = 1
	MaxTagCategories = 10
)

// Tag labels posts with one or more categories.
type Tag struct {
	tagID      int
	categories []string
}

type tagJSON struct {
	TagID      int      `json:"tag_id"`
	Categories []string `json:"categories"`
}

// NewTag copies categories; later changes to the caller's slice are not seen.
func NewTag(id int, categories []string) (*Tag, error) {
	if err := checkID("tag", "id", id); err != nil {
		return nil, err
	}
	t := &Tag{tagID: id}
	if err := t.SetCategories(categories); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tag) ID() int { return t.tagID }

// Categories returns a copy.
func (t *Tag) Categories() []string { return copyStrings(t.categories) }

func (t *Tag) SetCategories(v []string) error {
	if err := checkList("tag", "categories", v, MinTagCategories, MaxTagCategories); err != nil {
		return err
	}
	t.categories = copyStrings(v)
	return nil
}

func (t *Tag) Validate() error {
	_, err := NewTag(t.tagID, t.categories)
	return err
}

func (t *Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagJSON{TagID: t.tagID, Categories: t.categories})
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	var r tagJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewTag(r.TagID, r.Categories)
	if err != nil {
		return err
	}
	*t = *v
	return nil
}
