package types

import "encoding/json"

// Media is an attachment (image, clip, audio) that can be placed on posts and
// shared into groups.
type Media struct {
	mediaID   int
	mediaType string
}

type mediaJSON struct {
	MediaID   int    `json:"media_id"`
	MediaType string `json:"media_type"`
}

func NewMedia(id int, mediaType string) (*Media, error) {
	if err := checkID("media", "id", id); err != nil {
		return nil, err
	}
	m := &Media{mediaID: id}
	if err := m.SetMediaType(mediaType); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Media) ID() int           { return m.mediaID }
func (m *Media) MediaType() string { return m.mediaType }

func (m *Media) SetMediaType(v string) error {
	if err := checkText("media", "type", v); err != nil {
		return err
	}
	m.mediaType = v
	return nil
}

func (m *Media) Validate() error {
	_, err := NewMedia(m.mediaID, m.mediaType)
	return err
}

func (m *Media) MarshalJSON() ([]byte, error) {
	return json.Marshal(mediaJSON{MediaID: m.mediaID, MediaType: m.mediaType})
}

func (m *Media) UnmarshalJSON(data []byte) error {
	var r mediaJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewMedia(r.MediaID, r.MediaType)
	if err != nil {
		return err
	}
	*m = *v
	return nil
}
