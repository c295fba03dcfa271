package types

import "encoding/json"

// Music is a single track. Its musician and album are mandatory and are
// attached by the store when the track is created.
type Music struct {
	musicID     int
	description string
}

type musicJSON struct {
	MusicID     int    `json:"music_id"`
	Description string `json:"description"`
}

func NewMusic(id int, description string) (*Music, error) {
	if err := checkID("music", "id", id); err != nil {
		return nil, err
	}
	m := &Music{musicID: id}
	if err := m.SetDescription(description); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Music) ID() int             { return m.musicID }
func (m *Music) Description() string { return m.description }

func (m *Music) SetDescription(v string) error {
	if err := checkText("music", "description", v); err != nil {
		return err
	}
	m.description = v
	return nil
}

func (m *Music) Validate() error {
	_, err := NewMusic(m.musicID, m.description)
	return err
}

func (m *Music) MarshalJSON() ([]byte, error) {
	return json.Marshal(musicJSON{MusicID: m.musicID, Description: m.description})
}

func (m *Music) UnmarshalJSON(data []byte) error {
	var r musicJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewMusic(r.MusicID, r.Description)
	if err != nil {
		return err
	}
	*m = *v
	return nil
}
