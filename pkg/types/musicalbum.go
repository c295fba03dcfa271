package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Album types.
const (
	AlbumSingle  = "Single"
	AlbumMix     = "Mix"
	AlbumLive    = "Live"
	AlbumDefault = "Default"
)

// AllowedAlbumTypes lists the accepted MusicAlbum types in display order.
var AllowedAlbumTypes = []string{AlbumSingle, AlbumMix, AlbumLive, AlbumDefault}

var validAlbumTypes = map[string]bool{
	AlbumSingle:  true,
	AlbumMix:     true,
	AlbumLive:    true,
	AlbumDefault: true,
}

// MusicAlbum groups tracks released by a musician.
type MusicAlbum struct {
	albumID     int
	albumType   string
	description string
}

type musicAlbumJSON struct {
	AlbumID     int    `json:"album_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func NewMusicAlbum(id int, albumType, description string) (*MusicAlbum, error) {
	if err := checkID("music album", "id", id); err != nil {
		return nil, err
	}
	a := &MusicAlbum{albumID: id}
	if err := a.SetType(albumType); err != nil {
		return nil, err
	}
	if err := a.SetDescription(description); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *MusicAlbum) ID() int             { return a.albumID }
func (a *MusicAlbum) Type() string        { return a.albumType }
func (a *MusicAlbum) Description() string { return a.description }

// SetType accepts one of AllowedAlbumTypes.
func (a *MusicAlbum) SetType(v string) error {
	if !validAlbumTypes[v] {
		return fmt.Errorf("%w: music album type must be one of %s", ErrInvalidField, strings.Join(AllowedAlbumTypes, ", "))
	}
	a.albumType = v
	return nil
}

func (a *MusicAlbum) SetDescription(v string) error {
	if err := checkText("music album", "description", v); err != nil {
		return err
	}
	a.description = v
	return nil
}

func (a *MusicAlbum) Validate() error {
	_, err := NewMusicAlbum(a.albumID, a.albumType, a.description)
	return err
}

func (a *MusicAlbum) MarshalJSON() ([]byte, error) {
	return json.Marshal(musicAlbumJSON{AlbumID: a.albumID, Type: a.albumType, Description: a.description})
}

func (a *MusicAlbum) UnmarshalJSON(data []byte) error {
	var r musicAlbumJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewMusicAlbum(r.AlbumID, r.Type, r.Description)
	if err != nil {
		return err
	}
	*a = *v
	return nil
}
