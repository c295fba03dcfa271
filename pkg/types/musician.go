package types

import "encoding/json"

// Musician is the musician role of an account. Albums and tracks are
// associated through the store.
type Musician struct {
	musicianID int
	bio        string
	accountID  int
}

type musicianJSON struct {
	MusicianID int    `json:"musician_id"`
	Bio        string `json:"bio"`
	AccountID  int    `json:"account_id"`
}

func NewMusician(id int, bio string, accountID int) (*Musician, error) {
	if err := checkID("musician", "id", id); err != nil {
		return nil, err
	}
	if err := checkID("musician", "account id", accountID); err != nil {
		return nil, err
	}
	m := &Musician{musicianID: id, accountID: accountID}
	if err := m.SetBio(bio); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Musician) ID() int        { return m.musicianID }
func (m *Musician) Bio() string    { return m.bio }
func (m *Musician) AccountID() int { return m.accountID }

func (m *Musician) SetBio(v string) error {
	if err := checkText("musician", "bio", v); err != nil {
		return err
	}
	m.bio = v
	return nil
}

func (m *Musician) Validate() error {
	_, err := NewMusician(m.musicianID, m.bio, m.accountID)
	return err
}

func (m *Musician) MarshalJSON() ([]byte, error) {
	return json.Marshal(musicianJSON{MusicianID: m.musicianID, Bio: m.bio, AccountID: m.accountID})
}

func (m *Musician) UnmarshalJSON(data []byte) error {
	var r musicianJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewMusician(r.MusicianID, r.Bio, r.AccountID)
	if err != nil {
		return err
	}
	*m = *v
	return nil
}
