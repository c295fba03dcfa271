package types

import (
	"encoding/json"
	"time"
)

// Moderator rights bounds.
const (
	MinModeratorRights = 1
	MaxModeratorRights = 5
)

// Moderator is the moderation role of an account, keyed by the account ID.
type Moderator struct {
	accountID  int
	assignedAt time.Time
	rights     []string
}

type moderatorJSON struct {
	AccountID  int       `json:"account_id"`
	AssignedAt time.Time `json:"assigned_at"`
	Rights     []string  `json:"rights"`
}

func NewModerator(accountID int, assignedAt time.Time, rights []string) (*Moderator, error) {
	if err := checkID("moderator", "account id", accountID); err != nil {
		return nil, err
	}
	m := &Moderator{accountID: accountID}
	if err := m.SetAssignedAt(assignedAt); err != nil {
		return nil, err
	}
	if err := m.SetRights(rights); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Moderator) ID() int               { return m.accountID }
func (m *Moderator) AssignedAt() time.Time { return m.assignedAt }

// Rights returns a copy.
func (m *Moderator) Rights() []string { return copyStrings(m.rights) }

func (m *Moderator) SetAssignedAt(v time.Time) error {
	if err := checkNotFuture("moderator", "date of assignment", v); err != nil {
		return err
	}
	m.assignedAt = v
	return nil
}

func (m *Moderator) SetRights(v []string) error {
	if err := checkList("moderator", "rights", v, MinModeratorRights, MaxModeratorRights); err != nil {
		return err
	}
	m.rights = copyStrings(v)
	return nil
}

func (m *Moderator) Validate() error {
	_, err := NewModerator(m.accountID, m.assignedAt, m.rights)
	return err
}

func (m *Moderator) MarshalJSON() ([]byte, error) {
	return json.Marshal(moderatorJSON{AccountID: m.accountID, AssignedAt: m.assignedAt, Rights: m.rights})
}

func (m *Moderator) UnmarshalJSON(data []byte) error {
	var r moderatorJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewModerator(r.AccountID, r.AssignedAt, r.Rights)
	if err != nil {
		return err
	}
	*m = *v
	return nil
}
