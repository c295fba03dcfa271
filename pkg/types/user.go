package types

import "encoding/json"

// User is the plain member role of an account, keyed by the account ID.
type User struct {
	accountID int
	isAdmin   bool
}

type userJSON struct {
	AccountID int  `json:"account_id"`
	IsAdmin   bool `json:"is_admin"`
}

func NewUser(accountID int, isAdmin bool) (*User, error) {
	if err := checkID("user", "account id", accountID); err != nil {
		return nil, err
	}
	return &User{accountID: accountID, isAdmin: isAdmin}, nil
}

func (u *User) ID() int         { return u.accountID }
func (u *User) IsAdmin() bool   { return u.isAdmin }
func (u *User) SetAdmin(v bool) { u.isAdmin = v }

func (u *User) Validate() error {
	return checkID("user", "account id", u.accountID)
}

func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userJSON{AccountID: u.accountID, IsAdmin: u.isAdmin})
}

func (u *User) UnmarshalJSON(data []byte) error {
	var r userJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewUser(r.AccountID, r.IsAdmin)
	if err != nil {
		return err
	}
	*u = *v
	return nil
}
