package types

import (
	"encoding/json"
	"time"
)

// Account is a registered member. Posts, comments, likes and role records
// are associated through the store, not held here.
type Account struct {
	accountID int
	username  string
	email     string
	birthDate time.Time
	address   string
	password  string
}

// accountJSON is the persisted record for an Account.
type accountJSON struct {
	AccountID int       `json:"account_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birth_date"`
	Address   string    `json:"address"`
	Password  string    `json:"password"`
}

// NewAccount validates every field and returns a fully formed Account.
// A zero birthDate is accepted; Age then reports ErrBirthDateUnset.
func NewAccount(id int, username, email string, birthDate time.Time, address, password string) (*Account, error) {
	if err := checkID("account", "id", id); err != nil {
		return nil, err
	}
	a := &Account{accountID: id}
	for _, set := range []func() error{
		func() error { return a.SetUsername(username) },
		func() error { return a.SetEmail(email) },
		func() error { return a.SetBirthDate(birthDate) },
		func() error { return a.SetAddress(address) },
		func() error { return a.SetPassword(password) },
	} {
		if err := set(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Account) ID() int              { return a.accountID }
func (a *Account) Username() string     { return a.username }
func (a *Account) Email() string        { return a.email }
func (a *Account) BirthDate() time.Time { return a.birthDate }
func (a *Account) Address() string      { return a.address }
func (a *Account) Password() string     { return a.password }

func (a *Account) SetUsername(v string) error {
	if err := checkText("account", "username", v); err != nil {
		return err
	}
	a.username = v
	return nil
}

func (a *Account) SetEmail(v string) error {
	if err := checkText("account", "email", v); err != nil {
		return err
	}
	a.email = v
	return nil
}

func (a *Account) SetBirthDate(v time.Time) error {
	if err := checkNotFuture("account", "birth date", v); err != nil {
		return err
	}
	a.birthDate = v
	return nil
}

func (a *Account) SetAddress(v string) error {
	if err := checkText("account", "address", v); err != nil {
		return err
	}
	a.address = v
	return nil
}

func (a *Account) SetPassword(v string) error {
	if err := checkText("account", "password", v); err != nil {
		return err
	}
	a.password = v
	return nil
}

// Age is derived from the birth date on every call, in whole years as of
// today's date. Times of day are ignored.
func (a *Account) Age() (int, error) {
	if a.birthDate.IsZero() {
		return 0, ErrBirthDateUnset
	}
	// Calendar dates only, read in the birth date's location.
	ty, tm, td := Now().In(a.birthDate.Location()).Date()
	by, bm, bd := a.birthDate.Date()
	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	return age, nil
}

func (a *Account) Validate() error {
	_, err := NewAccount(a.accountID, a.username, a.email, a.birthDate, a.address, a.password)
	return err
}

func (a *Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(accountJSON{
		AccountID: a.accountID,
		Username:  a.username,
		Email:     a.email,
		BirthDate: a.birthDate,
		Address:   a.address,
		Password:  a.password,
	})
}

// UnmarshalJSON decodes and validates a persisted record; a is left
// unchanged on error.
func (a *Account) UnmarshalJSON(data []byte) error {
	var r accountJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewAccount(r.AccountID, r.Username, r.Email, r.BirthDate, r.Address, r.Password)
	if err != nil {
		return err
	}
	*a = *v
	return nil
}
