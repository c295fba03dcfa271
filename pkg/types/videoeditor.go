package types

import "encoding/json"

// VideoEditor is the video editing role of an account.
type VideoEditor struct {
	editorID  int
	bio       string
	accountID int
}

type videoEditorJSON struct {
	VideoEditorID int    `json:"video_editor_id"`
	Bio           string `json:"bio"`
	AccountID     int    `json:"account_id"`
}

func NewVideoEditor(id int, bio string, accountID int) (*VideoEditor, error) {
	if err := checkID("video editor", "id", id); err != nil {
		return nil, err
	}
	if err := checkID("video editor", "account id", accountID); err != nil {
		return nil, err
	}
	e := &VideoEditor{editorID: id, accountID: accountID}
	if err := e.SetBio(bio); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *VideoEditor) ID() int        { return e.editorID }
func (e *VideoEditor) Bio() string    { return e.bio }
func (e *VideoEditor) AccountID() int { return e.accountID }

func (e *VideoEditor) SetBio(v string) error {
	if err := checkText("video editor", "bio", v); err != nil {
		return err
	}
	e.bio = v
	return nil
}

func (e *VideoEditor) Validate() error {
	_, err := NewVideoEditor(e.editorID, e.bio, e.accountID)
	return err
}

func (e *VideoEditor) MarshalJSON() ([]byte, error) {
	return json.Marshal(videoEditorJSON{VideoEditorID: e.editorID, Bio: e.bio, AccountID: e.accountID})
}

func (e *VideoEditor) UnmarshalJSON(data []byte) error {
	var r videoEditorJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewVideoEditor(r.VideoEditorID, r.Bio, r.AccountID)
	if err != nil {
		return err
	}
	*e = *v
	return nil
}
