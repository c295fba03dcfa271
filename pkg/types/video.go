package types

import "encoding/json"

// Video is a clip cut by a video editor. The editor is mandatory and is
// attached by the store when the video is created.
type Video struct {
	videoID     int
	description string
}

type videoJSON struct {
	VideoID     int    `json:"video_id"`
	Description string `json:"description"`
}

func NewVideo(id int, description string) (*Video, error) {
	if err := checkID("video", "id", id); err != nil {
		return nil, err
	}
	v := &Video{videoID: id}
	if err := v.SetDescription(description); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Video) ID() int             { return v.videoID }
func (v *Video) Description() string { return v.description }

func (v *Video) SetDescription(s string) error {
	if err := checkText("video", "description", s); err != nil {
		return err
	}
	v.description = s
	return nil
}

func (v *Video) Validate() error {
	_, err := NewVideo(v.videoID, v.description)
	return err
}

func (v *Video) MarshalJSON() ([]byte, error) {
	return json.Marshal(videoJSON{VideoID: v.videoID, Description: v.description})
}

func (v *Video) UnmarshalJSON(data []byte) error {
	var r videoJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	nv, err := NewVideo(r.VideoID, r.Description)
	if err != nil {
		return err
	}
	*v = *nv
	return nil
}
