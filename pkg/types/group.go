package types

import "encoding/json"

// Group is a community that shares media and is run by moderators.
type Group struct {
	groupID     int
	name        string
	description string
}

type groupJSON struct {
	GroupID     int    `json:"group_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewGroup(id int, name, description string) (*Group, error) {
	if err := checkID("group", "id", id); err != nil {
		return nil, err
	}
	g := &Group{groupID: id}
	if err := g.SetName(name); err != nil {
		return nil, err
	}
	if err := g.SetDescription(description); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Group) ID() int             { return g.groupID }
func (g *Group) Name() string        { return g.name }
func (g *Group) Description() string { return g.description }

func (g *Group) SetName(v string) error {
	if err := checkText("group", "name", v); err != nil {
		return err
	}
	g.name = v
	return nil
}

func (g *Group) SetDescription(v string) error {
	if err := checkText("group", "description", v); err != nil {
		return err
	}
	g.description = v
	return nil
}

func (g *Group) Validate() error {
	_, err := NewGroup(g.groupID, g.name, g.description)
	return err
}

func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(groupJSON{GroupID: g.groupID, Name: g.name, Description: g.description})
}

func (g *Group) UnmarshalJSON(data []byte) error {
	var r groupJSON
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := NewGroup(r.GroupID, r.Name, r.Description)
	if err != nil {
		return err
	}
	*g = *v
	return nil
}
