package entity

import "strings"

// Member is a tracked participant of a roster group.
type Member struct {
	Username    string `yaml:"username" json:"username"`
	DisplayName string `yaml:"display_name" json:"display_name"`
}

// Key returns the case-insensitive identity of the member.
func (m Member) Key() string {
	return NormalizeUsername(m.Username)
}

// RosterGroup is one tracked group with the channel its members post in.
type RosterGroup struct {
	Name    string   `yaml:"name" json:"name"`
	Channel string   `yaml:"channel" json:"channel"`
	Members []Member `yaml:"members" json:"members"`
}

// NormalizeUsername lowercases and trims a username so it can be used as a map key.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ParticipantKey is the content matrix header form of a participant name.
func ParticipantKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
