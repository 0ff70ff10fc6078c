package entity

import (
	"fmt"
	"strings"
)

// Message is a chat message as returned by the chat platform.
type Message struct {
	ID                string
	SenderUsername    string
	SenderDisplayName string
	Timestamp         int64
	Content           string
}

// MessageQuery narrows a message fetch to a channel and topic.
// Anchor is either AnchorNewest or a message id returned in a previous page.
type MessageQuery struct {
	Channel   string
	Topic     string
	Anchor    string
	NumBefore int
}

// AnchorNewest asks the chat platform for the most recent messages.
const AnchorNewest = "newest"

// MessagePage is one backward page of messages.
// Oldest is the id to use as the anchor of the next page. More is set when the
// platform reports older messages beyond this page; pages may be shorter than
// requested even when More is set.
type MessagePage struct {
	Messages []Message
	Oldest   string
	More     bool
}

// Update is the latest content a participant posted inside a window.
type Update struct {
	Username    string
	DisplayName string
	Content     string
	Timestamp   int64
	MessageID   string
}

// Updates maps a normalized username to its latest update.
type Updates map[string]Update

// Posted returns the set of usernames with an update.
func (u Updates) Posted() map[string]bool {
	posted := make(map[string]bool, len(u))
	for username := range u {
		posted[username] = true
	}
	return posted
}

// Entries returns the content keyed by display name, the form written to the
// content matrix. Updates without a display name fall back to the username.
// A display name shared by more than one username, among the posters or the
// given roster members, is suffixed with the username so no update overwrites
// another one.
func (u Updates) Entries(members []Member) map[string]string {
	owners := make(map[string]map[string]bool)
	claim := func(name, username string) {
		key := ParticipantKey(name)
		if key == "" {
			return
		}
		if owners[key] == nil {
			owners[key] = make(map[string]bool)
		}
		owners[key][NormalizeUsername(username)] = true
	}
	for _, m := range members {
		claim(m.DisplayName, m.Username)
	}
	for _, update := range u {
		claim(update.participant(), update.Username)
	}

	entries := make(map[string]string, len(u))
	for _, update := range u {
		participant := update.participant()
		if len(owners[ParticipantKey(participant)]) > 1 {
			participant = fmt.Sprintf("%s (%s)", participant, update.Username)
		}
		entries[participant] = update.Content
	}
	return entries
}

func (u Update) participant() string {
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}
	return u.Username
}
