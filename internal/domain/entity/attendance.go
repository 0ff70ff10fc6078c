package entity

import "time"

// Window is the attendance day a run is working on.
type Window struct {
	Now   time.Time
	Start time.Time
	Label string // "17 Oct"
	Date  string // "2026-10-17"
}

// DailyUpdate is one date row of the content matrix.
type DailyUpdate struct {
	Label   string
	Date    string
	Entries map[string]string
}

// ReminderLogEntry records a private reminder that was sent successfully.
type ReminderLogEntry struct {
	Date     string
	Group    string
	Username string
	SentAt   time.Time
}

// AttendanceState is the per-day state of a member.
type AttendanceState string

const (
	StatePosted          AttendanceState = "posted"
	StatePendingReminder AttendanceState = "pending_reminder"
	StateEscalated       AttendanceState = "escalated"
)

// Classification splits a group's members into the three attendance states.
type Classification struct {
	Posted    []Member
	Pending   []Member
	Escalated []Member
}

// StateOf returns the state of the member with the given username, and false
// if the member is not part of the classification.
func (c Classification) StateOf(username string) (AttendanceState, bool) {
	key := NormalizeUsername(username)
	for _, bucket := range []struct {
		members []Member
		state   AttendanceState
	}{
		{c.Posted, StatePosted},
		{c.Pending, StatePendingReminder},
		{c.Escalated, StateEscalated},
	} {
		for _, m := range bucket.members {
			if m.Key() == key {
				return bucket.state, true
			}
		}
	}
	return "", false
}
