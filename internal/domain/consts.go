package domain

// Column and tab names used in the spreadsheet
const (
	DateHeader       = "DATE"
	ReminderLogSheet = "dm_state"
)

// ReminderLogHeader is the header row of the reminder log tab
var ReminderLogHeader = []string{"DATE", "BATCH", "USERNAME", "TIMESTAMP"}

// Layouts of the two date keys derived from an attendance window
const (
	DayLabelLayout = "2 Jan"
	DateKeyLayout  = "2006-01-02"
)

// Default message templates; {channel} and {topic} are substituted at send time
const (
	DefaultDMMessage       = "Hey! You haven't posted your update in #{channel} > {topic} yet. Please share what you're working on today."
	DefaultMentionMessage  = "Reminder: Please post your daily update."
	DefaultAnnounceMessage = "👋 **Daily Update Time!**\nPlease share what you're doing today."
)

// DefaultFetchPageSize matches the largest page the chat APIs hand out in one call
const DefaultFetchPageSize = 1000

// Run lease names
const (
	TrackLease    = "track"
	BackfillLease = "backfill"
)
