package database

import (
	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	updateRepo   contract.UpdateRepo
	reminderRepo contract.ReminderRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.updateRepo = newUpdateRepo(i.db.conn)
	i.reminderRepo = newReminderRepo(i.db.conn)
}

// Updates returns the content matrix repository
func (i *instance) Updates() contract.UpdateRepo {
	return i.updateRepo
}

// Reminders returns the reminder log repository
func (i *instance) Reminders() contract.ReminderRepo {
	return i.reminderRepo
}

// Leases returns the run lease repository. Leases always live in the local
// file, whichever backend holds the tracker state.
func (db *DB) Leases() contract.LeaseRepo {
	return newLeaseRepo(db.conn)
}
