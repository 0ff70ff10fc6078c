package service

import "github.com/diegoclair/update-tracker-bot/internal/domain/entity"

// Classify splits members by today's posted set and the reminder log.
// It does not mutate its inputs, so repeated runs over the same state agree.
func Classify(members []entity.Member, posted, reminded map[string]bool) entity.Classification {
	var c entity.Classification

	for _, member := range members {
		key := member.Key()
		switch {
		case posted[key]:
			c.Posted = append(c.Posted, member)
		case reminded[key]:
			// Already reminded privately but still no update
			c.Escalated = append(c.Escalated, member)
		default:
			c.Pending = append(c.Pending, member)
		}
	}

	return c
}
