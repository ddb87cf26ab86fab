package entities

import "time"

// Notification is an inbox entry for a staff user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Urgent    bool      `json:"urgent"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// InboxStats is the aggregate view rendered by the inbox badge.
type InboxStats struct {
	Unread      int       `json:"unread"`
	Total       int       `json:"total"`
	Urgent      int       `json:"urgent"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// ComputeInboxStats folds a notification list into badge counters.
func ComputeInboxStats(notifications []Notification, now time.Time) InboxStats {
	stats := InboxStats{Total: len(notifications), LastUpdated: now}
	for _, n := range notifications {
		if !n.Read {
			stats.Unread++
		}
		if n.Urgent {
			stats.Urgent++
		}
	}
	return stats
}
