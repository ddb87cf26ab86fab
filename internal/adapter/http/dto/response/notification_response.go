package response

import (
	"time"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Urgent    bool      `json:"urgent"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// InboxStatsResponse keeps the camelCase lastUpdated key the dashboard badge
// polls for.
type InboxStatsResponse struct {
	Unread      int       `json:"unread"`
	Total       int       `json:"total"`
	Urgent      int       `json:"urgent"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Body:      n.Body,
		Urgent:    n.Urgent,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(notifications []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return out
}

func FromInboxStats(s entities.InboxStats) InboxStatsResponse {
	return InboxStatsResponse{
		Unread:      s.Unread,
		Total:       s.Total,
		Urgent:      s.Urgent,
		LastUpdated: s.LastUpdated,
	}
}
