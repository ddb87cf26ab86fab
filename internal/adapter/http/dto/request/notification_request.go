package request

type NotificationRequest struct {
	Title  string `json:"title" binding:"required"`
	Body   string `json:"body"`
	Urgent bool   `json:"urgent"`
}
