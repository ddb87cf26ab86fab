package entities

import (
	"strings"
	"time"
)

// Client is a customer record. Optional contact fields are sparse: they are
// only set when the caller provided them, and omitted from JSON otherwise.
type Client struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Company     string    `json:"company,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Portal credentials. Never serialized in API responses; the share token
	// is generated at creation, the password is optional and set by staff.
	PortalToken    string `json:"-"`
	PortalPassword string `json:"-"`
}

// DisplayName is the human label used in pickers and documents.
func (c Client) DisplayName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.Company
	}
	return name
}

// MatchesQuery reports whether the client matches a search query:
// case-insensitive substring match against the concatenation of first name,
// last name and company. An empty query matches everything.
func (c Client) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(c.FirstName + " " + c.LastName + " " + c.Company)
	return strings.Contains(haystack, q)
}

// SplitQueryName performs the naive first/last split used when creating a
// client straight from a picker query: first whitespace token becomes the
// first name, the remainder the last name.
func SplitQueryName(query string) (firstName, lastName string) {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
