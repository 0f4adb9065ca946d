package duo

import "encoding/json"

// User is a Duo user record as returned by GET /admin/v1/users, with the
// user's enrolled phones nested inside.
type User struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	RealName string  `json:"realname"`
	Email    string  `json:"email"`
	Status   string  `json:"status"`
	Phones   []Phone `json:"phones"`
}

// Phone is a phone record nested under a user. The free-text Name field is
// the only writable metadata slot the Admin API exposes on a phone, so the
// cleanup tooling stores its first-seen timestamp there.
type Phone struct {
	PhoneID   string `json:"phone_id"`
	Name      string `json:"name"`
	Number    string `json:"number"`
	Extension string `json:"extension"`
	Type      string `json:"type"`
	Platform  string `json:"platform"`
	Activated bool   `json:"activated"`
}

// apiResponse is the envelope every Admin API endpoint wraps its payload in.
// Stat is "OK" on success; on failure Code/Message/MessageDetail describe
// the error and Response is absent.
type apiResponse struct {
	Stat          string            `json:"stat"`
	Code          int               `json:"code"`
	Message       string            `json:"message"`
	MessageDetail string            `json:"message_detail"`
	Response      json.RawMessage   `json:"response"`
	Metadata      *responseMetadata `json:"metadata"`
}

// responseMetadata carries pagination state for list endpoints. NextOffset
// is omitted on the last page.
type responseMetadata struct {
	NextOffset   *int `json:"next_offset"`
	PrevOffset   *int `json:"prev_offset"`
	TotalObjects int  `json:"total_objects"`
}
