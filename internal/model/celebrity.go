package model

import "time"

// Celebrity request statuses.
const (
	CelebrityStatusPending  = "pending"
	CelebrityStatusApproved = "approved"
	CelebrityStatusSent     = "sent"
	CelebrityStatusRejected = "rejected"
)

// CelebrityRequest is a request to relay a message to a public figure.
type CelebrityRequest struct {
	ID               int       `json:"id"`
	RequesterName    string    `json:"requester_name"`
	RequesterContact string    `json:"requester_contact,omitempty"`
	CelebrityName    string    `json:"celebrity_name"`
	RequestText      string    `json:"request_text"`
	Status           string    `json:"status"`
	AdminNotes       string    `json:"admin_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ValidCelebrityStatus reports whether s is one of the four request statuses.
func ValidCelebrityStatus(s string) bool {
	switch s {
	case CelebrityStatusPending, CelebrityStatusApproved,
		CelebrityStatusSent, CelebrityStatusRejected:
		return true
	}
	return false
}
