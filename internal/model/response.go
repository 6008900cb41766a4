package model

import "time"

// Response is a helper's reply to an announcement. MessageCount is computed at
// read time as the number of chat messages in the response's thread.
type Response struct {
	ID               int       `json:"id"`
	AnnouncementID   int       `json:"announcement_id"`
	ResponderName    string    `json:"responder_name"`
	ResponderContact string    `json:"responder_contact"`
	Message          string    `json:"message"`
	Status           string    `json:"status"`
	MessageCount     int       `json:"message_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// Message is one chat entry in a response's thread. Sender is the display name
// of one of the two thread participants. Messages are immutable once created
// and ordered ascending by CreatedAt.
type Message struct {
	ID         int       `json:"id"`
	ResponseID int       `json:"response_id"`
	Sender     string    `json:"sender"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
