package model

import "time"

// Donation is a standalone charitable contribution, not tied to an announcement.
// AssignedTo and AdminNotes are admin-only fields set during distribution.
type Donation struct {
	ID            int       `json:"id"`
	DonorName     string    `json:"donor_name"`
	DonorContact  string    `json:"donor_contact,omitempty"`
	Amount        int       `json:"amount"`
	Message       string    `json:"message,omitempty"`
	PaymentStatus string    `json:"payment_status"`
	AssignedTo    string    `json:"assigned_to,omitempty"`
	AdminNotes    string    `json:"admin_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicDonation is the projection shown without admin credentials:
// no contact, no assignment fields.
type PublicDonation struct {
	ID        int       `json:"id"`
	DonorName string    `json:"donor_name"`
	Amount    int       `json:"amount"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the admin-only fields from a donation.
func (d *Donation) Public() *PublicDonation {
	return &PublicDonation{
		ID:        d.ID,
		DonorName: d.DonorName,
		Amount:    d.Amount,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}
