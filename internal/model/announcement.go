package model

import "time"

// Announcement tiers. The tier is fixed at creation and drives the listing price.
const (
	TierRegular = "regular"
	TierBoosted = "boosted"
	TierVIP     = "vip"
)

// Announcement statuses. Transitions are enforced by the service layer:
// pending_payment → published → closed, plus admin delete from either state.
const (
	StatusPendingPayment = "pending_payment"
	StatusPublished      = "published"
	StatusClosed         = "closed"
)

// Announcement is a help-request listing.
type Announcement struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Author        string     `json:"author"`
	AuthorContact string     `json:"author_contact,omitempty"`
	Tier          string     `json:"type"`
	Status        string     `json:"status"`
	PaymentAmount int        `json:"payment_amount"`
	ViewCount     int        `json:"view_count"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	CreatedAt     time.Time  `json:"date"`
}

// PriceForTier returns the listing price for a tier.
// Unknown tiers fall back to the regular price, matching the original gateway.
func PriceForTier(tier string) int {
	switch tier {
	case TierVIP:
		return 100
	case TierBoosted:
		return 20
	default:
		return 10
	}
}

// ValidTier reports whether tier is one of the three listing tiers.
func ValidTier(tier string) bool {
	return tier == TierRegular || tier == TierBoosted || tier == TierVIP
}
