package cards

import "time"

// Card is a shareable resource owned by the user who created it. Likes is
// the set of user ids that liked the card.
type Card struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	OwnerID   string    `json:"ownerId"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}
