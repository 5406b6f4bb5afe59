package wishlist

import "time"

// Entry associates a user with a bookmarked product. At most one entry
// exists per (user, product) pair; the composite unique index backs the
// pre-check in the service.
type Entry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}
