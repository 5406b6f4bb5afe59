package comment

import "time"

// Comment is a product comment by a signed-in user.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"index" json:"product_id"`
	AuthorID  string    `gorm:"type:varchar(36);index" json:"author_id"`
	Author    string    `json:"author"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
