package domain

// Wallet Model
type Wallet struct {
	ID         uint     `gorm:"primaryKey" json:"id"`         // Primary key
	Name       string   `gorm:"not null" json:"name"`         // Wallet name
	UserID     uint     `gorm:"index;not null" json:"userId"` // Foreign key to the owning User
	CategoryID uint     `gorm:"not null" json:"categoryId"`   // Foreign key to Category
	Category   Category `json:"category"`                     // Category the wallet belongs to
}
