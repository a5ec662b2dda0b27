package domain

// Category Model. Reference data seeded by the migrate command; the
// services only ever read it.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Name string `gorm:"unique;not null" json:"name"` // Category name, e.g. "Credit Card"
}
