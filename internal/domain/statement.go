package domain

// Statement Model. A dated balance snapshot for one wallet. Statements are
// append-only: nothing in the services updates or deletes them. Date is
// stored in canonical YYYY-MM-DD form so that lexicographic order equals
// chronological order for the distinct-date queries.
type Statement struct {
	ID       uint    `gorm:"primaryKey" json:"id"`           // Primary key
	Date     string  `gorm:"index;not null" json:"date"`     // Calendar day, YYYY-MM-DD
	Value    float64 `gorm:"not null" json:"value"`          // Balance value on that day
	UserID   uint    `gorm:"index;not null" json:"userId"`   // Foreign key to the owning User
	WalletID uint    `gorm:"index;not null" json:"walletId"` // Foreign key to the Wallet
}
