package domain

// User roles
const (
	RoleUser  = "USER"  // Default role assigned on signup
	RoleAdmin = "ADMIN" // Administrative role
)

// User Model
type User struct {
	ID          uint     `gorm:"primaryKey" json:"id"`                       // Primary key
	FirstName   string   `json:"firstName"`                                  // First name
	LastName    string   `json:"lastName"`                                   // Last name
	DateOfBirth string   `json:"dateOfBirth"`                                // Date of birth
	Email       string   `gorm:"unique;not null" json:"email"`               // Unique email
	Username    string   `gorm:"unique;not null" json:"username"`            // Unique username
	Password    string   `gorm:"not null" json:"-"`                          // Hashed password, never serialized
	Role        string   `gorm:"default:USER" json:"role"`                   // Role: USER or ADMIN
	Wallets     []Wallet `gorm:"foreignKey:UserID" json:"wallets,omitempty"` // Wallets owned by the user
}
