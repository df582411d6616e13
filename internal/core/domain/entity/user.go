package entity

import "time"

// Role is the authorization level of a user. Admins can manage the catalog,
// inspect any user's orders, and override order statuses.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a raw string onto the role vocabulary.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"size:191;not null" json:"name"`
	Email    string `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:191;not null" json:"-"`
	Role     Role   `gorm:"type:varchar(16);not null;default:'USER'" json:"role"`

	// Default address pointers are non-owning references: the address row
	// lives independently and may be deleted, at which point the pointer is
	// nulled out (see UserService.DeleteAddress).
	DefaultShippingAddressID *int64 `json:"defaultShippingAddress,omitempty"`
	DefaultBillingAddressID  *int64 `json:"defaultBillingAddress,omitempty"`

	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Address struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  int64  `gorm:"not null;index" json:"userId"`
	LineOne string `gorm:"size:191;not null" json:"lineOne"`
	LineTwo string `gorm:"size:191" json:"lineTwo,omitempty"`
	City    string `gorm:"size:64;not null" json:"city"`
	Country string `gorm:"size:64;not null" json:"country"`
	PinCode string `gorm:"size:16;not null" json:"pinCode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Formatted renders the single-line address text that gets snapshotted onto
// an order at creation time.
func (a *Address) Formatted() string {
	s := a.LineOne
	if a.LineTwo != "" {
		s += ", " + a.LineTwo
	}
	return s + ", " + a.City + ", " + a.Country + " " + a.PinCode
}
