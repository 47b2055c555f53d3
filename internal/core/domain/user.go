package domain

import (
	"strings"
	"time"
)

const (
	RoleResident = "resident"
	RoleWorker   = "worker"
	RoleAdmin    = "admin"
)

// DefaultRole is assigned to every self-registered account.
const DefaultRole = RoleResident

// User models a member of the society: resident, worker or administrator.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PhoneNumber  int64     `json:"phoneNumber"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"userRole"`
	RoleInfo     *RoleInfo `json:"userRoleInfo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NormalizeEmail lower-cases and trims an address so the unique index on
// email is case-insensitive in practice.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
