package sdk

import "time"

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber int64  `json:"phoneNumber"`
	Address     string `json:"address"`
	Password    string `json:"password"`
}

// UpdateProfileRequest carries the profile fields to change; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Address     *string `json:"address,omitempty"`
	PhoneNumber *int64  `json:"phoneNumber,omitempty"`
	Password    *string `json:"password,omitempty"`
}

// RoleInfo is the role record joined onto a user profile.
type RoleInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// User is a member profile.
type User struct {
	ID           string    `json:"_id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PhoneNumber  int64     `json:"phoneNumber"`
	Address      string    `json:"address"`
	UserRole     string    `json:"userRole"`
	UserRoleInfo *RoleInfo `json:"userRoleInfo,omitempty"`
	CreatedAt    string    `json:"createdAt,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User
	Token string `json:"token"`
}

// RoleUpdate is returned by PATCH /api/users/updateUserRole.
type RoleUpdate struct {
	Email    string `json:"email"`
	UserRole string `json:"userRole"`
}

// Role is an entry of the role catalogue.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateComplaintRequest is the body of POST /api/complaints.
type CreateComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

// Complaint is a maintenance request.
type Complaint struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	RaisedBy    string    `json:"raisedBy"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Announcement is a notice published by an administrator.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
