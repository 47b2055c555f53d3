package domain

// Role is a descriptive record referenced by User.Role through its slug.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RoleInfo is the projection of a Role attached to a user on read.
type RoleInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DefaultRoles are seeded at start-up so every built-in tag resolves.
var DefaultRoles = []Role{
	{Name: "Resident", Slug: RoleResident},
	{Name: "Worker", Slug: RoleWorker},
	{Name: "Admin", Slug: RoleAdmin},
}
