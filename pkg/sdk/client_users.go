package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// ============================================================================
// Authentication
// ============================================================================

// Register creates an account and returns the profile with a session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return call[AuthResponse](ctx, c, http.MethodPost, "/api/users/register", "", req, http.StatusCreated)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	return call[AuthResponse](ctx, c, http.MethodPost, "/api/users/login", "", body, http.StatusOK)
}

// Logout revokes token on the server.
func (c *Client) Logout(ctx context.Context, token string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/users/logout", token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Profiles
// ============================================================================

// GetUser fetches a profile with its role information.
func (c *Client) GetUser(ctx context.Context, token, id string) (*User, error) {
	return call[User](ctx, c, http.MethodGet, "/api/users/"+url.PathEscape(id), token, nil, http.StatusOK)
}

// ListUsers lists members whose role is one of roles; no roles lists everyone.
func (c *Client) ListUsers(ctx context.Context, token string, roles ...string) ([]User, error) {
	path := "/api/users/getUsers"
	if len(roles) > 0 {
		path += "?" + url.Values{"includedRoles": {strings.Join(roles, ",")}}.Encode()
	}
	users, err := call[[]User](ctx, c, http.MethodGet, path, token, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *users, nil
}

// UpdateProfile changes the caller's own profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (*User, error) {
	return call[User](ctx, c, http.MethodPatch, "/api/users/updateProfile", token, req, http.StatusOK)
}

// UpdateUserRole assigns role to the member identified by email. Admin only.
func (c *Client) UpdateUserRole(ctx context.Context, token, email, role string) (*RoleUpdate, error) {
	body := RoleUpdate{Email: email, UserRole: role}
	return call[RoleUpdate](ctx, c, http.MethodPatch, "/api/users/updateUserRole", token, body, http.StatusOK)
}

// ============================================================================
// Roles
// ============================================================================

// ListRoles returns the role catalogue.
func (c *Client) ListRoles(ctx context.Context, token string) ([]Role, error) {
	roles, err := call[[]Role](ctx, c, http.MethodGet, "/api/roles", token, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *roles, nil
}

// CreateRole adds a role to the catalogue. Admin only.
func (c *Client) CreateRole(ctx context.Context, token, name string) (*Role, error) {
	return call[Role](ctx, c, http.MethodPost, "/api/roles", token, map[string]string{"name": name}, http.StatusCreated)
}
