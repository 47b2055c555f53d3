package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/societyhub/society-api/internal/core/domain"
)

// phoneNumber accepts both 5551234 and "5551234" on the wire.
type phoneNumber int64

func (p *phoneNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("phoneNumber must be numeric")
	}
	*p = phoneNumber(n)
	return nil
}

type registerRequest struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email" validate:"omitempty,email"`
	PhoneNumber phoneNumber `json:"phoneNumber" validate:"gte=0"`
	Address     string      `json:"address"`
	Password    string      `json:"password" validate:"max=72"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Address     *string      `json:"address"`
	PhoneNumber *phoneNumber `json:"phoneNumber" validate:"omitempty,gte=0"`
	Password    *string      `json:"password" validate:"omitempty,max=72"`
}

type updateUserRoleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserRole string `json:"userRole" validate:"required"`
}

type roleInfoResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// userResponse is the public view of a member. It never carries the password.
type userResponse struct {
	ID           string            `json:"_id"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	Email        string            `json:"email"`
	PhoneNumber  int64             `json:"phoneNumber"`
	Address      string            `json:"address"`
	UserRole     string            `json:"userRole"`
	UserRoleInfo *roleInfoResponse `json:"userRoleInfo,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
}

// authResponse is returned by register and login: the profile plus a token.
type authResponse struct {
	userResponse
	Token string `json:"token"`
}

type roleUpdateResponse struct {
	Email    string `json:"email"`
	UserRole string `json:"userRole"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		UserRole:    u.Role,
	}
	if u.RoleInfo != nil {
		resp.UserRoleInfo = &roleInfoResponse{Name: u.RoleInfo.Name, Slug: u.RoleInfo.Slug}
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
