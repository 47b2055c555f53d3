package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	roles *stubRoleRepo
	seq   int
	err   error
}

func newStubUserRepo(roles *stubRoleRepo) *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), roles: roles}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.seq++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[stored.Email] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return r.withRole(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, roles []string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	var out []*domain.User
	for _, u := range r.users {
		if len(allowed) > 0 && !allowed[u.Role] {
			continue
		}
		out = append(out, r.withRole(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, email string, update ports.ProfileUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Address != nil {
		u.Address = *update.Address
	}
	if update.PhoneNumber != nil {
		u.PhoneNumber = *update.PhoneNumber
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, email, role string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

// Count is a test helper; the repository port has no counterpart.
func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) withRole(u *domain.User) *domain.User {
	out := cloneUser(u)
	if r.roles != nil {
		if role, ok := r.roles.roles[u.Role]; ok {
			out.RoleInfo = &domain.RoleInfo{Name: role.Name, Slug: role.Slug}
		}
	}
	return out
}

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func newStubRoleRepo(seed ...domain.Role) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[string]*domain.Role)}
	for _, role := range seed {
		role := role
		r.roles[role.Slug] = &role
	}
	return r
}

func (r *stubRoleRepo) FindBySlug(_ context.Context, slug string) (*domain.Role, error) {
	if role, ok := r.roles[slug]; ok {
		return role, nil
	}
	return nil, domain.ErrUnknownRole
}

func (r *stubRoleRepo) List(_ context.Context) ([]*domain.Role, error) {
	out := make([]*domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, ok := r.roles[role.Slug]; ok {
		return nil, domain.ErrRoleExists
	}
	stored := *role
	stored.ID = "role-" + role.Slug
	r.roles[role.Slug] = &stored
	return &stored, nil
}

func (r *stubRoleRepo) Upsert(_ context.Context, role *domain.Role) error {
	if _, ok := r.roles[role.Slug]; ok {
		return nil
	}
	stored := *role
	r.roles[role.Slug] = &stored
	return nil
}

type captureAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *captureAudit) Enqueue(event domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *captureAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.events))
	for i, e := range a.events {
		out[i] = e.Action
	}
	return out
}

type stubDenylist struct {
	revoked map[string]time.Time
}

func (d *stubDenylist) Revoke(_ context.Context, id string, until time.Time) error {
	d.revoked[id] = until
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := d.revoked[id]
	return ok, nil
}
