package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
	"github.com/societyhub/society-api/internal/pkg/metrics"
)

// Placeholder contact details of the bootstrap administrator. Every required
// profile field is set; the admin replaces them through updateProfile.
const (
	bootstrapFirstName         = "Society"
	bootstrapLastName          = "Admin"
	bootstrapAddress           = "Society office"
	bootstrapPhoneNumber int64 = 1000000000
)

// UserService implements registration, login and profile management.
type UserService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	tokens   ports.TokenIssuer
	denylist ports.TokenDenylist
	audit    ports.AuditSink
	logger   zerolog.Logger
	hashCost int
}

// NewUserService wires the account use cases. denylist and audit may be nil,
// in which case logout is a no-op and no audit trail is recorded.
func NewUserService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	tokens ports.TokenIssuer,
	denylist ports.TokenDenylist,
	audit ports.AuditSink,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		users:    users,
		roles:    roles,
		tokens:   tokens,
		denylist: denylist,
		audit:    audit,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	missing := missingFields(
		field{"firstName", in.FirstName != ""},
		field{"lastName", in.LastName != ""},
		field{"email", strings.TrimSpace(in.Email) != ""},
		field{"phoneNumber", in.PhoneNumber != 0},
		field{"address", in.Address != ""},
		field{"password", in.Password != ""},
	)
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", domain.ErrValidation, strings.Join(missing, ", "))
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        domain.NormalizeEmail(in.Email),
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.record(domain.AuditEvent{
		Subject: created.Email,
		Action:  domain.AuditUserRegistered,
		Actor:   created.Email,
	})
	s.logger.Info().Str("email", created.Email).Msg("user registered")

	return &ports.AuthResult{User: created, Token: token}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password required", domain.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison so unknown emails cost the same as bad passwords.
			_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{User: user, Token: token}, nil
}

// Logout revokes the token identified by tokenID until it would have expired.
func (s *UserService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.denylist == nil || tokenID == "" {
		return nil
	}
	if err := s.denylist.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// GetProfile returns the profile for id with its role info resolved. Only
// the account owner and administrators may read a profile.
func (s *UserService) GetProfile(ctx context.Context, caller ports.Caller, id string) (*domain.User, error) {
	if caller.ID != id && !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns members whose role is in roles, or every member when
// roles is empty.
func (s *UserService) ListUsers(ctx context.Context, roles []string) ([]*domain.User, error) {
	users, err := s.users.List(ctx, normalizeRoles(roles))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateProfile changes the address, phone number or password of the member
// identified by email. Unset or empty fields keep their stored value.
func (s *UserService) UpdateProfile(ctx context.Context, email string, in ports.UpdateProfileInput) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	var update ports.ProfileUpdate
	if in.Address != nil && *in.Address != "" {
		update.Address = in.Address
	}
	if in.PhoneNumber != nil && *in.PhoneNumber != 0 {
		update.PhoneNumber = in.PhoneNumber
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := s.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	if update.Address == nil && update.PhoneNumber == nil && update.PasswordHash == nil {
		return s.users.FindByEmail(ctx, email)
	}

	user, err := s.users.UpdateProfile(ctx, email, update)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditEvent{
		Subject: user.Email,
		Action:  domain.AuditUserProfileUpdated,
		Actor:   user.Email,
		Details: map[string]string{"password_changed": fmt.Sprint(update.PasswordHash != nil)},
	})
	return user, nil
}

// UpdateUserRole assigns role to the member identified by email. Only
// administrators may change roles, and role must name an existing Role.
func (s *UserService) UpdateUserRole(ctx context.Context, caller ports.Caller, email, role string) (*domain.User, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	email = domain.NormalizeEmail(email)
	role = strings.TrimSpace(role)
	if email == "" || role == "" {
		return nil, fmt.Errorf("%w: email and userRole required", domain.ErrValidation)
	}

	if _, err := s.roles.FindBySlug(ctx, role); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateRole(ctx, email, role)
	if err != nil {
		return nil, err
	}

	metrics.RoleUpdatesTotal.WithLabelValues(role).Inc()
	s.record(domain.AuditEvent{
		Subject: user.Email,
		Action:  domain.AuditUserRoleUpdated,
		Actor:   caller.Email,
		Details: map[string]string{"role": role},
	})
	s.logger.Info().Str("email", user.Email).Str("role", role).Str("actor", caller.Email).Msg("user role updated")

	return user, nil
}

// CurrentRole returns the role stored for userID, so authority follows role
// changes made after a token was issued.
func (s *UserService) CurrentRole(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", domain.ErrInvalidToken
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("resolve role: %w", err)
	}
	return user.Role, nil
}

// requireAdmin checks the caller's stored role rather than the one carried
// in their token.
func (s *UserService) requireAdmin(ctx context.Context, caller ports.Caller) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	role, err := s.CurrentRole(ctx, caller.ID)
	if errors.Is(err, domain.ErrInvalidToken) {
		return domain.ErrForbidden
	}
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// EnsureAdmin makes sure an administrator account exists for email. An
// existing account is promoted; otherwise one is created with password.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil
	}

	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == domain.RoleAdmin {
			return nil
		}
		if _, err := s.users.UpdateRole(ctx, email, domain.RoleAdmin); err != nil {
			return fmt.Errorf("promote admin: %w", err)
		}
		s.logger.Info().Str("email", email).Msg("existing account promoted to admin")
		return nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("lookup admin: %w", err)
	}

	if password == "" {
		return fmt.Errorf("%w: admin password required to create %s", domain.ErrValidation, email)
	}
	hash, err := s.hash(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.users.Create(ctx, &domain.User{
		FirstName:    bootstrapFirstName,
		LastName:     bootstrapLastName,
		Email:        email,
		PhoneNumber:  bootstrapPhoneNumber,
		Address:      bootstrapAddress,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil && !errors.Is(err, domain.ErrUserExists) {
		return fmt.Errorf("create admin: %w", err)
	}
	s.logger.Info().Str("email", email).Msg("admin account created")
	return nil
}

func (s *UserService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *UserService) record(event domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	s.audit.Enqueue(event)
}

type field struct {
	name    string
	present bool
}

func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func normalizeRoles(roles []string) []string {
	seen := make(map[string]struct{}, len(roles))
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

var (
	dummyOnce sync.Once
	dummy     []byte
)

func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	return dummy
}
