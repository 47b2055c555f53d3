package store

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/societyhub/society-api/pkg/logger"
	"github.com/societyhub/society-api/pkg/sdk"
)

// ErrNotAuthenticated is reported by protected actions when no session is
// held.
var ErrNotAuthenticated = errors.New("not authenticated")

// API is the subset of the SDK client the actions call.
type API interface {
	Register(ctx context.Context, req sdk.RegisterRequest) (*sdk.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*sdk.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, token, id string) (*sdk.User, error)
	UpdateProfile(ctx context.Context, token string, req sdk.UpdateProfileRequest) (*sdk.User, error)
	UpdateUserRole(ctx context.Context, token, email, role string) (*sdk.RoleUpdate, error)
	CreateComplaint(ctx context.Context, token string, req sdk.CreateComplaintRequest) (*sdk.Complaint, error)
	ListComplaints(ctx context.Context, token, status string) ([]sdk.Complaint, error)
	DeleteComplaint(ctx context.Context, token, id string) error
	ListAnnouncements(ctx context.Context, token string, limit int) ([]sdk.Announcement, error)
}

// Actions run API calls and dispatch their REQUEST/SUCCESS/FAIL events.
// Every action reports its outcome through the store; the returned error is
// the same failure for Go callers.
type Actions struct {
	api      API
	store    *Store
	sessions SessionStorage
	log      zerolog.Logger
}

func NewActions(api API, store *Store, sessions SessionStorage) *Actions {
	if sessions == nil {
		sessions = &MemorySessionStorage{}
	}
	return &Actions{
		api:      api,
		store:    store,
		sessions: sessions,
		log:      logger.Component("store"),
	}
}

func (a *Actions) fail(t ActionType, err error) error {
	a.store.Dispatch(Event{Type: t, Payload: sdk.ErrorMessage(err)})
	return err
}

func (a *Actions) saveSession(session sdk.AuthResponse) {
	if err := a.sessions.Save(session); err != nil {
		a.log.Warn().Err(err).Msg("failed to persist session")
	}
}

// session returns the logged-in session or nil.
func (a *Actions) session() *sdk.AuthResponse {
	return a.store.GetState().UserLogin.Data
}

// RestoreSession loads a stored session into the login slice. It reports
// whether one was found.
func (a *Actions) RestoreSession() (bool, error) {
	session, err := a.sessions.Load()
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}
	a.store.Dispatch(Event{Type: UserLoginSuccess, Payload: *session})
	return true, nil
}

// Register creates an account and logs it in.
func (a *Actions) Register(ctx context.Context, req sdk.RegisterRequest) error {
	a.store.Dispatch(Event{Type: UserRegisterRequest})

	res, err := a.api.Register(ctx, req)
	if err != nil {
		return a.fail(UserRegisterFail, err)
	}

	a.store.Dispatch(Event{Type: UserRegisterSuccess, Payload: *res})
	a.store.Dispatch(Event{Type: UserLoginSuccess, Payload: *res})
	a.saveSession(*res)
	return nil
}

// Login authenticates and stores the session.
func (a *Actions) Login(ctx context.Context, email, password string) error {
	a.store.Dispatch(Event{Type: UserLoginRequest})

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		return a.fail(UserLoginFail, err)
	}

	a.store.Dispatch(Event{Type: UserLoginSuccess, Payload: *res})
	a.saveSession(*res)
	return nil
}

// Logout drops the local session and clears user state. The server-side
// revocation is best effort.
func (a *Actions) Logout(ctx context.Context) {
	if s := a.session(); s != nil && s.Token != "" {
		if err := a.api.Logout(ctx, s.Token); err != nil {
			a.log.Warn().Err(err).Msg("token revocation failed")
		}
	}
	if err := a.sessions.Remove(); err != nil {
		a.log.Warn().Err(err).Msg("failed to remove session")
	}
	a.store.Dispatch(Event{Type: UserLogout})
	a.store.Dispatch(Event{Type: UserDetailsReset})
}

// GetUserDetails fetches the logged-in member's profile.
func (a *Actions) GetUserDetails(ctx context.Context) error {
	a.store.Dispatch(Event{Type: UserDetailsRequest})

	s := a.session()
	if s == nil {
		return a.fail(UserDetailsFail, ErrNotAuthenticated)
	}

	user, err := a.api.GetUser(ctx, s.Token, s.ID)
	if err != nil {
		return a.fail(UserDetailsFail, err)
	}
	a.store.Dispatch(Event{Type: UserDetailsSuccess, Payload: *user})
	return nil
}

// UpdateUserDetails changes the logged-in member's profile.
func (a *Actions) UpdateUserDetails(ctx context.Context, req sdk.UpdateProfileRequest) error {
	a.store.Dispatch(Event{Type: UserUpdateProfileRequest})

	s := a.session()
	if s == nil {
		return a.fail(UserUpdateProfileFail, ErrNotAuthenticated)
	}

	user, err := a.api.UpdateProfile(ctx, s.Token, req)
	if err != nil {
		return a.fail(UserUpdateProfileFail, err)
	}
	a.store.Dispatch(Event{Type: UserUpdateProfileSuccess, Payload: *user})
	return nil
}

// UpdateUserRole assigns role to the member with email.
func (a *Actions) UpdateUserRole(ctx context.Context, role, email string) error {
	a.store.Dispatch(Event{Type: UpdateUserRoleRequest})

	s := a.session()
	if s == nil {
		return a.fail(UpdateUserRoleFail, ErrNotAuthenticated)
	}

	res, err := a.api.UpdateUserRole(ctx, s.Token, email, role)
	if err != nil {
		return a.fail(UpdateUserRoleFail, err)
	}
	a.store.Dispatch(Event{Type: UpdateUserRoleSuccess, Payload: *res})
	return nil
}

// CreateComplaint raises a complaint.
func (a *Actions) CreateComplaint(ctx context.Context, req sdk.CreateComplaintRequest) error {
	a.store.Dispatch(Event{Type: CreateComplaintRequest})

	s := a.session()
	if s == nil {
		return a.fail(CreateComplaintFail, ErrNotAuthenticated)
	}

	c, err := a.api.CreateComplaint(ctx, s.Token, req)
	if err != nil {
		return a.fail(CreateComplaintFail, err)
	}
	a.store.Dispatch(Event{Type: CreateComplaintSuccess, Payload: *c})
	return nil
}

// GetComplaints lists the complaints visible to the member.
func (a *Actions) GetComplaints(ctx context.Context, status string) error {
	a.store.Dispatch(Event{Type: GetComplaintsRequest})

	s := a.session()
	if s == nil {
		return a.fail(GetComplaintsFail, ErrNotAuthenticated)
	}

	items, err := a.api.ListComplaints(ctx, s.Token, status)
	if err != nil {
		return a.fail(GetComplaintsFail, err)
	}
	a.store.Dispatch(Event{Type: GetComplaintsSuccess, Payload: items})
	return nil
}

// DeleteComplaint removes a complaint.
func (a *Actions) DeleteComplaint(ctx context.Context, id string) error {
	a.store.Dispatch(Event{Type: DeleteComplaintRequest})

	s := a.session()
	if s == nil {
		return a.fail(DeleteComplaintFail, ErrNotAuthenticated)
	}

	if err := a.api.DeleteComplaint(ctx, s.Token, id); err != nil {
		return a.fail(DeleteComplaintFail, err)
	}
	a.store.Dispatch(Event{Type: DeleteComplaintSuccess})
	return nil
}

// GetAnnouncements loads the latest announcements.
func (a *Actions) GetAnnouncements(ctx context.Context, limit int) error {
	a.store.Dispatch(Event{Type: GetAnnouncementsRequest})

	s := a.session()
	if s == nil {
		return a.fail(GetAnnouncementsFail, ErrNotAuthenticated)
	}

	items, err := a.api.ListAnnouncements(ctx, s.Token, limit)
	if err != nil {
		return a.fail(GetAnnouncementsFail, err)
	}
	a.store.Dispatch(Event{Type: GetAnnouncementsSuccess, Payload: items})
	return nil
}
