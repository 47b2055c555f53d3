package store

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/society-api/pkg/sdk"
)

// fakeAPI returns canned results and records the token each protected call
// was made with.
type fakeAPI struct {
	auth      *sdk.AuthResponse
	user      *sdk.User
	err       error
	lastToken string
	loggedOut bool
}

func (f *fakeAPI) Register(context.Context, sdk.RegisterRequest) (*sdk.AuthResponse, error) {
	return f.auth, f.err
}

func (f *fakeAPI) Login(context.Context, string, string) (*sdk.AuthResponse, error) {
	return f.auth, f.err
}

func (f *fakeAPI) Logout(_ context.Context, token string) error {
	f.lastToken = token
	f.loggedOut = true
	return f.err
}

func (f *fakeAPI) GetUser(_ context.Context, token, _ string) (*sdk.User, error) {
	f.lastToken = token
	return f.user, f.err
}

func (f *fakeAPI) UpdateProfile(_ context.Context, token string, _ sdk.UpdateProfileRequest) (*sdk.User, error) {
	f.lastToken = token
	return f.user, f.err
}

func (f *fakeAPI) UpdateUserRole(_ context.Context, token, email, role string) (*sdk.RoleUpdate, error) {
	f.lastToken = token
	if f.err != nil {
		return nil, f.err
	}
	return &sdk.RoleUpdate{Email: email, UserRole: role}, nil
}

func (f *fakeAPI) CreateComplaint(_ context.Context, token string, req sdk.CreateComplaintRequest) (*sdk.Complaint, error) {
	f.lastToken = token
	if f.err != nil {
		return nil, f.err
	}
	return &sdk.Complaint{ID: "c1", Title: req.Title, Status: "pending"}, nil
}

func (f *fakeAPI) ListComplaints(_ context.Context, token, _ string) ([]sdk.Complaint, error) {
	f.lastToken = token
	return []sdk.Complaint{{ID: "c1"}}, f.err
}

func (f *fakeAPI) DeleteComplaint(_ context.Context, token, _ string) error {
	f.lastToken = token
	return f.err
}

func (f *fakeAPI) ListAnnouncements(_ context.Context, token string, _ int) ([]sdk.Announcement, error) {
	f.lastToken = token
	return []sdk.Announcement{{ID: "a1"}}, f.err
}

var ana = &sdk.AuthResponse{User: sdk.User{ID: "u1", Email: "ana@example.com", UserRole: "resident"}, Token: "tok"}

func newActions(api *fakeAPI) (*Actions, *Store, *MemorySessionStorage) {
	st := New(State{})
	sessions := &MemorySessionStorage{}
	return NewActions(api, st, sessions), st, sessions
}

func TestRegister_LogsInAndPersists(t *testing.T) {
	actions, st, sessions := newActions(&fakeAPI{auth: ana})

	var phases []Phase
	st.Subscribe(func(s State) { phases = append(phases, s.UserRegister.Phase()) })

	require.NoError(t, actions.Register(context.Background(), sdk.RegisterRequest{Email: ana.Email}))

	s := st.GetState()
	assert.Equal(t, Loaded, s.UserRegister.Phase())
	assert.Equal(t, "tok", s.Token(), "register also logs in")
	assert.Equal(t, []Phase{Loading, Loaded, Loaded}, phases)

	saved, err := sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "u1", saved.ID)
}

func TestLogin_FailPrefersServerMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &sdk.APIError{StatusCode: http.StatusUnauthorized, Message: "invalid credentials"}, "invalid credentials"},
		{"transport error", errors.New("dial tcp: connection refused"), "dial tcp: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, st, sessions := newActions(&fakeAPI{err: tt.err})

			err := actions.Login(context.Background(), "a@b.com", "pw")
			require.ErrorIs(t, err, tt.err)

			s := st.GetState()
			assert.Equal(t, tt.want, s.UserLogin.Error)
			assert.False(t, s.UserLogin.Loading)

			saved, _ := sessions.Load()
			assert.Nil(t, saved)
		})
	}
}

func TestProtectedActions_UseSessionToken(t *testing.T) {
	api := &fakeAPI{auth: ana, user: &ana.User}
	actions, st, _ := newActions(api)
	ctx := context.Background()

	require.NoError(t, actions.Login(ctx, ana.Email, "pw"))

	require.NoError(t, actions.GetUserDetails(ctx))
	assert.Equal(t, "tok", api.lastToken)
	require.NotNil(t, st.GetState().UserDetails.Data)

	require.NoError(t, actions.UpdateUserRole(ctx, "worker", "bo@example.com"))
	assert.Equal(t, "worker", st.GetState().UpdateUserRole.Data.UserRole)
	assert.True(t, st.GetState().UpdateUserRole.Success)

	require.NoError(t, actions.CreateComplaint(ctx, sdk.CreateComplaintRequest{Title: "Leak"}))
	assert.Equal(t, "Leak", st.GetState().CreateComplaint.Data.Title)

	require.NoError(t, actions.GetComplaints(ctx, ""))
	assert.Len(t, *st.GetState().GetComplaints.Data, 1)

	require.NoError(t, actions.DeleteComplaint(ctx, "c1"))
	assert.True(t, st.GetState().DeleteComplaint.Success)

	require.NoError(t, actions.GetAnnouncements(ctx, 10))
	assert.Len(t, *st.GetState().Announcements.Data, 1)
}

func TestProtectedActions_WithoutSession(t *testing.T) {
	actions, st, _ := newActions(&fakeAPI{})

	err := actions.GetUserDetails(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, ErrNotAuthenticated.Error(), st.GetState().UserDetails.Error)
}

func TestLogout_ClearsState(t *testing.T) {
	api := &fakeAPI{auth: ana, user: &ana.User}
	actions, st, sessions := newActions(api)
	ctx := context.Background()

	require.NoError(t, actions.Login(ctx, ana.Email, "pw"))
	require.NoError(t, actions.GetUserDetails(ctx))

	actions.Logout(ctx)

	assert.True(t, api.loggedOut)
	s := st.GetState()
	assert.Nil(t, s.UserLogin.Data)
	assert.Nil(t, s.UserDetails.Data)
	saved, _ := sessions.Load()
	assert.Nil(t, saved)
}

func TestRestoreSession(t *testing.T) {
	actions, st, sessions := newActions(&fakeAPI{})

	found, err := actions.RestoreSession()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, sessions.Save(*ana))
	found, err = actions.RestoreSession()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "tok", st.GetState().Token())
}
