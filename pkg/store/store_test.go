package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/society-api/pkg/sdk"
)

func TestReduce_LoginCycle(t *testing.T) {
	var s State
	assert.Equal(t, Idle, s.UserLogin.Phase())

	s = Reduce(s, Event{Type: UserLoginRequest})
	assert.True(t, s.UserLogin.Loading)
	assert.Equal(t, Loading, s.UserLogin.Phase())

	s = Reduce(s, Event{Type: UserLoginFail, Payload: "invalid credentials"})
	assert.False(t, s.UserLogin.Loading)
	assert.Equal(t, "invalid credentials", s.UserLogin.Error)
	assert.Equal(t, Failed, s.UserLogin.Phase())

	s = Reduce(s, Event{Type: UserLoginRequest})
	assert.Empty(t, s.UserLogin.Error, "request discards previous error")

	session := sdk.AuthResponse{User: sdk.User{ID: "u1"}, Token: "tok"}
	s = Reduce(s, Event{Type: UserLoginSuccess, Payload: session})
	require.NotNil(t, s.UserLogin.Data)
	assert.Equal(t, "tok", s.Token())
	assert.Equal(t, Loaded, s.UserLogin.Phase())

	s = Reduce(s, Event{Type: UserLogout})
	assert.Equal(t, Slice[sdk.AuthResponse]{}, s.UserLogin)
	assert.Empty(t, s.Token())
}

func TestReduce_UnknownEventIsIdentity(t *testing.T) {
	s := Reduce(State{}, Event{Type: UserDetailsSuccess, Payload: sdk.User{ID: "u1"}})
	next := Reduce(s, Event{Type: "SOMETHING_ELSE"})
	assert.Equal(t, s, next)
}

func TestReduce_SuccessFlag(t *testing.T) {
	s := Reduce(State{}, Event{Type: UserUpdateProfileSuccess, Payload: sdk.User{ID: "u1"}})
	assert.True(t, s.UserUpdateProfile.Success)

	s = Reduce(s, Event{Type: UserDetailsSuccess, Payload: sdk.User{ID: "u1"}})
	assert.False(t, s.UserDetails.Success)

	s = Reduce(s, Event{Type: DeleteComplaintSuccess})
	assert.True(t, s.DeleteComplaint.Success)
	assert.Equal(t, Loaded, s.DeleteComplaint.Phase())
}

func TestReduce_DetailsReset(t *testing.T) {
	s := Reduce(State{}, Event{Type: UserDetailsSuccess, Payload: sdk.User{ID: "u1"}})
	s = Reduce(s, Event{Type: UserDetailsReset})
	assert.Nil(t, s.UserDetails.Data)
	assert.Equal(t, Idle, s.UserDetails.Phase())
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	st := New(State{})

	var seen []Phase
	unsubscribe := st.Subscribe(func(s State) {
		seen = append(seen, s.UserLogin.Phase())
	})

	st.Dispatch(Event{Type: UserLoginRequest})
	st.Dispatch(Event{Type: UserLoginFail, Payload: "nope"})
	unsubscribe()
	st.Dispatch(Event{Type: UserLoginRequest})

	assert.Equal(t, []Phase{Loading, Failed}, seen)
	assert.Equal(t, Loading, st.GetState().UserLogin.Phase())
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	st := New(State{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch(Event{Type: GetComplaintsRequest})
			st.Dispatch(Event{Type: GetComplaintsSuccess, Payload: []sdk.Complaint{{ID: "c1"}}})
		}()
	}
	wg.Wait()

	s := st.GetState().GetComplaints
	assert.False(t, s.Loading)
	require.NotNil(t, s.Data)
	assert.Len(t, *s.Data, 1)
}
