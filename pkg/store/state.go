package store

import "github.com/societyhub/society-api/pkg/sdk"

// State is the combined client state.
type State struct {
	UserLogin         Slice[sdk.AuthResponse]
	UserRegister      Slice[sdk.AuthResponse]
	UserDetails       Slice[sdk.User]
	UserUpdateProfile Slice[sdk.User]
	UpdateUserRole    Slice[sdk.RoleUpdate]
	CreateComplaint   Slice[sdk.Complaint]
	GetComplaints     Slice[[]sdk.Complaint]
	DeleteComplaint   Slice[struct{}]
	Announcements     Slice[[]sdk.Announcement]
}

var (
	loginCycle = cycle{
		request: UserLoginRequest, success: UserLoginSuccess, fail: UserLoginFail,
		resets: []ActionType{UserLogout},
	}
	registerCycle = cycle{
		request: UserRegisterRequest, success: UserRegisterSuccess, fail: UserRegisterFail,
		resets: []ActionType{UserLogout},
	}
	detailsCycle = cycle{
		request: UserDetailsRequest, success: UserDetailsSuccess, fail: UserDetailsFail,
		resets: []ActionType{UserDetailsReset},
	}
	updateProfileCycle = cycle{
		request: UserUpdateProfileRequest, success: UserUpdateProfileSuccess, fail: UserUpdateProfileFail,
		resets:      []ActionType{UserLogout},
		markSuccess: true,
	}
	updateRoleCycle = cycle{
		request: UpdateUserRoleRequest, success: UpdateUserRoleSuccess, fail: UpdateUserRoleFail,
		resets:      []ActionType{UserLogout},
		markSuccess: true,
	}
	createComplaintCycle = cycle{
		request: CreateComplaintRequest, success: CreateComplaintSuccess, fail: CreateComplaintFail,
		markSuccess: true,
	}
	getComplaintsCycle = cycle{
		request: GetComplaintsRequest, success: GetComplaintsSuccess, fail: GetComplaintsFail,
		resets: []ActionType{UserLogout},
	}
	deleteComplaintCycle = cycle{
		request: DeleteComplaintRequest, success: DeleteComplaintSuccess, fail: DeleteComplaintFail,
		markSuccess: true,
	}
	announcementsCycle = cycle{
		request: GetAnnouncementsRequest, success: GetAnnouncementsSuccess, fail: GetAnnouncementsFail,
		resets: []ActionType{UserLogout},
	}
)

// Reduce is the root reducer. It never mutates s.
func Reduce(s State, ev Event) State {
	return State{
		UserLogin:         reduce(s.UserLogin, ev, loginCycle),
		UserRegister:      reduce(s.UserRegister, ev, registerCycle),
		UserDetails:       reduce(s.UserDetails, ev, detailsCycle),
		UserUpdateProfile: reduce(s.UserUpdateProfile, ev, updateProfileCycle),
		UpdateUserRole:    reduce(s.UpdateUserRole, ev, updateRoleCycle),
		CreateComplaint:   reduce(s.CreateComplaint, ev, createComplaintCycle),
		GetComplaints:     reduce(s.GetComplaints, ev, getComplaintsCycle),
		DeleteComplaint:   reduce(s.DeleteComplaint, ev, deleteComplaintCycle),
		Announcements:     reduce(s.Announcements, ev, announcementsCycle),
	}
}

// Token returns the session token of the logged-in user, if any.
func (s State) Token() string {
	if s.UserLogin.Data == nil {
		return ""
	}
	return s.UserLogin.Data.Token
}
