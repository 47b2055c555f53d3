// Package store keeps client-side state for the society API: typed events
// are dispatched into pure reducers, each owning one request slice.
package store

// ActionType names a dispatched event.
type ActionType string

const (
	UserRegisterRequest ActionType = "USER_REGISTER_REQUEST"
	UserRegisterSuccess ActionType = "USER_REGISTER_SUCCESS"
	UserRegisterFail    ActionType = "USER_REGISTER_FAIL"

	UserLoginRequest ActionType = "USER_LOGIN_REQUEST"
	UserLoginSuccess ActionType = "USER_LOGIN_SUCCESS"
	UserLoginFail    ActionType = "USER_LOGIN_FAIL"
	UserLogout       ActionType = "USER_LOGOUT"

	UserDetailsRequest ActionType = "USER_DETAILS_REQUEST"
	UserDetailsSuccess ActionType = "USER_DETAILS_SUCCESS"
	UserDetailsFail    ActionType = "USER_DETAILS_FAIL"
	UserDetailsReset   ActionType = "USER_DETAILS_RESET"

	UserUpdateProfileRequest ActionType = "USER_UPDATE_PROFILE_REQUEST"
	UserUpdateProfileSuccess ActionType = "USER_UPDATE_PROFILE_SUCCESS"
	UserUpdateProfileFail    ActionType = "USER_UPDATE_PROFILE_FAIL"

	UpdateUserRoleRequest ActionType = "UPDATE_USER_ROLE_REQUEST"
	UpdateUserRoleSuccess ActionType = "UPDATE_USER_ROLE_SUCCESS"
	UpdateUserRoleFail    ActionType = "UPDATE_USER_ROLE_FAIL"

	CreateComplaintRequest ActionType = "CREATE_COMPLAINT_REQUEST"
	CreateComplaintSuccess ActionType = "CREATE_COMPLAINT_SUCCESS"
	CreateComplaintFail    ActionType = "CREATE_COMPLAINT_FAIL"

	GetComplaintsRequest ActionType = "GET_COMPLAINTS_REQUEST"
	GetComplaintsSuccess ActionType = "GET_COMPLAINTS_SUCCESS"
	GetComplaintsFail    ActionType = "GET_COMPLAINTS_FAIL"

	DeleteComplaintRequest ActionType = "DELETE_COMPLAINT_REQUEST"
	DeleteComplaintSuccess ActionType = "DELETE_COMPLAINT_SUCCESS"
	DeleteComplaintFail    ActionType = "DELETE_COMPLAINT_FAIL"

	GetAnnouncementsRequest ActionType = "GET_ANNOUNCEMENTS_REQUEST"
	GetAnnouncementsSuccess ActionType = "GET_ANNOUNCEMENTS_SUCCESS"
	GetAnnouncementsFail    ActionType = "GET_ANNOUNCEMENTS_FAIL"
)

// Event is a dispatched action. Payload holds the response body on SUCCESS
// and the error message (a string) on FAIL.
type Event struct {
	Type    ActionType
	Payload any
}
