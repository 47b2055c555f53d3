package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/societyhub/society-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func errInvalidPayload() error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
}

// Register creates a resident account and returns it with a session token.
//
// @Summary      Register a new member
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      429   {object}  ErrorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.users.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: int64(req.PhoneNumber),
		Address:     req.Address,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{userResponse: toUserResponse(res.User), Token: res.Token})
}

// Login authenticates a member by email and password.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      429   {object}  ErrorResponse
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}

	res, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{userResponse: toUserResponse(res.User), Token: res.Token})
}

// Logout revokes the token used for this request.
//
// @Summary      Logout
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  ErrorResponse
// @Router       /api/users/logout [post]
func (h *UserHandler) Logout(c echo.Context) error {
	id, exp := tokenFrom(c)
	if err := h.users.Logout(c.Request().Context(), id, exp); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetProfile returns a member profile with its role record resolved.
//
// @Summary      Get a member profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ListUsers returns members, optionally filtered by role.
//
// @Summary      List members
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        includedRoles  query     []string  false  "Role slugs; repeat or comma-separate"  collectionFormat(multi)
// @Success      200            {array}   userResponse
// @Failure      401            {object}  ErrorResponse
// @Failure      403            {object}  ErrorResponse
// @Failure      500            {object}  ErrorResponse
// @Router       /api/users/getUsers [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	roles := c.QueryParams()["includedRoles"]

	users, err := h.users.ListUsers(c.Request().Context(), roles)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// UpdateProfile changes the caller's address, phone number or password.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/users/updateProfile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateProfileInput{Address: req.Address, Password: req.Password}
	if req.PhoneNumber != nil {
		n := int64(*req.PhoneNumber)
		in.PhoneNumber = &n
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), caller.Email, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateUserRole assigns a role to a member. Administrators only.
//
// @Summary      Change a member's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRoleRequest  true  "Target and role"
// @Success      200   {object}  roleUpdateResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/users/updateUserRole [patch]
func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req updateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	req.UserRole = strings.TrimSpace(req.UserRole)
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.UpdateUserRole(c.Request().Context(), caller, req.Email, req.UserRole)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleUpdateResponse{Email: user.Email, UserRole: user.Role})
}
