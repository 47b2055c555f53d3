package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

type ComplaintHandler struct {
	complaints ports.ComplaintService
}

func NewComplaintHandler(complaints ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

type createComplaintRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"required,max=2000"`
	Category    string `json:"category"`
}

type assignComplaintRequest struct {
	WorkerEmail string `json:"workerEmail" validate:"required,email"`
}

type updateComplaintStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress resolved rejected"`
}

// Create raises a complaint for the caller.
//
// @Summary      Raise a complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createComplaintRequest  true  "Complaint"
// @Success      201   {object}  domain.Complaint
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /api/complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.complaints.Create(c.Request().Context(), caller, ports.CreateComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, complaint)
}

// List returns the complaints visible to the caller.
//
// @Summary      List complaints
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {array}   domain.Complaint
// @Failure      401     {object}  ErrorResponse
// @Router       /api/complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	complaints, err := h.complaints.List(c.Request().Context(), caller, c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaints)
}

// Get returns a single complaint.
//
// @Summary      Get a complaint
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Complaint ID"
// @Success      200  {object}  domain.Complaint
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/complaints/{id} [get]
func (h *ComplaintHandler) Get(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	complaint, err := h.complaints.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}

// Assign hands a complaint to a worker. Administrators only.
//
// @Summary      Assign a complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Complaint ID"
// @Param        body  body      assignComplaintRequest  true  "Worker"
// @Success      200   {object}  domain.Complaint
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/complaints/{id}/assign [patch]
func (h *ComplaintHandler) Assign(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req assignComplaintRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.complaints.Assign(c.Request().Context(), caller, c.Param("id"), req.WorkerEmail)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}

// UpdateStatus moves a complaint through its lifecycle.
//
// @Summary      Change complaint status
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                        true  "Complaint ID"
// @Param        body  body      updateComplaintStatusRequest  true  "New status"
// @Success      200   {object}  domain.Complaint
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req updateComplaintStatusRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.complaints.UpdateStatus(c.Request().Context(), caller, c.Param("id"), domain.ComplaintStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, complaint)
}

// Delete removes a complaint.
//
// @Summary      Delete a complaint
// @Tags         complaints
// @Security     BearerAuth
// @Param        id   path  string  true  "Complaint ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/complaints/{id} [delete]
func (h *ComplaintHandler) Delete(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	if err := h.complaints.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
