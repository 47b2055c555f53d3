package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/societyhub/society-api/internal/core/ports"
)

type AnnouncementHandler struct {
	announcements ports.AnnouncementService
}

func NewAnnouncementHandler(announcements ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

type createAnnouncementRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"required,max=5000"`
}

// Create publishes an announcement. Administrators only.
//
// @Summary      Publish an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnnouncementRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /api/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req createAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := h.announcements.Create(c.Request().Context(), caller, req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// List returns recent announcements, newest first.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum items (default 20, max 100)"
// @Success      200    {array}   domain.Announcement
// @Failure      400    {object}  ErrorResponse
// @Router       /api/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	items, err := h.announcements.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Delete removes an announcement. Administrators only.
//
// @Summary      Delete an announcement
// @Tags         announcements
// @Security     BearerAuth
// @Param        id   path  string  true  "Announcement ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	if err := h.announcements.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
