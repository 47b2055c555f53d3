package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateComplaint raises a complaint on behalf of the caller.
func (c *Client) CreateComplaint(ctx context.Context, token string, req CreateComplaintRequest) (*Complaint, error) {
	return call[Complaint](ctx, c, http.MethodPost, "/api/complaints", token, req, http.StatusCreated)
}

// ListComplaints returns the complaints visible to the caller, optionally
// filtered by status.
func (c *Client) ListComplaints(ctx context.Context, token, status string) ([]Complaint, error) {
	path := "/api/complaints"
	if status != "" {
		path += "?" + url.Values{"status": {status}}.Encode()
	}
	items, err := call[[]Complaint](ctx, c, http.MethodGet, path, token, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// GetComplaint fetches one complaint.
func (c *Client) GetComplaint(ctx context.Context, token, id string) (*Complaint, error) {
	return call[Complaint](ctx, c, http.MethodGet, "/api/complaints/"+url.PathEscape(id), token, nil, http.StatusOK)
}

// AssignComplaint hands a complaint to a worker. Admin only.
func (c *Client) AssignComplaint(ctx context.Context, token, id, workerEmail string) (*Complaint, error) {
	body := map[string]string{"workerEmail": workerEmail}
	return call[Complaint](ctx, c, http.MethodPatch, "/api/complaints/"+url.PathEscape(id)+"/assign", token, body, http.StatusOK)
}

// UpdateComplaintStatus moves a complaint to status.
func (c *Client) UpdateComplaintStatus(ctx context.Context, token, id, status string) (*Complaint, error) {
	body := map[string]string{"status": status}
	return call[Complaint](ctx, c, http.MethodPatch, "/api/complaints/"+url.PathEscape(id)+"/status", token, body, http.StatusOK)
}

// DeleteComplaint removes a complaint.
func (c *Client) DeleteComplaint(ctx context.Context, token, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/complaints/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListAnnouncements returns up to limit announcements, newest first. A zero
// limit uses the server default.
func (c *Client) ListAnnouncements(ctx context.Context, token string, limit int) ([]Announcement, error) {
	path := "/api/announcements"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	items, err := call[[]Announcement](ctx, c, http.MethodGet, path, token, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return *items, nil
}

// CreateAnnouncement publishes a notice. Admin only.
func (c *Client) CreateAnnouncement(ctx context.Context, token, title, body string) (*Announcement, error) {
	req := map[string]string{"title": title, "body": body}
	return call[Announcement](ctx, c, http.MethodPost, "/api/announcements", token, req, http.StatusCreated)
}

// DeleteAnnouncement removes a notice. Admin only.
func (c *Client) DeleteAnnouncement(ctx context.Context, token, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/announcements/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
