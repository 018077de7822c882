package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gharseva/provider-portal/internal/models"
)

// Upload is a file attached to the profile form.
type Upload struct {
	Filename string
	Data     []byte
}

// ProfileSubmission is the profile upsert payload. Field names on the wire
// match what the backend's multipart parser expects.
type ProfileSubmission struct {
	Name           string
	Phone          string
	Email          string
	PrimaryService string
	ServiceArea    string
	Description    string
	ProfilePhoto   *Upload
	Aadhaar        *Upload
}

// GetProfile fetches the provider profile. A 404 means the profile has not
// been created yet and is not an error.
func (c *Client) GetProfile(ctx context.Context, cookies []*http.Cookie) (*models.Provider, error) {
	var payload struct {
		Provider *models.Provider `json:"provider"`
	}
	if _, err := c.get(ctx, "/api/profile", cookies, &payload); err != nil {
		if StatusCode(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return payload.Provider, nil
}

// UpsertProfile creates or updates the provider profile. The payload is
// multipart because it carries binary file fields alongside the text fields.
func (c *Client) UpsertProfile(ctx context.Context, cookies []*http.Cookie, sub ProfileSubmission) (*models.Provider, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":           sub.Name,
		"phone":          sub.Phone,
		"email":          sub.Email,
		"primaryService": sub.PrimaryService,
		"serviceArea":    sub.ServiceArea,
		"description":    sub.Description,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing profile field %q: %w", name, err)
		}
	}
	for name, up := range map[string]*Upload{
		"profilePhoto": sub.ProfilePhoto,
		"aadhaar":      sub.Aadhaar,
	} {
		if up == nil {
			continue
		}
		part, err := w.CreateFormFile(name, up.Filename)
		if err != nil {
			return nil, fmt.Errorf("writing profile file %q: %w", name, err)
		}
		if _, err := part.Write(up.Data); err != nil {
			return nil, fmt.Errorf("writing profile file %q: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing profile payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/profile", &buf)
	if err != nil {
		return nil, fmt.Errorf("building profile request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling backend POST /api/profile: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading profile response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Message
		}
		return nil, apiErr
	}

	var payload struct {
		Provider *models.Provider `json:"provider"`
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("decoding profile response: %w", err)
		}
	}
	return payload.Provider, nil
}
