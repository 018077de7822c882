package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/core"
	"github.com/gharseva/provider-portal/internal/middleware"
	"github.com/gharseva/provider-portal/internal/session"
)

const (
	aadhaarRequiredMsg = "Please upload your Aadhaar card for verification."
	profileFallbackMsg = "Failed to save profile. Please check file sizes."
	profileSavedMsg    = "Profile updated successfully!"

	// Matches the upload limit advertised on the form.
	maxUploadBytes = 5 << 20
)

// ProfileHandler serves the provider profile form submission.
type ProfileHandler struct {
	profiles core.ProfileService
	store    *session.Store
	logger   *zap.Logger
}

// NewProfileHandler creates the ProfileHandler.
func NewProfileHandler(profiles core.ProfileService, store *session.Store, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, store: store, logger: logger}
}

// Submit handles POST /profile. The browser sends the form as multipart; the
// portal repackages fields and files into the backend's multipart upsert.
// The identity document precondition is enforced before any backend call.
func (h *ProfileHandler) Submit(c *gin.Context) {
	sub := backend.ProfileSubmission{
		Name:           c.PostForm("name"),
		Phone:          c.PostForm("phone"),
		Email:          c.PostForm("email"),
		PrimaryService: c.PostForm("primaryService"),
		ServiceArea:    c.PostForm("serviceArea"),
		Description:    c.PostForm("description"),
	}

	photo, err := readUpload(c, "profilePhoto")
	if err != nil {
		h.fail(c, fmt.Sprintf("Could not read profile photo: %v", err))
		return
	}
	sub.ProfilePhoto = photo

	aadhaar, err := readUpload(c, "aadhaar")
	if err != nil {
		h.fail(c, fmt.Sprintf("Could not read identity document: %v", err))
		return
	}
	sub.Aadhaar = aadhaar

	if _, err := h.profiles.Submit(c.Request.Context(), c.Request.Cookies(), sub); err != nil {
		switch {
		case errors.Is(err, core.ErrIdentityDocumentRequired):
			h.fail(c, aadhaarRequiredMsg)
		case errors.Is(err, core.ErrUnknownCategory):
			h.fail(c, "Please choose a valid service category.")
		default:
			h.logger.Warn("profile submit failed", zap.Error(err))
			h.fail(c, backend.Message(err, profileFallbackMsg))
		}
		return
	}

	// Optimistically mark the profile complete; the next dashboard fetch
	// reconciles against the backend.
	st := middleware.State(c)
	st.ProfileCompleted = true
	middleware.SetState(c, h.store, st)

	h.store.SetFlash(c.Writer, session.Flash{Kind: "success", Message: profileSavedMsg})
	c.Redirect(http.StatusFound, "/dashboard?tab=profile")
}

func (h *ProfileHandler) fail(c *gin.Context, msg string) {
	h.store.SetFlash(c.Writer, session.Flash{Kind: "error", Message: msg})
	// Reopen the profile modal with the form still populated client-side.
	c.Redirect(http.StatusFound, "/dashboard?tab=profile&profile=1")
}

// readUpload pulls one optional file field out of the multipart form. An
// absent field is nil, not an error; callers and the service layer decide
// which files are mandatory.
func readUpload(c *gin.Context, field string) (*backend.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Size > maxUploadBytes {
		return nil, fmt.Errorf("file %q exceeds the 5MB limit", fh.Filename)
	}
	return loadUpload(fh)
}

func loadUpload(fh *multipart.FileHeader) (*backend.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &backend.Upload{Filename: fh.Filename, Data: data}, nil
}
