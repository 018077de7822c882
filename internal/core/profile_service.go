package core

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gharseva/provider-portal/internal/backend"
	"github.com/gharseva/provider-portal/internal/models"
)

type profileService struct {
	api    *backend.Client
	logger *zap.Logger
}

// NewProfileService creates the ProfileService backed by the marketplace API.
func NewProfileService(api *backend.Client, logger *zap.Logger) ProfileService {
	return &profileService{api: api, logger: logger}
}

func (s *profileService) Get(ctx context.Context, cookies []*http.Cookie) (*models.Provider, error) {
	return s.api.GetProfile(ctx, cookies)
}

func (s *profileService) Submit(ctx context.Context, cookies []*http.Cookie, sub backend.ProfileSubmission) (*models.Provider, error) {
	// Local preconditions come first so a rejected submission never costs a
	// network round trip.
	if sub.Aadhaar == nil || len(sub.Aadhaar.Data) == 0 {
		return nil, ErrIdentityDocumentRequired
	}
	if _, ok := models.ParseServiceCategory(sub.PrimaryService); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, sub.PrimaryService)
	}

	provider, err := s.api.UpsertProfile(ctx, cookies, sub)
	if err != nil {
		return nil, err
	}
	s.logger.Info("provider profile saved",
		zap.String("service", sub.PrimaryService),
		zap.String("area", sub.ServiceArea),
	)
	return provider, nil
}

func (s *profileService) Suggestions(category models.ServiceCategory, name string) []string {
	return category.Suggestions(name)
}

// AppendSuggestion inserts a suggestion into bio text unless the exact text
// is already present, so repeated clicks never duplicate it.
func AppendSuggestion(bio, suggestion string) string {
	if strings.Contains(bio, suggestion) {
		return bio
	}
	if trimmed := strings.TrimSpace(bio); trimmed != "" {
		return trimmed + " " + suggestion
	}
	return suggestion
}
