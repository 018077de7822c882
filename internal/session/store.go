// Package session keeps the portal's client-held UI state: the cached
// identity, the provider-profile-completed flag, and the pending selected
// plan. The state travels in a signed cookie so it survives navigation and
// the login round trip. It is a convenience cache only; the backend session
// cookie remains the authoritative credential.
package session

import (
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/gharseva/provider-portal/internal/models"
)

const stateCookie = "gharseva_state"

// State is everything the portal persists on the client between requests.
type State struct {
	User *models.User `json:"user,omitempty"`

	// ProfileCompleted mirrors the backend's flag for synchronous gating
	// decisions. It may run optimistically ahead of the backend right after a
	// successful profile submit; the next authoritative fetch wins.
	ProfileCompleted bool `json:"profileCompleted,omitempty"`

	// SelectedPlan is the pending purchase intent. At most one is held;
	// selecting another plan overwrites it.
	SelectedPlan *models.SelectedPlan `json:"selectedPlan,omitempty"`
}

// LoggedIn reports whether a cached identity is present. It says nothing
// about whether the backend session cookie is still valid.
func (s State) LoggedIn() bool { return s.User != nil }

// Store encodes and decodes the state cookie.
type Store struct {
	codec  *securecookie.SecureCookie
	secure bool
}

// NewStore builds a Store. hashKey signs the cookie and is required;
// blockKey additionally encrypts it and may be empty.
func NewStore(hashKey, blockKey []byte, secure bool) *Store {
	var block []byte
	if len(blockKey) > 0 {
		block = blockKey
	}
	codec := securecookie.New(hashKey, block)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &Store{codec: codec, secure: secure}
}

// Load reads the state cookie from the request. An absent, expired, or
// garbled cookie yields the empty state; a visitor with no cookie and a
// visitor with a tampered one look the same.
func (s *Store) Load(r *http.Request) State {
	ck, err := r.Cookie(stateCookie)
	if err != nil {
		return State{}
	}
	var st State
	if err := s.codec.Decode(stateCookie, ck.Value, &st); err != nil {
		return State{}
	}
	return st
}

// Save writes the state back to the client.
func (s *Store) Save(w http.ResponseWriter, st State) error {
	encoded, err := s.codec.Encode(stateCookie, st)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear drops all persisted UI state. Used on logout and when the session
// probe shows the cached identity is stale.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
