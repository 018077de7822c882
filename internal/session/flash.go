package session

import "net/http"

const flashCookie = "gharseva_flash"

// Flash is a one-shot notification shown as a banner on the next page
// render.
type Flash struct {
	Kind    string `json:"kind"` // "error" or "success"
	Message string `json:"message"`
}

// SetFlash queues a notification for the next render.
func (s *Store) SetFlash(w http.ResponseWriter, f Flash) {
	encoded, err := s.codec.Encode(flashCookie, f)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending notification, if any, and clears it.
func (s *Store) PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	ck, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	var f Flash
	if err := s.codec.Decode(flashCookie, ck.Value, &f); err != nil {
		return nil
	}
	return &f
}
