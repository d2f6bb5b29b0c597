package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie written on every response.
const CookieName = "stockroom_session"

// Flash is a one-shot notification queued on the session and consumed on the
// next page render.
type Flash struct {
	Category string
	Message  string
}

// Session is the per-request view of the signed session cookie: the
// authenticated username (empty when not logged in) plus pending flashes.
// Handlers mutate it freely; the middleware writes it back after the handler
// chain returns.
type Session struct {
	User    string
	flashes []Flash
}

// Flash queues a one-shot message.
func (s *Session) Flash(category, message string) {
	s.flashes = append(s.flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns the pending flashes and clears the queue.
func (s *Session) PopFlashes() []Flash {
	out := s.flashes
	s.flashes = nil
	return out
}

// ClearUser logs the session out. Safe to call when no user is set.
func (s *Session) ClearUser() {
	s.User = ""
}

// Codec signs sessions into compact HS256 tokens and verifies them back.
// Decoding is deliberately lenient: a missing, malformed or tampered token
// yields an empty session, never an error, so unauthenticated requests can
// always proceed.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Encode(s *Session) (string, error) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
	}
	if s.User != "" {
		claims["user"] = s.User
	}
	if len(s.flashes) > 0 {
		flashes := make([]map[string]string, 0, len(s.flashes))
		for _, f := range s.flashes {
			flashes = append(flashes, map[string]string{
				"category": f.Category,
				"message":  f.Message,
			})
		}
		claims["flashes"] = flashes
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *Codec) Decode(token string) *Session {
	s := &Session{}
	if token == "" {
		return s
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return s
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return s
	}

	if user, ok := claims["user"].(string); ok {
		s.User = user
	}
	if raw, ok := claims["flashes"].([]interface{}); ok {
		for _, item := range raw {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			var f Flash
			if v, ok := entry["category"].(string); ok {
				f.Category = v
			}
			if v, ok := entry["message"].(string); ok {
				f.Message = v
			}
			s.flashes = append(s.flashes, f)
		}
	}

	return s
}
