package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("token: invalid token")
	ErrExpiredToken = errors.New("token: token expired")
)

// Identity is the authenticated principal resolved from a verified token.
type Identity struct {
	UserID string
}

// Service issues and verifies signed, time-limited identity tokens (HS256).
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

type userPayload struct {
	ID string `json:"id"`
}

type claims struct {
	User userPayload `json:"user"`
	jwt.RegisteredClaims
}

// Issue signs a token embedding the user id under a "user" sub-object,
// matching the identity-provider payload shape { user: { id } }.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	c := claims{
		User: userPayload{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify checks signature and expiry and normalizes the payload into an
// Identity. Payloads may carry the id nested under a "user" key or at the
// top level; both shapes resolve to the same Identity so the ambiguity
// never propagates past this boundary.
func (s *Service) Verify(tokenString string) (Identity, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredToken
		}
		return Identity{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	payload := map[string]interface{}(mapClaims)
	if wrapped, ok := mapClaims["user"].(map[string]interface{}); ok {
		payload = wrapped
	}

	id, ok := payload["id"].(string)
	if !ok || id == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: id}, nil
}
