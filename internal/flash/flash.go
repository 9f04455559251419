package flash

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying a pending flash message
const CookieName = "cf_flash"

// DefaultTTL bounds how long a flash survives between redirect and render
const DefaultTTL = 60 * time.Second

var (
	ErrInvalidToken = errors.New("invalid flash token")
	ErrExpiredToken = errors.New("flash token has expired")
)

// Kind classifies a flash for styling
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is a one-shot notice shown on the page after a redirect
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

type Claims struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

func NewService(secretKey, issuer string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}
}

// TTL returns how long issued tokens stay valid
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a flash message into a cookie-safe token
func (s *Service) Issue(msg Message) (string, error) {
	now := time.Now()
	claims := Claims{
		Kind: msg.Kind,
		Text: msg.Text,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign flash: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns the message it carries
func (s *Service) Parse(tokenString string) (Message, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Message{}, ErrExpiredToken
		}
		return Message{}, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return Message{Kind: claims.Kind, Text: claims.Text}, nil
	}

	return Message{}, ErrInvalidToken
}
