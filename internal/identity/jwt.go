package identity

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("identity: missing token")
	ErrInvalidToken = errors.New("identity: invalid token")
)

// Claims claims токена auth-сервиса
type Claims struct {
	CustomerID int64    `json:"customerId"`
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Roles      []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Validator проверяет HS256 токены
type Validator struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewValidator(secret, issuer string) *Validator {
	return &Validator{
		secret: []byte(strings.TrimSpace(secret)),
		issuer: issuer,
		now:    time.Now,
	}
}

// Validate разбирает токен и возвращает identity клиента
func (v *Validator) Validate(token string) (*Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: secret is not configured", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	customerID := claims.CustomerID
	if customerID == 0 && claims.Subject != "" {
		// старые токены хранят id клиента в sub
		if id, err := strconv.ParseInt(claims.Subject, 10, 64); err == nil {
			customerID = id
		}
	}
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customer id is missing", ErrInvalidToken)
	}

	return &Identity{
		CustomerID: customerID,
		UserID:     claims.Subject,
		Name:       claims.Name,
		Email:      claims.Email,
		Roles:      claims.Roles,
		Token:      token,
	}, nil
}

// ExtractBearerToken токен из заголовка Authorization
func ExtractBearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
