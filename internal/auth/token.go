package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/CSAbhinav3/IWP-CIA3/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager. The validity window defaults to
// seven days when ttl is not positive.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the signed token payload. JSON keys match the wire
// format consumed by the portal frontend: {id, type, email, companyName}.
type Claims struct {
	SubjectID   int64       `json:"id"`
	Role        domain.Role `json:"type"`
	Email       string      `json:"email,omitempty"`
	CompanyName string      `json:"companyName,omitempty"`
	jwt.RegisteredClaims
}

// ExtraClaims carries optional informational claims embedded at issue
// time. They are never consulted for authorization decisions.
type ExtraClaims struct {
	Email       string
	CompanyName string
}

// Issue builds and signs a time-bounded token for the subject.
func (tm *TokenManager) Issue(subjectID int64, role domain.Role, extra ExtraClaims) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		SubjectID:   subjectID,
		Role:        role,
		Email:       extra.Email,
		CompanyName: extra.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates signature and expiry and returns the claims. There is
// no expiry grace period.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
