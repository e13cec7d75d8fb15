package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/markethub/catalog-server/internal/model"
)

// Claims represents JWT claims carried by a bearer token. The subject
// is the user ID; email and role are snapshots taken at issue time and
// are re-checked against live state by the session resolver.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// minSecretLen is the minimum HMAC key length in bytes (256 bits).
const minSecretLen = 32

// JWT implements model.TokenManager backed by symmetric HMAC-SHA256.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWT creates a token manager with the provided secret key and token
// lifetime. The key must be at least 256 bits.
func NewJWT(secretKey string, ttl time.Duration) (*JWT, error) {
	if len(secretKey) < minSecretLen {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes, got %d", minSecretLen, len(secretKey))
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}

	return &JWT{secretKey: []byte(secretKey), ttl: ttl}, nil
}

var _ model.TokenManager = (*JWT)(nil)

// Issue builds a signed token with subject, email and role taken from
// the user, valid from now until now plus the configured TTL.
func (j *JWT) Issue(user model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Email: user.Email,
		Role:  string(user.Role),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse verifies the signature and expiry of a token and extracts its
// claims. Expired tokens fail with model.ErrTokenExpired; any other
// defect fails with model.ErrTokenInvalid.
func (j *JWT) Parse(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, model.ErrTokenExpired
		}
		return model.TokenClaims{}, fmt.Errorf("%w: %w", model.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("%w: bad subject: %w", model.ErrTokenInvalid, err)
	}

	out := model.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
