package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markethub/catalog-server/internal/model"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewJWT_SecretTooShort(t *testing.T) {
	_, err := NewJWT("short", time.Hour)
	require.Error(t, err)
}

func TestNewJWT_NonPositiveTTL(t *testing.T) {
	_, err := NewJWT(testSecret, 0)
	require.Error(t, err)
}

func TestJWT_Roundtrip(t *testing.T) {
	j, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)

	user := model.User{ID: uuid.New(), Email: "a@b.c", Role: model.RoleUser}

	tokenString, err := j.Issue(user)
	require.NoError(t, err)

	claims, err := j.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "USER", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_Parse_Expired(t *testing.T) {
	j := &JWT{secretKey: []byte(testSecret), ttl: -time.Minute}

	tokenString, err := j.Issue(model.User{ID: uuid.New(), Email: "a@b.c", Role: model.RoleUser})
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_Parse_WrongSecret(t *testing.T) {
	j, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewJWT("ffffffffffffffffffffffffffffffff", time.Hour)
	require.NoError(t, err)

	tokenString, err := other.Issue(model.User{ID: uuid.New(), Role: model.RoleUser})
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_Parse_WrongSigningMethod(t *testing.T) {
	j, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_Parse_MissingExpiry(t *testing.T) {
	j, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.New().String(),
	})
	tokenString, err := noExpiry.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_Parse_BadSubject(t *testing.T) {
	j, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := badSubject.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_Parse_Garbage(t *testing.T) {
	j, err := NewJWT(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = j.Parse("not.a.token")
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}
