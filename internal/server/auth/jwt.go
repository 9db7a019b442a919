// Package auth owns credential hashing and bearer-token issuance and
// verification. It holds no state of its own; the signing secret is
// passed in by whoever constructed the services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
)

// NoExpiry issues a token without an exp claim. A caller passing it
// opts into a credential that never stops verifying, so use it only
// where an indefinite lifetime is actually wanted (the sign-in path
// does, the sign-up path does not).
const NoExpiry time.Duration = 0

// Claims carries the identity facts encoded inside a token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// GenerateToken signs an HS256 token with the user's id and role.
// A non-zero ttl sets the exp claim; NoExpiry omits it.
func GenerateToken(userID, role string, secretKey []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	}
	if ttl != NoExpiry {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ParseToken verifies the signature and, when present, the expiry.
// Failures map onto three sentinels: common.ErrTokenExpired for a
// well-signed but stale token, common.ErrTokenMalformed for input that
// is not a token at all, common.ErrInvalidToken for everything else
// (wrong signature included).
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
