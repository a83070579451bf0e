package jwt

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/likelion-sku/lionauth/accounts"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Creator mints the signed session credential that is set as the
// access_token cookie after a successful login.
type Creator struct {
	secret []byte
	expiry time.Duration
}

// NewCreator creates a new session token creator.
func NewCreator(secret []byte, expiry time.Duration) *Creator {
	return &Creator{
		secret: secret,
		expiry: expiry,
	}
}

// Mint creates a signed session token for the account. The token carries
// exactly the claims downstream handlers need and nothing else; there is no
// server-side session record to consult afterwards.
func (c *Creator) Mint(account *accounts.Account) (string, error) {
	now := NowTimeFunc()

	claims := jwtlib.MapClaims{
		"sub":   account.Email,
		"name":  account.Name,
		"track": string(account.Track),
		"role":  string(account.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(c.expiry).Unix(),
		"jti":   uuid.New().String(),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
