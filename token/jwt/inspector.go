package jwt

import (
	"fmt"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/likelion-sku/lionauth/accounts"
	errs "github.com/likelion-sku/lionauth/internal/errors"
)

// SessionClaims are the verified contents of a session credential.
type SessionClaims struct {
	Email string
	Name  string
	Track accounts.TrackType
	Role  accounts.RoleType
}

// IsAdmin returns true if the session belongs to an elevated-role account.
func (c *SessionClaims) IsAdmin() bool {
	return c.Role == accounts.RoleAdmin
}

// Inspector verifies session credentials presented on later requests.
type Inspector struct {
	secret []byte
}

// NewInspector creates a new session token inspector.
func NewInspector(secret []byte) *Inspector {
	return &Inspector{secret: secret}
}

// Verify parses and validates a session token and returns its claims.
// Expired tokens surface as ErrTokenExpired, everything else invalid as
// ErrInvalidToken.
func (i *Inspector) Verify(rawToken string) (*SessionClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, errs.ErrInvalidToken
	}

	token, err := jwtlib.ParseWithClaims(rawToken, jwtlib.MapClaims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil {
		if errs.Is(err, jwtlib.ErrTokenExpired) {
			return nil, errs.ErrTokenExpired
		}
		return nil, errs.ErrInvalidToken
	}
	if !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errs.ErrInvalidToken
	}

	email, _ := claims["sub"].(string)
	if email == "" {
		return nil, errs.ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	track, _ := claims["track"].(string)
	role, _ := claims["role"].(string)

	return &SessionClaims{
		Email: email,
		Name:  name,
		Track: accounts.TrackType(track),
		Role:  accounts.RoleType(role),
	}, nil
}
