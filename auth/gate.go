// Package auth is the console's login gate. It only decides whether the
// local session is open; it is not a security boundary. The backend verifies
// every mutating request on its own and nothing server-side trusts the token
// issued here.
package auth

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/EshRan/pooja-admin-ui/utils"
)

const sessionTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid username or password")

// Credentials hold the configured admin login; the password is stored as a
// SHA-512 hex digest, never in the clear.
type Credentials struct {
	Username     string
	PasswordHash string
}

type Gate struct {
	store  TokenStore
	creds  Credentials
	secret []byte
}

func NewGate(store TokenStore, creds Credentials, secret []byte) *Gate {
	return &Gate{store: store, creds: creds, secret: secret}
}

// Login compares the supplied credentials against configuration and, on a
// match, signs a session token and persists it.
func (g *Gate) Login(username, password string) error {
	if username != g.creds.Username || utils.HashString(password) != g.creds.PasswordHash {
		return ErrInvalidCredentials
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user"] = username
	claims["role"] = "admin"
	claims["exp"] = time.Now().Add(sessionTTL).Unix()
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return errors.Wrap(err, "failed to sign session token")
	}
	return g.store.Save(signed)
}

func (g *Gate) Logout() error {
	return g.store.Clear()
}

// Token implements client.TokenProvider. An empty result means requests go
// out without an Authorization header.
func (g *Gate) Token() string {
	token, err := g.store.Load()
	if err != nil {
		logrus.Errorf("failed to load session token: %+v", err)
		return ""
	}
	return token
}

// Authenticated reports whether a stored, unexpired session token exists.
func (g *Gate) Authenticated() bool {
	raw := g.Token()
	if raw == "" {
		return false
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != "HS256" {
			return nil, fmt.Errorf("unexpected jwt signing method=%v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return false
	}
	return token.Valid
}
