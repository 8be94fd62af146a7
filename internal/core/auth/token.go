// Package auth implements the credential core: password hashing, the signed
// bearer-token codec, and session resolution from a stored credential to a
// live principal.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

const defaultTokenTTL = 10 * time.Hour

// Claims is the verified content of a bearer credential.
type Claims struct {
	SubjectID int64
	Username  string
	Role      domain.Role
	ExpiresAt time.Time
}

// TokenCodec issues and parses self-contained bearer credentials. Tokens are
// HS256-signed with a process-wide secret and carry a fixed TTL; there is no
// renewal and no server-side session record.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the fixed credential lifetime.
func (c *TokenCodec) TTL() time.Duration { return c.ttl }

// Issue signs a credential for the principal, expiring TTL from now.
func (c *TokenCodec) Issue(p *domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(p.ID, 10),
		"username": p.Username,
		"role":     string(p.Role),
		"exp":      time.Now().Add(c.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Parse verifies signature and expiry. It returns domain.ErrExpiredCredential
// for a well-signed token past its exp, and domain.ErrInvalidCredential for a
// signature mismatch, malformed structure, or unsupported signing scheme.
func (c *TokenCodec) Parse(credential string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredCredential
		}
		return nil, domain.ErrInvalidCredential
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidCredential
	}

	sub, _ := claims["sub"].(string)
	subjectID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidCredential
	}

	roleStr, _ := claims["role"].(string)
	role, ok := domain.ParseRole(roleStr)
	if !ok {
		return nil, domain.ErrInvalidCredential
	}

	username, _ := claims["username"].(string)

	out := &Claims{SubjectID: subjectID, Username: username, Role: role}
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
