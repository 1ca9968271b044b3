package auth

import (
	"net/http"
	"strings"

	sharedauth "ats-backend/internal/shared/auth"
)

// User is a resolved authenticated identity.
type User struct {
	ID    string
	Email string
	Name  string
}

// Resolver resolves the authenticated user for a request, consulted once per
// request. A nil user with a nil error means no identity was presented.
type Resolver interface {
	CurrentUser(r *http.Request) (*User, error)
}

// JWTResolver resolves identity from a Bearer session token.
type JWTResolver struct{}

// CurrentUser returns the user carried by the Authorization header, or nil
// when the header is absent or the token does not verify.
func (JWTResolver) CurrentUser(r *http.Request) (*User, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, nil
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if token == "" {
		return nil, nil
	}

	claims, err := sharedauth.VerifyJWT(token)
	if err != nil {
		return nil, nil
	}
	return &User{ID: claims.Sub, Email: claims.Email, Name: claims.Name}, nil
}

var _ Resolver = JWTResolver{}
