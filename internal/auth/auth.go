// Package auth is the boundary to the external identity provider. The core
// only consumes the resulting actor identity and treats it as opaque;
// sign-in flows and token issuance live outside this service.
package auth

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidToken is returned when a presented token matches no actor
var ErrInvalidToken = errors.New("invalid or expired token")

// Actor is an authenticated identity as reported by the provider
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Verifier resolves a bearer token to an actor
type Verifier interface {
	Verify(ctx context.Context, token string) (*Actor, error)
}

// StaticVerifier verifies tokens against a fixed token->actor table loaded
// from configuration. It stands in for a real identity provider in
// deployments without one; the rest of the system only sees the Verifier
// interface.
type StaticVerifier struct {
	actors map[string]Actor
}

// NewStaticVerifier builds a verifier from "token:email" pairs
func NewStaticVerifier(pairs []string) *StaticVerifier {
	actors := make(map[string]Actor, len(pairs))
	for _, pair := range pairs {
		token, email, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || token == "" {
			continue
		}
		actors[token] = Actor{ID: token, Email: email}
	}
	return &StaticVerifier{actors: actors}
}

// Verify implements Verifier
func (v *StaticVerifier) Verify(_ context.Context, token string) (*Actor, error) {
	actor, ok := v.actors[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return &actor, nil
}
