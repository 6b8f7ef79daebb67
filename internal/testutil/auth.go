package testutil

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"slices"
	"sync"

	"github.com/localnerve/eventreg/internal/services"
)

func randInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// GeneratePassword generates a 10 character password with a capital, a digit and a special char
func GeneratePassword() string {
	const (
		lower   = "abcdefghijklmnopqrstuvwxyz"
		upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		special = "!@#$%^&*"
		numbers = "0123456789"
		all     = lower + upper + special + numbers
	)

	password := make([]byte, 10)
	password[0] = upper[randInt(len(upper))]
	password[1] = special[randInt(len(special))]
	password[2] = numbers[randInt(len(numbers))]

	for i := 3; i < 10; i++ {
		password[i] = all[randInt(len(all))]
	}

	for i := range password {
		j := randInt(len(password))
		password[i], password[j] = password[j], password[i]
	}

	return string(password)
}

// FakeIdentityProvider maps session cookies to identities
type FakeIdentityProvider struct {
	mu       sync.Mutex
	sessions map[string]*services.Identity
	accounts map[string]*services.Identity

	// SignUpErr fails every SignUp when set
	SignUpErr error
	// PendingVerification makes SignUp return no identity
	PendingVerification bool
	// SignUps records every SignUp call
	SignUps []services.SignUpInput
}

// NewFakeIdentityProvider returns an empty provider
func NewFakeIdentityProvider() *FakeIdentityProvider {
	return &FakeIdentityProvider{
		sessions: make(map[string]*services.Identity),
		accounts: make(map[string]*services.Identity),
	}
}

// AddSession registers a cookie for identity and returns the cookie value
func (p *FakeIdentityProvider) AddSession(identity *services.Identity) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	cookie := "session-" + identity.ID
	p.sessions[cookie] = identity
	return cookie
}

// ValidateSession accepts a known cookie whose identity has one of roles
func (p *FakeIdentityProvider) ValidateSession(ctx context.Context, cookie string, roles []string) (*services.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	identity, ok := p.sessions[cookie]
	if !ok {
		return nil, errors.New("unknown session")
	}
	for _, role := range roles {
		if slices.Contains(identity.Roles, role) {
			return identity, nil
		}
	}
	return nil, errors.New("role not allowed")
}

// SignUp records the call and creates an account whose given name is the registered name
func (p *FakeIdentityProvider) SignUp(ctx context.Context, in services.SignUpInput) (*services.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.SignUps = append(p.SignUps, in)
	if p.SignUpErr != nil {
		return nil, p.SignUpErr
	}

	account := &services.Identity{
		ID:        NewUserID(),
		Email:     in.Email,
		GivenName: in.Name,
		Roles:     []string{services.RoleUser},
	}
	p.accounts[in.Email] = account
	if p.PendingVerification {
		return nil, nil
	}
	return account, nil
}

// Account returns the identity created by SignUp for email, as seen after verification
func (p *FakeIdentityProvider) Account(email string) *services.Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.accounts[email]
}

// NewParticipant returns an identity with the user role
func NewParticipant(givenName, email string) *services.Identity {
	return &services.Identity{
		ID:        NewUserID(),
		Email:     email,
		GivenName: givenName,
		Roles:     []string{services.RoleUser},
	}
}

// NewAdmin returns an identity with the admin and user roles
func NewAdmin(email string) *services.Identity {
	return &services.Identity{
		ID:    NewUserID(),
		Email: email,
		Roles: []string{services.RoleUser, services.RoleAdmin},
	}
}
