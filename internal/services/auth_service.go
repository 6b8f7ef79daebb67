package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/eventreg/internal/config"
	"github.com/localnerve/eventreg/internal/utils"
)

// Roles known to the Authorizer instance
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the authenticated caller, passed explicitly into every operation
type Identity struct {
	ID                string   `json:"id"`
	Email             string   `json:"email"`
	GivenName         string   `json:"given_name,omitempty"`
	FamilyName        string   `json:"family_name,omitempty"`
	Nickname          string   `json:"nickname,omitempty"`
	PreferredUsername string   `json:"preferred_username,omitempty"`
	Roles             []string `json:"roles,omitempty"`
}

// DisplayName picks the best available name for a new profile
func (i *Identity) DisplayName() string {
	if full := strings.TrimSpace(i.GivenName + " " + i.FamilyName); full != "" {
		return full
	}
	if i.Nickname != "" {
		return i.Nickname
	}
	return i.PreferredUsername
}

// Claims is the identity snapshot stored with a new profile
func (i *Identity) Claims() map[string]any {
	claims := map[string]any{"id": i.ID, "email": i.Email}
	for k, v := range map[string]string{
		"given_name":         i.GivenName,
		"family_name":        i.FamilyName,
		"nickname":           i.Nickname,
		"preferred_username": i.PreferredUsername,
	} {
		if v != "" {
			claims[k] = v
		}
	}
	if len(i.Roles) > 0 {
		claims["roles"] = i.Roles
	}
	return claims
}

// SignUpInput carries the credentials for a new account
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// IdentityProvider is the identity boundary: session checks and account creation
type IdentityProvider interface {
	ValidateSession(ctx context.Context, cookie string, roles []string) (*Identity, error)
	SignUp(ctx context.Context, in SignUpInput) (*Identity, error)
}

// AuthorizerProvider implements IdentityProvider with an Authorizer instance
type AuthorizerProvider struct {
	cfg *config.Config

	mu     sync.Mutex
	client *authorizer.AuthorizerClient
}

// NewAuthorizerProvider returns a provider that connects on first use
func NewAuthorizerProvider(cfg *config.Config) *AuthorizerProvider {
	return &AuthorizerProvider{cfg: cfg}
}

// Initialized reports whether the Authorizer client is ready
func (p *AuthorizerProvider) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client != nil
}

// init connects once; a failed attempt is retried by the next request
func (p *AuthorizerProvider) init(ctx context.Context) (*authorizer.AuthorizerClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	// Ping the Authorizer service first
	if err := utils.PingAuthorizer(ctx, p.cfg.AuthzURL); err != nil {
		return nil, fmt.Errorf("authorizer ping failed: %w", err)
	}

	log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
		p.cfg.AuthzURL, p.cfg.AuthzClientID, p.cfg.AuthzRedirectURL)

	client, err := authorizer.NewAuthorizerClient(p.cfg.AuthzClientID, p.cfg.AuthzURL, p.cfg.AuthzRedirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	p.client = client
	return client, nil
}

// ValidateSession validates a session cookie for the given roles
func (p *AuthorizerProvider) ValidateSession(ctx context.Context, cookie string, roles []string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	client, err := p.init(ctx)
	if err != nil {
		return nil, err
	}

	// Convert roles to []*string
	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	return toIdentity(res.User)
}

// SignUp creates an account with the default user role
func (p *AuthorizerProvider) SignUp(ctx context.Context, in SignUpInput) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	client, err := p.init(ctx)
	if err != nil {
		return nil, err
	}

	res, err := client.SignUp(signUpRequest(in))
	if err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("sign up returned no response")
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("invalid sign up response: %w", err)
	}
	var body struct {
		User *Identity `json:"user"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("invalid sign up response: %w", err)
	}
	// With email verification on the account exists but no user is returned yet
	if body.User == nil || body.User.ID == "" {
		return nil, nil
	}
	return body.User, nil
}

// signUpRequest carries the registered name as the given name, so a profile
// created after email verification still gets it.
func signUpRequest(in SignUpInput) *authorizer.SignUpInput {
	email := in.Email
	req := &authorizer.SignUpInput{
		Email:           &email,
		Password:        in.Password,
		ConfirmPassword: in.Password,
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		req.GivenName = &name
	}
	return req
}

// toIdentity decodes an Authorizer user through its JSON form, which is
// the stable part of the SDK surface.
func toIdentity(user any) (*Identity, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("invalid user data format: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("invalid user data format: %w", err)
	}
	if identity.ID == "" {
		return nil, fmt.Errorf("user ID not found")
	}
	return &identity, nil
}
