// Package auth defines the provider abstraction behind login. Handlers talk
// to AuthService only; swapping BasicAuth for an IdP later means writing a
// new Provider, not touching the HTTP layer.
package auth

import "context"

// Credentials is a username/password pair as submitted at login.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements is the password policy a provider enforces.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// Provider authenticates credentials and maps users onto roles.
type Provider interface {
	// ValidateCredentials returns nil when the pair is valid.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyUser resolves the role for an authenticated username.
	IdentifyUser(ctx context.Context, username string) (string, error)

	// GetRequirements exposes the provider's password policy.
	GetRequirements() CredentialRequirements

	// Name identifies the provider in logs.
	Name() string
}

// AuthService fronts a Provider for the token endpoint.
type AuthService struct {
	provider Provider
}

func NewAuthService(provider Provider) *AuthService {
	return &AuthService{provider: provider}
}

// ValidateCredentials delegates to the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// IdentifyUser resolves the role claim to embed in an issued token.
func (s *AuthService) IdentifyUser(ctx context.Context, username string) (string, error) {
	return s.provider.IdentifyUser(ctx, username)
}

// ProviderName reports which provider backs the service.
func (s *AuthService) ProviderName() string {
	return s.provider.Name()
}
