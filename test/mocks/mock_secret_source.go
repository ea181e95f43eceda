package mocks

import (
	"context"
	"fmt"
)

// MockSecretSource is an in-memory ports.SecretSource
type MockSecretSource struct {
	Secrets map[string]string
	Err     error
	Paths   []string
}

// NewMockSecretSource creates a source serving the given secrets
func NewMockSecretSource(secrets map[string]string) *MockSecretSource {
	return &MockSecretSource{Secrets: secrets}
}

// GetSecret returns the secret stored under path
func (m *MockSecretSource) GetSecret(ctx context.Context, path string) (string, error) {
	m.Paths = append(m.Paths, path)
	if m.Err != nil {
		return "", m.Err
	}
	v, ok := m.Secrets[path]
	if !ok {
		return "", fmt.Errorf("secret not found: %s", path)
	}
	return v, nil
}
