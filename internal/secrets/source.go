package secrets

import (
	"context"
	"fmt"
	"time"

	"github.com/kevin07696/vipps-client/internal/config"
	"github.com/kevin07696/vipps-client/pkg/ports"
)

// Backends
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendAWS   = "aws"
	BackendVault = "vault"
)

const defaultCacheTTL = 5 * time.Minute

// NewSource builds the configured secret source. The "none" backend returns
// a nil source.
func NewSource(ctx context.Context, cfg config.SecretsConfig, logger ports.Logger) (ports.SecretSource, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return nil, nil
	case BackendFile:
		return NewFileSource(cfg.Dir, logger), nil
	case BackendAWS:
		return NewAWSSource(ctx, AWSConfig{
			Region:   cfg.AWSRegion,
			Profile:  cfg.AWSProfile,
			Endpoint: cfg.AWSEndpoint,
			CacheTTL: defaultCacheTTL,
		}, logger)
	case BackendVault:
		return NewVaultSource(VaultConfig{
			Address:   cfg.VaultAddress,
			Token:     cfg.VaultToken,
			MountPath: cfg.VaultMountPath,
			KVVersion: cfg.VaultKVVersion,
			CacheTTL:  defaultCacheTTL,
		}, logger)
	default:
		return nil, fmt.Errorf("unsupported secret backend: %s", cfg.Backend)
	}
}

// ResolveCredentials fills the client secret and subscription key from src
// when they are not already set and a path is configured for them.
func ResolveCredentials(ctx context.Context, src ports.SecretSource, cfg *config.Config) error {
	if src == nil {
		return nil
	}

	targets := []struct {
		path  string
		value *string
	}{
		{cfg.Secrets.ClientSecretPath, &cfg.Vipps.ClientSecret},
		{cfg.Secrets.SubscriptionKeyPath, &cfg.Vipps.SubscriptionKey},
	}

	for _, target := range targets {
		if *target.value != "" || target.path == "" {
			continue
		}
		value, err := src.GetSecret(ctx, target.path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", target.path, err)
		}
		*target.value = value
	}
	return nil
}
