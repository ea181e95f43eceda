package secrets

import (
	"context"
	"fmt"
	"time"

	vault "github.com/hashicorp/vault/api"
	"github.com/kevin07696/vipps-client/pkg/ports"
)

// VaultConfig configures the HashiCorp Vault KV source
type VaultConfig struct {
	Address   string
	Token     string
	MountPath string // default "secret"
	KVVersion string // "v1" or "v2", default "v2"
	CacheTTL  time.Duration
}

type vaultSource struct {
	client *vault.Client
	config VaultConfig
	logger ports.Logger
	cache  *secretCache
}

// NewVaultSource creates a source reading from a Vault KV engine with token auth
func NewVaultSource(cfg VaultConfig, logger ports.Logger) (ports.SecretSource, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required for token auth")
	}
	if cfg.MountPath == "" {
		cfg.MountPath = "secret"
	}
	if cfg.KVVersion == "" {
		cfg.KVVersion = "v2"
	}

	vaultConfig := vault.DefaultConfig()
	vaultConfig.Address = cfg.Address

	client, err := vault.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vault client: %w", err)
	}
	client.SetToken(cfg.Token)

	logger.Info("Vault source initialized",
		ports.String("address", cfg.Address),
		ports.String("mount_path", cfg.MountPath),
		ports.String("kv_version", cfg.KVVersion),
	)

	return &vaultSource{
		client: client,
		config: cfg,
		logger: logger,
		cache:  newSecretCache(cfg.CacheTTL),
	}, nil
}

// GetSecret reads path below the mount. The value is taken from the "value"
// key, or the first string field when there is none.
func (s *vaultSource) GetSecret(ctx context.Context, path string) (string, error) {
	if cached, ok := s.cache.get(path); ok {
		return cached, nil
	}

	fullPath := fmt.Sprintf("%s/%s", s.config.MountPath, path)
	if s.config.KVVersion == "v2" {
		fullPath = fmt.Sprintf("%s/data/%s", s.config.MountPath, path)
	}

	secret, err := s.client.Logical().ReadWithContext(ctx, fullPath)
	if err != nil {
		s.logger.Error("Failed to retrieve secret from Vault",
			ports.String("path", path),
			ports.Err(err),
		)
		return "", fmt.Errorf("failed to read secret from Vault: %w", err)
	}
	if secret == nil {
		return "", fmt.Errorf("secret not found: %s", path)
	}

	data := secret.Data
	if s.config.KVVersion == "v2" {
		nested, ok := secret.Data["data"].(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("invalid secret format from Vault")
		}
		data = nested
	}

	value, _ := data["value"].(string)
	if value == "" {
		for _, v := range data {
			if str, ok := v.(string); ok && str != "" {
				value = str
				break
			}
		}
	}
	if value == "" {
		return "", fmt.Errorf("secret value is empty or not found")
	}

	s.cache.set(path, value)
	return value, nil
}
