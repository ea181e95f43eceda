package ports

import "context"

// SecretSource resolves a credential by path from a secret store.
// Path format depends on the backend:
//   - file:  relative to the configured base directory
//   - AWS:   secret name or full ARN
//   - Vault: path below the KV mount, e.g. "vipps/client-secret"
type SecretSource interface {
	GetSecret(ctx context.Context, path string) (string, error)
}
