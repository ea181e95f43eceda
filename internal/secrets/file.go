package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevin07696/vipps-client/pkg/ports"
)

// fileSource reads secrets from files below a base directory.
// For development only; use AWS Secrets Manager or Vault in production.
type fileSource struct {
	basePath string
	logger   ports.Logger
}

// NewFileSource creates a filesystem-backed secret source
func NewFileSource(basePath string, logger ports.Logger) ports.SecretSource {
	return &fileSource{basePath: basePath, logger: logger}
}

// GetSecret returns the file's content. Files holding a JSON object with a
// "value" key yield that value; anything else is returned as trimmed text.
func (s *fileSource) GetSecret(ctx context.Context, secretPath string) (string, error) {
	filePath := filepath.Join(s.basePath, filepath.Clean("/"+secretPath))

	s.logger.Debug("Reading secret from filesystem", ports.String("path", secretPath))

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("secret not found: %s", secretPath)
		}
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	var doc struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Value != "" {
		return doc.Value, nil
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("secret is empty: %s", secretPath)
	}
	return value, nil
}
