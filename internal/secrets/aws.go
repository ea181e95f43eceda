package secrets

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/kevin07696/vipps-client/pkg/ports"
)

// AWSConfig configures the AWS Secrets Manager source
type AWSConfig struct {
	Region string
	// Profile selects a shared config profile (local development)
	Profile string
	// Endpoint overrides the service endpoint (LocalStack)
	Endpoint string
	CacheTTL time.Duration
}

// secretsManagerAPI is the subset of the Secrets Manager client in use
type secretsManagerAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type awsSource struct {
	client secretsManagerAPI
	logger ports.Logger
	cache  *secretCache
}

// NewAWSSource creates a source backed by AWS Secrets Manager. Credentials
// come from the default chain (IAM role in production).
func NewAWSSource(ctx context.Context, cfg AWSConfig, logger ports.Logger) (ports.SecretSource, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var clientOptions []func(*secretsmanager.Options)
	if cfg.Endpoint != "" {
		clientOptions = append(clientOptions, func(o *secretsmanager.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	logger.Info("AWS Secrets Manager source initialized",
		ports.String("region", cfg.Region),
		ports.String("endpoint", cfg.Endpoint),
	)

	return newAWSSource(secretsmanager.NewFromConfig(awsCfg, clientOptions...), cfg.CacheTTL, logger), nil
}

func newAWSSource(client secretsManagerAPI, ttl time.Duration, logger ports.Logger) *awsSource {
	return &awsSource{client: client, logger: logger, cache: newSecretCache(ttl)}
}

// GetSecret retrieves a secret by name or ARN
func (s *awsSource) GetSecret(ctx context.Context, path string) (string, error) {
	if cached, ok := s.cache.get(path); ok {
		s.logger.Debug("Secret retrieved from cache", ports.String("path", path))
		return cached, nil
	}

	result, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(path),
	})
	if err != nil {
		s.logger.Error("Failed to retrieve secret",
			ports.String("path", path),
			ports.Err(err),
		)
		return "", fmt.Errorf("failed to get secret %s: %w", path, err)
	}

	value := aws.ToString(result.SecretString)
	if value == "" {
		return "", fmt.Errorf("secret %s has no string value", path)
	}

	s.cache.set(path, value)
	return value, nil
}
