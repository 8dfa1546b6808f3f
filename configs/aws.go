package configs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

// ConnectSES builds an SES v2 client. Static credentials are used when both
// keys are set; otherwise the default AWS credential chain applies.
func ConnectSES(ctx context.Context, cfg *Config) (*sesv2.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	LogWithContext("notify", "ses-connect").WithField("region", awsCfg.Region).Info("SES client configured")
	return sesv2.NewFromConfig(awsCfg), nil
}
