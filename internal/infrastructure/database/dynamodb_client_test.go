package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAWSConfig_LocalEndpoint(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg, err := loadAWSConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "local", creds.AccessKeyID)
}

func TestNewDynamoDBClient(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	client, err := NewDynamoDBClient(context.Background())
	require.NoError(t, err)
	require.Equal(t, "us-east-1", client.Options().Region)
	require.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
