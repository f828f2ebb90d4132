//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name:          "valid postgres settings",
			settings:      &DatabaseSettings{Type: PostgresDbType, DSN: "user=postgres host=localhost", Name: "realshot"},
			expectedError: false,
		},
		{
			name:          "sqlite without dsn defaults to memory",
			settings:      &DatabaseSettings{Type: SqliteDbType},
			expectedError: false,
		},
		{
			name:          "postgres without dsn",
			settings:      &DatabaseSettings{Type: PostgresDbType},
			expectedError: true,
		},
		{
			name:          "unsupported type",
			settings:      &DatabaseSettings{Type: "mysql", DSN: "x"},
			expectedError: true,
		},
		{
			name:          "missing type",
			settings:      &DatabaseSettings{DSN: "x"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func validStripeSettings() *StripeSettings {
	return &StripeSettings{
		SecretKey:     "sk_test_123",
		WebhookSecret: "whsec_123",
		SuccessURL:    "https://realshot.test/success",
		CancelURL:     "https://realshot.test/studio",
		Currency:      "usd",
		Packages: []PackageSettings{
			{ID: "starter", Name: "Starter", PriceCents: 2900, PhotoCount: 20},
			{ID: "pro", Name: "Pro", PriceCents: 5900, PhotoCount: 60},
		},
	}
}

func TestStripeSettingsValidation(t *testing.T) {
	require.NoError(t, validStripeSettings().Validate())

	noPackages := validStripeSettings()
	noPackages.Packages = nil
	assert.Error(t, noPackages.Validate())

	duplicate := validStripeSettings()
	duplicate.Packages[1].ID = "starter"
	assert.Error(t, duplicate.Validate())

	cheap := validStripeSettings()
	cheap.Packages[0].PriceCents = 10
	assert.Error(t, cheap.Validate())
}

func TestStripeSettings_Package(t *testing.T) {
	s := validStripeSettings()

	pkg, ok := s.Package("pro")
	require.True(t, ok)
	assert.Equal(t, 60, pkg.PhotoCount)

	_, ok = s.Package("enterprise")
	assert.False(t, ok)
}

func TestCleanupSettingsValidation(t *testing.T) {
	s := &CleanupSettings{UploadRetentionDays: 30, AbandonedAfterDays: 7}
	require.NoError(t, s.Validate())
	assert.Equal(t, 30*24*time.Hour, s.UploadRetention())
	assert.Equal(t, 7*24*time.Hour, s.AbandonedAfter())

	s.SchedulerEnabled = true
	assert.Error(t, s.Validate(), "scheduler needs a schedule")

	s.Schedule = "0 3 * * *"
	assert.NoError(t, s.Validate())
}

func TestSMTPSettingsValidation(t *testing.T) {
	assert.NoError(t, (&SMTPSettings{}).Validate(), "disabled transport needs nothing")
	assert.Error(t, (&SMTPSettings{Enabled: true}).Validate())
	assert.NoError(t, (&SMTPSettings{Enabled: true, Host: "smtp.test", Port: 587, From: "studio@realshot.test"}).Validate())
	assert.Error(t, (&SMTPSettings{From: "not-an-email"}).Validate())
}

func TestAuthSettingsValidation(t *testing.T) {
	s := &AuthSettings{JWTSecret: "0123456789abcdef"}
	require.NoError(t, s.Validate())
	assert.False(t, s.GoogleEnabled())
	assert.Equal(t, "session", s.Cookie())

	s.GoogleClientID = "client"
	assert.Error(t, s.Validate(), "client id without secret")

	s.GoogleClientSecret = "secret"
	require.NoError(t, s.Validate())
	assert.True(t, s.GoogleEnabled())

	assert.Error(t, (&AuthSettings{JWTSecret: "short"}).Validate())
}

func TestBlobConnectorSettings_UploadLimit(t *testing.T) {
	s := &BlobConnectorSettings{CloudProvider: AzureCloudProvider, ConnectionString: "x", ContainerName: "photos"}
	require.NoError(t, s.Validate())
	assert.Equal(t, DefaultMaxUploadSize, s.UploadLimit())

	s.MaxUploadSize = 1024
	assert.Equal(t, int64(1024), s.UploadLimit())

	s.CloudProvider = "aws"
	assert.Error(t, s.Validate())
}
