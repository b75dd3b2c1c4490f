package storage

import (
	"strings"

	"blobls/core/errs"
)

const (
	ProviderAzure = "azure"
	ProviderMinIO = "minio"
	ProviderS3    = "s3"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Provider selects the backend (azure, minio, s3).
	Provider string `mapstructure:"provider" default:"azure"`
	// Account is the storage account name (Azure) or access key ID (MinIO, S3).
	Account string `mapstructure:"account" default:""`
	// AccessKey is the account key (Azure) or secret access key (MinIO, S3).
	AccessKey string `mapstructure:"access_key" default:""`
	// Endpoint overrides the service URL (e.g. Azurite or a MinIO host).
	Endpoint string `mapstructure:"endpoint" default:""`
	// Region is the location of the account (S3, MinIO).
	Region string `mapstructure:"region" default:""`
	// UseSSL indicates whether to use TLS for MinIO connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Delimiter enables hierarchical blob listing. Empty lists flat.
	Delimiter string `mapstructure:"delimiter" default:""`
	// Prefix restricts blob listings to names starting with it.
	Prefix string `mapstructure:"prefix" default:""`
	// PageSize caps entries per list request. Zero uses the service default.
	PageSize int `mapstructure:"page_size" default:"0"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ProviderName returns the normalized provider, defaulting to azure.
func (c Config) ProviderName() string {
	p := strings.ToLower(strings.TrimSpace(c.Provider))
	if p == "" {
		return ProviderAzure
	}
	return p
}

// Credentials builds the static credentials, failing on the first absent setting.
func (c Config) Credentials() (Credentials, error) {
	return NewCredentials(c.Account, c.AccessKey)
}

// Credentials are the static account credentials used to sign requests.
// They are immutable once constructed.
type Credentials struct {
	account string
	key     string
}

// NewCredentials validates and returns credentials. An empty account or key
// is reported as ConfigurationMissing naming the environment variable.
func NewCredentials(account, key string) (Credentials, error) {
	if account == "" {
		return Credentials{}, errs.Missing("STORAGE_ACCOUNT")
	}
	if key == "" {
		return Credentials{}, errs.Missing("STORAGE_ACCESS_KEY")
	}
	return Credentials{account: account, key: key}, nil
}

// Account returns the account identifier.
func (c Credentials) Account() string {
	return c.account
}

// Key returns the secret key.
func (c Credentials) Key() string {
	return c.key
}

// String hides the secret key.
func (c Credentials) String() string {
	return c.account + ":****"
}
