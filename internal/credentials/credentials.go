package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daniloc96/member-roster-sync/internal/config"
	"github.com/daniloc96/member-roster-sync/internal/models"
)

type secretResolver interface {
	Resolve(secretName string, filePath string) (string, error)
	ResolveValue(inline string, secretName string) (string, error)
}

// Loader resolves the service account document and the record store token.
type Loader struct {
	google  config.GoogleConfig
	notion  config.NotionConfig
	secrets secretResolver
}

// NewLoader creates a credentials loader for cfg.
func NewLoader(cfg *config.Config, secrets secretResolver) *Loader {
	return &Loader{google: cfg.Google, notion: cfg.Notion, secrets: secrets}
}

// Load reads and parses credentials. It performs no calls to the source or
// record store.
func (l *Loader) Load(ctx context.Context) (*models.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := l.secrets.Resolve(l.google.CredentialsSecret, l.google.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading service account: %w", err)
	}
	key, err := ParseServiceAccount([]byte(raw))
	if err != nil {
		return nil, err
	}

	token, err := l.secrets.ResolveValue(l.notion.Token, l.notion.TokenSecret)
	if err != nil {
		return nil, fmt.Errorf("notion token: %w", err)
	}

	return &models.Credentials{ServiceAccount: *key, NotionToken: token}, nil
}

// ParseServiceAccount parses a service account key document and normalises
// escaped newlines in the private key.
func ParseServiceAccount(data []byte) (*models.ServiceAccountKey, error) {
	var key models.ServiceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("parsing service account JSON: %w", err)
	}
	if key.Type != "" && key.Type != "service_account" {
		return nil, fmt.Errorf("invalid key type: %s (expected: service_account)", key.Type)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("service account is missing client_email or private_key")
	}
	key.PrivateKey = NormalizePrivateKey(key.PrivateKey)
	return &key, nil
}

// NormalizePrivateKey turns literal "\n" sequences into newlines. Keys pasted
// into env files or secret stores often arrive double-escaped.
func NormalizePrivateKey(pem string) string {
	return strings.ReplaceAll(pem, `\n`, "\n")
}
