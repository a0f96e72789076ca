package secrets

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-secretsmanager-caching-go/v2/secretcache"
)

type secretGetter interface {
	GetSecretString(secretID string) (string, error)
}

// Resolver loads secret values from Secrets Manager or from local files.
// The Secrets Manager cache is created on first use and reused afterwards,
// so repeated runs in one process hit the cache.
type Resolver struct {
	once     sync.Once
	cache    secretGetter
	cacheErr error
	newCache func() (secretGetter, error)
	readFile func(path string) ([]byte, error)
}

// NewResolver creates a resolver backed by the Secrets Manager cache.
func NewResolver() *Resolver {
	return &Resolver{
		newCache: func() (secretGetter, error) {
			return secretcache.New()
		},
		readFile: os.ReadFile,
	}
}

// GetSecretString retrieves a secret value from Secrets Manager.
func (r *Resolver) GetSecretString(secretName string) (string, error) {
	if secretName == "" {
		return "", fmt.Errorf("secret name is required")
	}
	r.once.Do(func() {
		r.cache, r.cacheErr = r.newCache()
	})
	if r.cacheErr != nil {
		return "", fmt.Errorf("secrets manager: %w", r.cacheErr)
	}
	value, err := r.cache.GetSecretString(secretName)
	if err != nil {
		return "", fmt.Errorf("reading secret %s: %w", secretName, err)
	}
	return value, nil
}

// LoadFromFile reads a secret value from a local file.
func (r *Resolver) LoadFromFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path is required")
	}
	data, err := r.readFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Resolve loads a secret from Secrets Manager when secretName is set,
// otherwise from filePath.
func (r *Resolver) Resolve(secretName string, filePath string) (string, error) {
	if secretName != "" {
		return r.GetSecretString(secretName)
	}
	return r.LoadFromFile(filePath)
}

// ResolveValue returns inline when set, otherwise the named secret.
// Surrounding whitespace is trimmed since tokens are often stored with a newline.
func (r *Resolver) ResolveValue(inline string, secretName string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if secretName == "" {
		return "", fmt.Errorf("no value or secret name configured")
	}
	value, err := r.GetSecretString(secretName)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
