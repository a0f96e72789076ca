package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/people/v1"
	"google.golang.org/api/sheets/v4"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

// Scopes requested for the service account.
var Scopes = []string{
	sheets.SpreadsheetsReadonlyScope,
	people.ContactsScope,
}

// TokenSource builds a JWT token source from a parsed service account key.
// subject, when set, impersonates a Workspace user via domain-wide delegation.
func TokenSource(ctx context.Context, key models.ServiceAccountKey, subject string, scopes ...string) (oauth2.TokenSource, error) {
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("service account client_email and private_key are required")
	}
	if len(scopes) == 0 {
		scopes = Scopes
	}
	tokenURL := key.TokenURI
	if tokenURL == "" {
		tokenURL = google.JWTTokenURL
	}
	cfg := &jwt.Config{
		Email:        key.ClientEmail,
		PrivateKey:   []byte(key.PrivateKey),
		PrivateKeyID: key.PrivateKeyID,
		Scopes:       scopes,
		TokenURL:     tokenURL,
		Subject:      subject,
	}
	return cfg.TokenSource(ctx), nil
}

// ClientOptions returns the API client options for a service account.
func ClientOptions(ctx context.Context, key models.ServiceAccountKey, subject string) ([]option.ClientOption, error) {
	ts, err := TokenSource(ctx, key, subject)
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithTokenSource(ts)}, nil
}
