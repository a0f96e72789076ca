package models

// ServiceAccountKey is the subset of a Google service account key document we use.
type ServiceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`
}

// Credentials bundles everything needed to reach the three external systems.
type Credentials struct {
	ServiceAccount ServiceAccountKey
	NotionToken    string
}
