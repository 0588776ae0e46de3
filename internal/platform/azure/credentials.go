package azure

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// Environment variables consumed during authentication.
const (
	// EnvAuthFile points at a JSON auth descriptor (service principal
	// credentials plus subscription).
	EnvAuthFile = "WEBFLEET_AUTH_FILE"

	// EnvAuthFileCompat is honored as a fallback for tooling that already
	// sets the classic SDK variable.
	EnvAuthFileCompat = "AZURE_AUTH_LOCATION"

	// EnvSubscription supplies the subscription when no auth file is used.
	EnvSubscription = "AZURE_SUBSCRIPTION_ID"
)

// authDescriptor is the JSON shape of the auth file.
type authDescriptor struct {
	ClientID       string `json:"clientId"`
	ClientSecret   string `json:"clientSecret"`
	TenantID       string `json:"tenantId"`
	SubscriptionID string `json:"subscriptionId"`
}

// NewRealClientFromEnv builds a RealClient from the process environment.
//
// If WEBFLEET_AUTH_FILE (or AZURE_AUTH_LOCATION) is set, the referenced JSON
// descriptor supplies a service principal and the subscription. Otherwise
// the default Azure credential chain is used together with
// AZURE_SUBSCRIPTION_ID.
func NewRealClientFromEnv() (*RealClient, error) {
	cred, subscription, err := credentialFromEnv()
	if err != nil {
		return nil, err
	}
	return NewRealClient(cred, subscription)
}

func credentialFromEnv() (azcore.TokenCredential, string, error) {
	path := os.Getenv(EnvAuthFile)
	if path == "" {
		path = os.Getenv(EnvAuthFileCompat)
	}
	if path != "" {
		return credentialFromFile(path)
	}

	subscription := os.Getenv(EnvSubscription)
	if subscription == "" {
		return nil, "", fmt.Errorf("%s is required when no auth file is configured", EnvSubscription)
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build default credential: %w", err)
	}
	return cred, subscription, nil
}

func credentialFromFile(path string) (azcore.TokenCredential, string, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read auth file: %w", err)
	}

	var desc authDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, "", fmt.Errorf("failed to parse auth file: %w", err)
	}
	if desc.ClientID == "" || desc.ClientSecret == "" || desc.TenantID == "" || desc.SubscriptionID == "" {
		return nil, "", fmt.Errorf("auth file %s is missing required fields", path)
	}

	cred, err := azidentity.NewClientSecretCredential(desc.TenantID, desc.ClientID, desc.ClientSecret, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build client secret credential: %w", err)
	}
	return cred, desc.SubscriptionID, nil
}
