package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
)

// IdentityConfig talks to the external identity provider (Firebase Auth)
// through the Identity Toolkit REST API, authorized with a service account.
type IdentityConfig struct {
	ProjectID string
	Client    *http.Client
}

type serviceAccountInfo struct {
	ProjectID string `json:"project_id"`
}

func NewIdentityConfig() *IdentityConfig {
	serviceAccount := os.Getenv("FIREBASE_SERVICE_ACCOUNT")
	if serviceAccount == "" {
		panic("Firebase service account not found in environment variables")
	}

	conf, err := google.JWTConfigFromJSON([]byte(serviceAccount), "https://www.googleapis.com/auth/identitytoolkit")
	if err != nil {
		panic(fmt.Sprintf("Invalid Firebase service account: %v", err))
	}

	var info serviceAccountInfo
	json.Unmarshal([]byte(serviceAccount), &info)
	projectID := info.ProjectID
	if projectID == "" {
		projectID = os.Getenv("FIREBASE_PROJECT_ID")
	}

	return &IdentityConfig{
		ProjectID: projectID,
		Client:    conf.Client(context.Background()),
	}
}

// DeleteAccount revokes the credential-issuing identity for the given uid.
// The local user record is deleted separately; a failure here is reported to
// the caller, not retried.
func (ic *IdentityConfig) DeleteAccount(ctx context.Context, uid string) error {
	url := fmt.Sprintf("https://identitytoolkit.googleapis.com/v1/projects/%s/accounts:delete", ic.ProjectID)

	body, err := json.Marshal(map[string]string{"localId": uid})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ic.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, string(payload))
	}

	return nil
}
