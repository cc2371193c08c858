package sheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

const credentials = `{
  "installed": {
    "client_id": "12345.apps.googleusercontent.com",
    "client_secret": "secret",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "redirect_uris": ["urn:ietf:wg:oauth:2.0:oob", "http://localhost"]
  }
}`

func TestTokensFile(t *testing.T) {
	if file := TokensFile("/etc/sheets-invoices/credentials.json", ""); file != "/etc/sheets-invoices/credentials.sheets" {
		t.Errorf("Incorrect tokens file - expected:%v, got:%v", "/etc/sheets-invoices/credentials.sheets", file)
	}

	if file := TokensFile("/etc/sheets-invoices/credentials.json", "/var/tokens.json"); file != "/var/tokens.json" {
		t.Errorf("Incorrect tokens file - expected:%v, got:%v", "/var/tokens.json", file)
	}
}

func TestAuthorizeWithCachedToken(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "credentials.json")

	if err := os.WriteFile(file, []byte(credentials), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	token := oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
	}

	if err := saveToken(TokensFile(file, ""), &token); err != nil {
		t.Fatalf("Unexpected error saving token (%v)", err)
	}

	client, err := Authorize(context.Background(), file, "")
	if err != nil {
		t.Fatalf("Unexpected error authorising client (%v)", err)
	}

	if client == nil {
		t.Errorf("Expected HTTP client, got %v", client)
	}
}

func TestAuthorizeWithoutCachedToken(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "credentials.json")

	if err := os.WriteFile(file, []byte(credentials), 0600); err != nil {
		t.Fatalf("%v", err)
	}

	if _, err := Authorize(context.Background(), file, ""); err == nil {
		t.Errorf("Expected error for missing token file")
	}
}
