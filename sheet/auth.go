package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets.readonly"

// Authorize returns an HTTP client authorised with the cached OAuth2 token for the Google client
// credentials. The token is created by Authorise.
func Authorize(ctx context.Context, credentials, tokens string) (*http.Client, error) {
	config, err := oauthConfig(credentials)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(TokensFile(credentials, tokens))
	if err != nil {
		return nil, fmt.Errorf("no cached OAuth2 token - run 'authorise' first (%v)", err)
	}

	return config.Client(ctx, token), nil
}

// Authorise requests an authorisation code for read-only Sheets access and caches the resulting
// token next to the credentials (or in 'tokens' if given).
func Authorise(ctx context.Context, credentials, tokens string, in io.Reader, out io.Writer) (string, error) {
	config, err := oauthConfig(credentials)
	if err != nil {
		return "", err
	}

	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Fprintf(out, "Go to the following link in your browser then type the authorization code:\n%v\n", url)

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return "", fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	file := TokensFile(credentials, tokens)
	if err := saveToken(file, token); err != nil {
		return "", err
	}

	return file, nil
}

// TokensFile returns the cached token path: 'tokens' if set, otherwise <credentials>.sheets in the
// credentials directory.
func TokensFile(credentials, tokens string) string {
	if strings.TrimSpace(tokens) != "" {
		return tokens
	}

	dir, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(dir, fmt.Sprintf("%s.sheets", name))
}

func oauthConfig(credentials string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	return google.ConfigFromJSON(b, SHEETS)
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(file string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth2 token (%v)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
