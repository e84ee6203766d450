package asana

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/oauth2"

	"github.com/focusly/todo/internal/debug"
)

// OAuth2 application registration for this CLI. The redirect URI is the
// out-of-band flow: Asana displays the authorization code for the user
// to paste back.
const (
	clientID     = "1206215514588292"
	clientSecret = "8c7ea1c603de8462a3ba24f827ff1658"
	redirectURI  = "urn:ietf:wg:oauth:2.0:oob"
)

// Overridable in tests.
var (
	authURL  = "https://app.asana.com/-/oauth_authorize"
	tokenURL = "https://app.asana.com/-/oauth_token"

	codeInput io.Reader = os.Stdin
)

func oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
	}
}

// ExecuteAuthorizationFlow runs the interactive authorization-code flow
// with PKCE: open the consent page, have the user paste the code back,
// and exchange it for a token pair.
func ExecuteAuthorizationFlow(ctx context.Context) (Credentials, error) {
	verifier := oauth2.GenerateVerifier()

	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		return Credentials{}, fmt.Errorf("failed to generate state: %w", err)
	}
	state := hex.EncodeToString(stateBytes)

	cfg := oauthConfig()
	consentURL := cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	fmt.Fprintf(os.Stderr, "Open the following URL to authorize access:\n\n  %s\n\n", consentURL)
	openBrowser(consentURL)

	fmt.Fprint(os.Stderr, "Enter the authorization code: ")
	code, err := bufio.NewReader(codeInput).ReadString('\n')
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return Credentials{}, fmt.Errorf("empty authorization code")
	}

	token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return Credentials{}, fmt.Errorf("token exchange failed: %w", err)
	}

	return Credentials{OAuth2: &OAuth2Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}}, nil
}

// RefreshAuthorization exchanges a refresh token for a new token pair.
// When the response omits a refresh token the old one is kept, per
// RFC 6749 §6.
func RefreshAuthorization(ctx context.Context, refreshToken string) (Credentials, error) {
	src := oauthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return Credentials{}, fmt.Errorf("refresh exchange failed: %w", err)
	}

	next := token.RefreshToken
	if next == "" {
		next = refreshToken
	}
	return Credentials{OAuth2: &OAuth2Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: next,
	}}, nil
}

// AskForPAT prompts for a personal access token.
func AskForPAT() (Credentials, error) {
	var token string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Personal access token").
			Description("Create one at https://app.asana.com/0/my-apps").
			EchoMode(huh.EchoModePassword).
			Value(&token).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("token cannot be empty")
				}
				return nil
			}),
	))
	if err := form.Run(); err != nil {
		return Credentials{}, err
	}
	return Credentials{PersonalAccessToken: strings.TrimSpace(token)}, nil
}

func openBrowser(u string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	if err := cmd.Start(); err != nil {
		debug.Logf("could not open browser: %v", err)
	}
}
