package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"google.golang.org/api/idtoken"
)

// Payload holds the verified profile extracted from a Google credential.
type Payload struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Verifier exchanges Google credentials for a verified profile. Access
// tokens go through the userinfo endpoint; ID tokens (JWTs) are validated
// locally against the configured client ID.
type Verifier struct {
	clientID    string
	userinfoURL string
	httpClient  *http.Client
}

func NewVerifier(clientID, userinfoURL string) *Verifier {
	return &Verifier{
		clientID:    clientID,
		userinfoURL: userinfoURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify resolves the credential to a profile. Any provider rejection is
// surfaced as domain.ErrInvalidCredential without upstream detail.
func (v *Verifier) Verify(ctx context.Context, token string) (*Payload, error) {
	if v.clientID != "" && strings.Count(token, ".") == 2 {
		return v.verifyIDToken(ctx, token)
	}
	return v.fetchUserinfo(ctx, token)
}

func (v *Verifier) verifyIDToken(ctx context.Context, token string) (*Payload, error) {
	p, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %w", domain.ErrInvalidCredential)
	}
	email, _ := p.Claims["email"].(string)
	name, _ := p.Claims["name"].(string)
	picture, _ := p.Claims["picture"].(string)
	return &Payload{Sub: p.Subject, Email: email, Name: name, Picture: picture}, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userinfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", domain.ErrInvalidCredential)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned %d: %w", resp.StatusCode, domain.ErrInvalidCredential)
	}

	var p Payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", domain.ErrInvalidCredential)
	}
	if p.Sub == "" || p.Email == "" {
		return nil, fmt.Errorf("userinfo missing sub or email: %w", domain.ErrInvalidCredential)
	}
	return &p, nil
}
