package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"hospital-directory/config"
	"hospital-directory/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var ErrAuthFailed = errors.New("authentication failed")

// expirySkew renews a token slightly before upstream would reject it.
const expirySkew = 30 * time.Second

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session owns the upstream bearer token. It logs in lazily and again after
// the token expires or is cleared.
type Session struct {
	authURL    string
	username   string
	password   string
	tokenTTL   time.Duration
	httpClient *http.Client
	log        *logrus.Logger
	now        func() time.Time

	mu           sync.Mutex
	token        string
	refreshToken string
	expiresAt    time.Time
}

func NewSession(cfg config.UpstreamConfig, httpClient *http.Client, log *logrus.Logger) *Session {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = cfg.BaseURL
	}
	return &Session{
		authURL:    strings.TrimRight(authURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		tokenTTL:   cfg.TokenTTL,
		httpClient: httpClient,
		log:        log,
		now:        time.Now,
	}
}

// EnsureToken returns a live access token, logging in when needed.
func (s *Session) EnsureToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiresAt) {
		return s.token, nil
	}

	login, err := s.login(ctx)
	if err != nil {
		s.token = ""
		return "", err
	}

	s.token = login.AccessToken
	s.refreshToken = login.RefreshToken
	s.expiresAt = s.expiry(login.AccessToken)

	s.log.WithFields(logrus.Fields{
		"expires_at": s.expiresAt.Format(time.RFC3339),
	}).Info("Upstream session established")

	return s.token, nil
}

// Clear forgets the current token so the next call logs in again.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.refreshToken = ""
	s.expiresAt = time.Time{}
}

func (s *Session) login(ctx context.Context) (*loginResponse, error) {
	form := url.Values{}
	form.Set("username", s.username)
	form.Set("password", s.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authURL+"/Auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read login response: %v", ErrAuthFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}

	var out loginResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode login response: %v", ErrAuthFailed, err)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		return nil, fmt.Errorf("%w: missing tokens in login response", ErrAuthFailed)
	}

	return &out, nil
}

func (s *Session) expiry(token string) time.Time {
	if exp, err := jwt.Expiry(token); err == nil {
		return exp.Add(-expirySkew)
	}
	return s.now().Add(s.tokenTTL)
}
