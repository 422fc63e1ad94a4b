package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nilotpaul/fanlift-auth/setting"
	"github.com/nilotpaul/fanlift-auth/types"
	"github.com/nilotpaul/fanlift-auth/util"
)

// Base44Store keeps users in a Base44 app's built-in User entity.
type Base44Store struct {
	baseURL    string
	appID      string
	apiKey     string
	httpClient *http.Client
}

type Base44Config struct {
	BaseURL    string
	AppID      string
	APIKey     string
	HTTPClient *http.Client
}

func NewBase44Store(cfg Base44Config) *Base44Store {
	baseURL := cfg.BaseURL
	if len(baseURL) == 0 {
		baseURL = setting.Base44APIURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: setting.HTTPTimeout}
	}

	return &Base44Store{
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      cfg.AppID,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

func (s *Base44Store) FindUsersByEmail(ctx context.Context, email string) ([]types.User, error) {
	q, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return nil, err
	}

	var users []types.User
	if err := s.do(ctx, http.MethodGet, "/entities/User?q="+url.QueryEscape(string(q)), nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Base44Store) CreateUser(ctx context.Context, params types.CreateUserParams) (*types.User, error) {
	var u types.User
	if err := s.do(ctx, http.MethodPost, "/entities/User", params, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Base44Store) GenerateSessionToken(ctx context.Context, userID string) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	body := map[string]string{"user_id": userID}
	if err := s.do(ctx, http.MethodPost, "/auth/session-token", body, &res); err != nil {
		return "", err
	}

	return res.Token, nil
}

// do sends one request to the app's API and decodes the JSON reply into target.
func (s *Base44Store) do(ctx context.Context, method string, path string, body any, target any) error {
	if len(s.appID) == 0 {
		return util.NewAppError(
			util.ErrConfig,
			"Server configuration error: Base44 app id is missing.",
		)
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	endpoint := fmt.Sprintf("%s/api/apps/%s%s", s.baseURL, url.PathEscape(s.appID), path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-App-Id", s.appID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(s.apiKey) != 0 {
		req.Header.Set("api_key", s.apiKey)
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("base44: %s %s failed with status %d: %s", method, path, res.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := util.DecodeJSON(res.Body, target); err != nil {
		return fmt.Errorf("base44: failed to decode the res body: %w", err)
	}

	return nil
}
