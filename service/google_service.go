package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/nilotpaul/fanlift-auth/setting"
	"github.com/nilotpaul/fanlift-auth/types"
	"github.com/nilotpaul/fanlift-auth/util"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleClientConfig configures a GoogleClient. ClientID defaults to the
// Fanlift web client; TokenURL and UserInfoEndpoint default to Google's
// public endpoints.
type GoogleClientConfig struct {
	ClientID         string
	ClientSecret     string
	RedirectURI      string
	TokenURL         string
	UserInfoEndpoint string
	HTTPClient       *http.Client
}

// GoogleClient talks to Google's token and userinfo endpoints. Every call is
// attempted exactly once.
type GoogleClient struct {
	Config           *oauth2.Config
	userInfoEndpoint string
	httpClient       *http.Client
}

var scopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

func NewGoogleClient(cfg GoogleClientConfig) *GoogleClient {
	clientID := cfg.ClientID
	if len(clientID) == 0 {
		clientID = setting.GoogleClientID
	}
	tokenURL := cfg.TokenURL
	if len(tokenURL) == 0 {
		tokenURL = setting.GoogleTokenURL
	}
	userInfoEndpoint := cfg.UserInfoEndpoint
	if len(userInfoEndpoint) == 0 {
		userInfoEndpoint = setting.GoogleUserInfoEndpoint
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: setting.HTTPTimeout}
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   google.Endpoint.AuthURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	return &GoogleClient{
		Config:           config,
		userInfoEndpoint: userInfoEndpoint,
		httpClient:       httpClient,
	}
}

func (g *GoogleClient) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, g.httpClient)
}

// Exchange trades an authorization code for Google's access token. A
// rejection from the token endpoint surfaces Google's error_description.
func (g *GoogleClient) Exchange(ctx context.Context, authCode string) (*oauth2.Token, error) {
	token, err := g.Config.Exchange(g.withClient(ctx), authCode)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			desc := rErr.ErrorDescription
			if len(desc) == 0 {
				desc = "Unknown error"
			}

			return nil, util.NewAppError(
				util.ErrTokenExchange,
				"Google token exchange failed: "+desc,
				"GoogleClient, Exchange() error: ",
				err,
			)
		}

		return nil, util.NewAppError(
			util.ErrUnexpected,
			err.Error(),
			"GoogleClient, Exchange() error: ",
			err,
		)
	}

	return token, nil
}

// GetGoogleUserInfo fetches the user's profile with the received access token.
// Google's error detail is deliberately not surfaced here.
func (g *GoogleClient) GetGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*types.GoogleUserResponse, error) {
	// oauth2.NewClient drops the base client's Timeout, so build it here.
	client := &http.Client{
		Transport: &oauth2.Transport{
			Base:   g.httpClient.Transport,
			Source: oauth2.StaticTokenSource(token),
		},
		CheckRedirect: g.httpClient.CheckRedirect,
		Jar:           g.httpClient.Jar,
		Timeout:       g.httpClient.Timeout,
	}

	srv, err := oauth2api.NewService(ctx, option.WithHTTPClient(client), option.WithEndpoint(g.userInfoEndpoint))
	if err != nil {
		return nil, util.NewAppError(
			util.ErrUnexpected,
			err.Error(),
			"GoogleClient, GetGoogleUserInfo() error: ",
			err,
		)
	}

	info, err := srv.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) {
			return nil, util.NewAppError(
				util.ErrProfile,
				"Failed to get user information from Google.",
				"GoogleClient, GetGoogleUserInfo() error: ",
				err,
			)
		}

		return nil, util.NewAppError(
			util.ErrUnexpected,
			err.Error(),
			"GoogleClient, GetGoogleUserInfo() error: ",
			err,
		)
	}
	if len(info.Email) == 0 {
		return nil, util.NewAppError(
			util.ErrProfile,
			"Google account has no email address.",
			"GoogleClient, GetGoogleUserInfo() error: ",
			"empty email",
		)
	}

	return &types.GoogleUserResponse{
		Email: info.Email,
		Name:  info.Name,
	}, nil
}
