package bootstrap

import (
	"database/sql"
	"net/http"

	"github.com/nilotpaul/fanlift-auth/config"
	"github.com/nilotpaul/fanlift-auth/service"
	"github.com/nilotpaul/fanlift-auth/setting"
	"github.com/nilotpaul/fanlift-auth/store"
)

// NeedsDB reports whether the configured user backend keeps its users in
// PostgreSQL.
func NeedsDB(env config.EnvConfig) bool {
	return env.UserBackend == setting.PostgresBackend
}

// NewAuthService wires the Google client and the configured user backend
// into one AuthService. db may be nil unless the backend is postgres.
func NewAuthService(env config.EnvConfig, db *sql.DB) (*service.AuthService, error) {
	timeout := env.HTTPTimeout
	if timeout <= 0 {
		timeout = setting.HTTPTimeout
	}
	httpClient := &http.Client{Timeout: timeout}

	r := store.InitStore(env, db, httpClient)
	directory, err := r.GetDirectory(env.UserBackend)
	if err != nil {
		return nil, err
	}

	google := service.NewGoogleClient(service.GoogleClientConfig{
		ClientID:         env.GoogleClientID,
		ClientSecret:     env.GoogleClientSecret,
		RedirectURI:      env.RedirectURI,
		TokenURL:         env.GoogleTokenURL,
		UserInfoEndpoint: env.GoogleUserInfoEndpoint,
		HTTPClient:       httpClient,
	})

	return service.NewAuthService(service.AuthConfig{
		GoogleClientSecret: env.GoogleClientSecret,
		DefaultStateURL:    env.DefaultStateURL,
	}, google, directory), nil
}
