package store

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"github.com/nilotpaul/fanlift-auth/config"
	"github.com/nilotpaul/fanlift-auth/setting"
	"github.com/nilotpaul/fanlift-auth/types"
)

// `Registry` holds all the configured user backends.
type Registry struct {
	Directories map[string]types.UserDirectory
}

func NewRegistry() *Registry {
	return &Registry{
		Directories: make(map[string]types.UserDirectory),
	}
}

// Adds a backend in the `Directories` map.
func (r *Registry) Register(backend string, d types.UserDirectory) {
	r.Directories[backend] = d
}

// Retrieves a backend from the `Directories` map.
func (r *Registry) GetDirectory(backend string) (types.UserDirectory, error) {
	d, exists := r.Directories[backend]
	if !exists {
		return nil, fmt.Errorf("user backend %q not found (supported: %s)", backend, strings.Join(setting.Backends, ", "))
	}

	return d, nil
}

// `InitStore` registers every backend the env can support. Postgres is only
// available when a DB connection was opened.
func InitStore(env config.EnvConfig, db *sql.DB, httpClient *http.Client) *Registry {
	r := NewRegistry()

	r.Register(setting.Base44Backend, NewBase44Store(Base44Config{
		BaseURL:    env.Base44APIURL,
		AppID:      env.Base44AppID,
		APIKey:     env.Base44APIKey,
		HTTPClient: httpClient,
	}))

	if db != nil {
		r.Register(setting.PostgresBackend, NewPostgresStore(db, env.SessionSecret))
	}

	return r
}
