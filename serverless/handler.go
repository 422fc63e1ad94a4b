// Package serverless exposes the Google callback as a single net/http
// function for serverless hosts.
package serverless

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sync"

	"github.com/nilotpaul/fanlift-auth/bootstrap"
	"github.com/nilotpaul/fanlift-auth/config"
	"github.com/nilotpaul/fanlift-auth/service"
	"github.com/nilotpaul/fanlift-auth/setting"
	"github.com/nilotpaul/fanlift-auth/util"
)

func loadAuthService() (*service.AuthService, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	if bootstrap.NeedsDB(*env) {
		if db, err = config.OpenDB(env.DBURL); err != nil {
			return nil, err
		}
	}

	auth, err := bootstrap.NewAuthService(*env, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	return auth, nil
}

// lazyAuth builds the auth service on first use. Only a successful build is
// kept; a failed one is retried on the next request.
type lazyAuth struct {
	mu   sync.Mutex
	load func() (*service.AuthService, error)
	auth *service.AuthService
}

func (l *lazyAuth) get() (*service.AuthService, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.auth != nil {
		return l.auth, nil
	}

	auth, err := l.load()
	if err != nil {
		return nil, err
	}
	l.auth = auth

	return auth, nil
}

func (l *lazyAuth) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	auth, err := l.get()
	NewHandler(auth, err).ServeHTTP(w, r)
}

var defaultAuth = &lazyAuth{load: loadAuthService}

// Handler is the serverless entry point. The auth service is built once per
// warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	defaultAuth.ServeHTTP(w, r)
}

// NewHandler adapts an AuthService to net/http. A non-nil initErr still
// ends in a redirect carrying auth_error.
func NewHandler(auth *service.AuthService, initErr error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if initErr != nil || auth == nil {
			msg := util.DefaultErrMessage
			if initErr != nil {
				msg = initErr.Error()
			}

			state := r.URL.Query().Get("state")
			location, err := util.SetQueryParam(state, setting.ErrorParam, msg)
			if err != nil {
				location, _ = util.SetQueryParam(setting.DefaultStateURL, setting.ErrorParam, msg)
			}
			slog.Error("[FanliftAuth] serverless init failed", "err", initErr, "redirect", location)

			http.Redirect(w, r, location, http.StatusFound)
			return
		}

		q := r.URL.Query()
		location := auth.CallbackRedirect(r.Context(), q.Get("code"), q.Get("state"))

		http.Redirect(w, r, location, http.StatusFound)
	})
}
