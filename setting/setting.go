package setting

import (
	"time"
)

// supported user backends
var Backends = []string{
	"base44",
	"postgres",
}

const (
	Base44Backend   string = "base44"
	PostgresBackend string = "postgres"
)

const (
	APIPrefix    string = "/api/v1"
	CallbackPath string = "/auth"

	SessionParam string = "fanlift_session"
	ErrorParam   string = "auth_error"

	DefaultStateURL string = "https://fan-lift.com/UserLogin"
)

const (
	GoogleClientID         string = "911645783659-mdlv0ee7lvgpecaacr98fspefk3vd2gr.apps.googleusercontent.com"
	GoogleTokenURL         string = "https://oauth2.googleapis.com/token"
	GoogleUserInfoEndpoint string = "https://www.googleapis.com/"
	Base44APIURL           string = "https://base44.app"
)

// Defaults for new users created on first Google sign-in.
const (
	DefaultSubscriptionStatus string = "none"
)

const HTTPTimeout time.Duration = 10 * time.Second

var SessionExpiry = 6 * 30 * 24 * time.Hour // 6 months expiration time.
