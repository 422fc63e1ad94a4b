package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig is resolved once at start-up and handed to every component.
// A missing Google client secret is not a load error: the callback
// reports it to the browser per request.
type EnvConfig struct {
	Environment string `envconfig:"ENVIRONMENT"`
	Port        string `envconfig:"PORT" default:"3000"`

	GoogleOAuthEnvConfig
	Base44EnvConfig

	UserBackend     string        `envconfig:"USER_BACKEND" default:"base44"`
	DBURL           string        `envconfig:"DB_URL"`
	SessionSecret   string        `envconfig:"SESSION_SECRET"`
	DefaultStateURL string        `envconfig:"DEFAULT_STATE_URL" default:"https://fan-lift.com/UserLogin"`
	CallbackPath    string        `envconfig:"CALLBACK_PATH" default:"/auth"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

type GoogleOAuthEnvConfig struct {
	GoogleClientID         string `envconfig:"GOOGLE_CLIENT_ID" default:"911645783659-mdlv0ee7lvgpecaacr98fspefk3vd2gr.apps.googleusercontent.com"`
	GoogleClientSecret     string `envconfig:"FANLIFT_GOOGLE_CLIENT_SECRET"`
	RedirectURI            string `envconfig:"REDIRECT_URI" default:"https://YOUR-RENDER-URL.onrender.com/auth"`
	GoogleTokenURL         string `envconfig:"GOOGLE_TOKEN_URL" default:"https://oauth2.googleapis.com/token"`
	GoogleUserInfoEndpoint string `envconfig:"GOOGLE_USERINFO_ENDPOINT" default:"https://www.googleapis.com/"`
}

type Base44EnvConfig struct {
	Base44AppID  string `envconfig:"BASE44_APP_ID"`
	Base44APIKey string `envconfig:"BASE44_API_KEY"`
	Base44APIURL string `envconfig:"BASE44_API_URL" default:"https://base44.app"`
}

func (e EnvConfig) IsProduction() bool {
	return e.Environment == "PROD"
}

// LoadEnv reads an optional .env file and then the process environment.
func LoadEnv() (*EnvConfig, error) {
	var cfg EnvConfig

	// Serverless runtimes have no .env file on disk.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoadEnv() *EnvConfig {
	cfg, err := LoadEnv()
	if err != nil {
		panic(err)
	}

	return cfg
}
