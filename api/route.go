package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nilotpaul/fanlift-auth/api/handler"
	"github.com/nilotpaul/fanlift-auth/config"
	"github.com/nilotpaul/fanlift-auth/service"
	"github.com/nilotpaul/fanlift-auth/setting"
)

type Router struct {
	env  config.EnvConfig
	auth *service.AuthService
}

func NewRouter(env config.EnvConfig, auth *service.AuthService) *Router {
	return &Router{
		env:  env,
		auth: auth,
	}
}

func healthcheck(c *fiber.Ctx) error {
	return c.JSON("OK")
}

// RegisterCallbackRoutes mounts the routes that must live at a fixed path,
// since Google only redirects to the exact registered URI.
func (h *Router) RegisterCallbackRoutes(app *fiber.App) {
	callbackPath := h.env.CallbackPath
	if len(callbackPath) == 0 {
		callbackPath = setting.CallbackPath
	}

	app.Get("/healthcheck", healthcheck)

	// OAuth Handler for google.
	authHR := handler.NewAuthHandler(h.auth)
	app.Get(callbackPath, authHR.GoogleCallbackHandler)
}

func (h *Router) RegisterRoutes(r fiber.Router) {
	r.Get("/healthcheck", healthcheck)
}
