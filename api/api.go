package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	MW "github.com/nilotpaul/fanlift-auth/api/middleware"
	"github.com/nilotpaul/fanlift-auth/config"
	"github.com/nilotpaul/fanlift-auth/service"
	"github.com/nilotpaul/fanlift-auth/setting"
)

type APIServer struct {
	listenAddr string
	env        config.EnvConfig
	auth       *service.AuthService
}

func NewAPIServer(listenAddr string, env config.EnvConfig, auth *service.AuthService) *APIServer {
	return &APIServer{
		listenAddr: listenAddr,
		env:        env,
		auth:       auth,
	}
}

// App builds the fiber app with every middleware and route registered.
func (s *APIServer) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Fanlift Auth",
		ErrorHandler: MW.ErrorHandler,
	})
	logger := logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	})

	app.Use(recover.New())
	app.Use(logger)

	v1 := app.Group(setting.APIPrefix)

	handler := NewRouter(s.env, s.auth)
	handler.RegisterCallbackRoutes(app)
	handler.RegisterRoutes(v1)

	return app
}

func (s *APIServer) Start() error {
	app := s.App()

	log.Printf("Fanlift OAuth server running on port %s", s.listenAddr)

	return app.Listen(":" + s.listenAddr)
}
