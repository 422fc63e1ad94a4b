package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/nilotpaul/fanlift-auth/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// GoogleCallbackHandler uses `code` in URL and exchanges it for a session token.
// It always answers with a redirect to `state`, never with an error page.
func (h *AuthHandler) GoogleCallbackHandler(c *fiber.Ctx) error {
	location := h.auth.CallbackRedirect(c.UserContext(), c.Query("code"), c.Query("state"))

	return c.Redirect(location, http.StatusFound)
}
