package api

import "github.com/gofiber/fiber/v2"

// ServerInterface lists handlers the delivery layer must implement.
type ServerInterface interface {
	// GetRepoEnvironments returns the latest deployment per environment
	// of a repository.
	GetRepoEnvironments(c *fiber.Ctx) error
}

// RegisterHandlers binds routes to the handler implementation.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Get("/api/v1/repos/:owner/:repo/environments", si.GetRepoEnvironments)
}
