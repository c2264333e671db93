package handlers_fiber

import (
	"net/http"

	"environment-deployments/internal/api"
	"environment-deployments/internal/entities"
	"environment-deployments/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetRepoEnvironments returns the latest deployment per environment of a repository.
func (h *Handler) GetRepoEnvironments(c *fiber.Ctx) error {
	key := entities.RepoKey{
		Owner: c.Params("owner"),
		Name:  c.Params("repo"),
	}

	snapshots, err := h.uc.GetEnvironments(c.Context(), key)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.EnvironmentsResponse{
		Environments: mapper.ToAPISnapshotList(snapshots),
	})
}
