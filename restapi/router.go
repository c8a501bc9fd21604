package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/utkarshk014/catalyst/restapi/modules/auth"
	"github.com/utkarshk014/catalyst/store"
)

// SetupRoutes mounts the health check and the GraphQL endpoint behind the
// tenant gate. Every operation, query or mutation, goes through the gate;
// only the public signup/login operations bypass key resolution.
func SetupRoutes(app *fiber.App, st store.Store, schema graphql.Schema, logger *zap.Logger) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
		})
	})

	api := app.Group("/api/v1")
	api.Post("/graphql", auth.Gate(st), GraphQLHandler(schema, logger))
}
