package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/store"
)

// APIKeyHeader is the request header carrying the bearer API key.
const APIKeyHeader = "X-API-Key"

// Operations allowed without an API key. Everything else requires a resolved
// organization before the handler runs.
var publicOperations = []string{"signUpOrganization", "loginOrganization"}

// Gate validates the API key for every non-public GraphQL operation and
// stores the resolved organization in the request locals. The transport
// multiplexes all operations behind one endpoint, so classification inspects
// the operation itself rather than the URL.
func Gate(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Query         string `json:"query"`
			OperationName string `json:"operationName"`
		}

		if err := c.BodyParser(&req); err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if isPublicOperation(req.Query, req.OperationName) {
			return c.Next()
		}

		apiKey := c.Get(APIKeyHeader)
		if apiKey == "" {
			return errorResponse(c, fiber.StatusUnauthorized, "API key is required")
		}

		org, err := st.OrganizationByAPIKey(c.Context(), apiKey)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				return errorResponse(c, fiber.StatusUnauthorized, "Invalid API key")
			}
			return errorResponse(c, fiber.StatusInternalServerError, "Internal server error")
		}

		c.Locals("organization", org)
		return c.Next()
	}
}

func isPublicOperation(query, operationName string) bool {
	for _, name := range publicOperations {
		if operationName == name {
			return true
		}
		if strings.Contains(query, name) {
			return true
		}
	}
	return false
}

// errorResponse writes the structured error list shape used for every
// gate-level rejection.
func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"errors": []fiber.Map{{"message": message}},
	})
}
