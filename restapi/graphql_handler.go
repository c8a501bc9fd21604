// Package restapi provides the HTTP surface: the router, the tenant gate
// mounting and the GraphQL request handler.
package restapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"go.uber.org/zap"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/restapi/modules/auth"
)

// GraphQLHandler returns the Fiber handler for GraphQL requests. The gate has
// already resolved the acting organization (or let a public operation
// through); the handler threads it into the execution context and maps error
// kinds to transport statuses in one place.
func GraphQLHandler(schema graphql.Schema, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var params struct {
			Query         string                 `json:"query"`
			OperationName string                 `json:"operationName"`
			Variables     map[string]interface{} `json:"variables"`
		}

		if err := c.BodyParser(&params); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": "Invalid request body"}},
			})
		}

		ctx := context.Background()
		if org, ok := c.Locals("organization").(*model.Organization); ok {
			ctx = auth.WithOrganization(ctx, org)
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  params.Query,
			VariableValues: params.Variables,
			OperationName:  params.OperationName,
			Context:        ctx,
		})

		if status := sanitizeErrors(result, logger, params.OperationName); status != fiber.StatusOK {
			return c.Status(status).JSON(result)
		}
		return c.JSON(result)
	}
}

// sanitizeErrors rewrites internal failures to a generic message so server
// details never reach the caller, and decides the response status. Business
// failures (forbidden, not found, validation) stay in the errors list at 200.
func sanitizeErrors(result *graphql.Result, logger *zap.Logger, operation string) int {
	status := fiber.StatusOK
	for i, gqlErr := range result.Errors {
		orig := originalError(gqlErr)
		if orig == nil {
			// Query syntax or schema validation failure raised by the
			// engine itself; report as-is.
			continue
		}

		var appErr *apperr.Error
		if errors.As(orig, &appErr) && appErr.Kind != apperr.KindInternal {
			continue
		}

		logger.Error("internal error in GraphQL operation",
			zap.String("operation", operation),
			zap.Error(orig),
		)
		result.Errors[i].Message = "Internal server error"
		status = fiber.StatusInternalServerError
	}
	return status
}

// originalError digs the resolver-returned error out of the engine's wrappers.
func originalError(fe gqlerrors.FormattedError) error {
	err := fe.OriginalError()
	for {
		switch wrapped := err.(type) {
		case *gqlerrors.Error:
			err = wrapped.OriginalError
		case gqlerrors.Error:
			err = wrapped.OriginalError
		case gqlerrors.FormattedError:
			err = wrapped.OriginalError()
		default:
			return err
		}
	}
}
