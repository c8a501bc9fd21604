package organizations

import (
	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/restapi/modules/auth"
)

// GetQueryFields returns the organization queries to be mounted in the root
// schema.
func GetQueryFields() graphql.Fields {
	return graphql.Fields{
		"organization": &graphql.Field{
			Type: Type,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return auth.RequireOrganization(p.Context)
			},
		},
	}
}
