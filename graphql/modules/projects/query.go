package projects

import (
	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/restapi/modules/auth"
	"github.com/utkarshk014/catalyst/store"
)

// GetQueryFields returns the project queries to be mounted in the root
// schema. Results are always filtered to the authorization context's
// organization at the query boundary.
func GetQueryFields(st store.Store, projectType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"allProjects": &graphql.Field{
			Type: graphql.NewList(projectType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				org, err := auth.RequireOrganization(p.Context)
				if err != nil {
					return nil, err
				}
				return st.ProjectsByOrganization(p.Context, org.ID)
			},
		},
	}
}
