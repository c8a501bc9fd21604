package tasks

import (
	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/restapi/modules/auth"
	"github.com/utkarshk014/catalyst/store"
)

// GetQueryFields returns the task queries to be mounted in the root schema.
func GetQueryFields(st store.Store, taskType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"allTasks": &graphql.Field{
			Type: graphql.NewList(taskType),
			Args: graphql.FieldConfigArgument{
				"projectId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				org, err := auth.RequireOrganization(p.Context)
				if err != nil {
					return nil, err
				}

				projectID, err := store.RequireOwned(p.Context, store.KindProject, p.Args["projectId"].(string), org.ID, st.ProjectOwner)
				if err != nil {
					return nil, err
				}

				return st.TasksByProject(p.Context, projectID)
			},
		},
	}
}
