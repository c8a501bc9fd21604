package comments

import (
	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/restapi/modules/auth"
	"github.com/utkarshk014/catalyst/store"
)

// GetMutationFields returns the comment mutations to be mounted in the root
// schema.
func GetMutationFields(st store.Store) graphql.Fields {
	return graphql.Fields{
		"createTaskComment": &graphql.Field{
			Type: Type,
			Args: graphql.FieldConfigArgument{
				"taskId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"content":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"authorEmail": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				org, err := auth.RequireOrganization(p.Context)
				if err != nil {
					return nil, err
				}

				taskID, err := store.RequireOwned(p.Context, store.KindTask, p.Args["taskId"].(string), org.ID, st.TaskOwner)
				if err != nil {
					return nil, err
				}

				comment := &model.TaskComment{
					TaskID:      taskID,
					Content:     p.Args["content"].(string),
					AuthorEmail: p.Args["authorEmail"].(string),
				}
				if err := st.CreateTaskComment(p.Context, comment); err != nil {
					return nil, err
				}
				return comment, nil
			},
		},
	}
}
