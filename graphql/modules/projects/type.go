// Package projects defines the GraphQL types, queries and mutations for
// project management.
package projects

import (
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/graphql/modules/organizations"
	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/restapi/modules/auth"
	"github.com/utkarshk014/catalyst/store"
)

const dueDateLayout = "2006-01-02"

func projectField(resolve func(p graphql.ResolveParams, project model.Project) (interface{}, error)) func(p graphql.ResolveParams) (interface{}, error) {
	return func(p graphql.ResolveParams) (interface{}, error) {
		switch src := p.Source.(type) {
		case model.Project:
			return resolve(p, src)
		case *model.Project:
			return resolve(p, *src)
		}
		return nil, nil
	}
}

// GetType returns the Project object type. taskType is injected by the
// schema assembly to keep the module dependency order acyclic.
func GetType(st store.Store, taskType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Project",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.ID,
				Resolve: projectField(func(_ graphql.ResolveParams, project model.Project) (interface{}, error) {
					return strconv.FormatInt(project.ID, 10), nil
				}),
			},
			"name": &graphql.Field{
				Type: graphql.String,
				Resolve: projectField(func(_ graphql.ResolveParams, project model.Project) (interface{}, error) {
					return project.Name, nil
				}),
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: projectField(func(_ graphql.ResolveParams, project model.Project) (interface{}, error) {
					return project.Description, nil
				}),
			},
			"status": &graphql.Field{
				Type: graphql.String,
				Resolve: projectField(func(_ graphql.ResolveParams, project model.Project) (interface{}, error) {
					return project.Status, nil
				}),
			},
			"dueDate": &graphql.Field{
				Type: graphql.String,
				Resolve: projectField(func(_ graphql.ResolveParams, project model.Project) (interface{}, error) {
					if project.DueDate == nil {
						return nil, nil
					}
					return project.DueDate.Format(dueDateLayout), nil
				}),
			},
			// Every project a request can see is owned by the request's
			// organization, so the parent reference resolves from context.
			"organization": &graphql.Field{
				Type: organizations.Type,
				Resolve: projectField(func(p graphql.ResolveParams, _ model.Project) (interface{}, error) {
					return auth.RequireOrganization(p.Context)
				}),
			},
			"tasks": &graphql.Field{
				Type: graphql.NewList(taskType),
				Resolve: projectField(func(p graphql.ResolveParams, project model.Project) (interface{}, error) {
					return st.TasksByProject(p.Context, project.ID)
				}),
			},
			"taskCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: projectField(func(p graphql.ResolveParams, project model.Project) (interface{}, error) {
					total, _, err := st.TaskCounts(p.Context, project.ID)
					return total, err
				}),
			},
			"completedTasks": &graphql.Field{
				Type: graphql.Int,
				Resolve: projectField(func(p graphql.ResolveParams, project model.Project) (interface{}, error) {
					_, done, err := st.TaskCounts(p.Context, project.ID)
					return done, err
				}),
			},
		},
	})
}
