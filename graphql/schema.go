// Package graphql assembles the root schema from the per-area modules.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/graphql/modules/comments"
	"github.com/utkarshk014/catalyst/graphql/modules/organizations"
	"github.com/utkarshk014/catalyst/graphql/modules/projects"
	"github.com/utkarshk014/catalyst/graphql/modules/tasks"
	"github.com/utkarshk014/catalyst/store"
)

// CreateSchema builds the executable schema over the given store. Object
// types are constructed leaf-first so parent types can embed their children.
func CreateSchema(st store.Store) (graphql.Schema, error) {
	taskType := tasks.GetType(st, comments.Type)
	projectType := projects.GetType(st, taskType)

	queryFields := graphql.Fields{}
	mergeFields(queryFields, organizations.GetQueryFields())
	mergeFields(queryFields, projects.GetQueryFields(st, projectType))
	mergeFields(queryFields, tasks.GetQueryFields(st, taskType))

	mutationFields := graphql.Fields{}
	mergeFields(mutationFields, organizations.GetMutationFields(st))
	mergeFields(mutationFields, projects.GetMutationFields(st, projectType))
	mergeFields(mutationFields, tasks.GetMutationFields(st, taskType))
	mergeFields(mutationFields, comments.GetMutationFields(st))

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: queryFields,
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: mutationFields,
		}),
	})
}

func mergeFields(dst, src graphql.Fields) {
	for name, field := range src {
		dst[name] = field
	}
}
