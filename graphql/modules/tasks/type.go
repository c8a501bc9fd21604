// Package tasks defines the GraphQL types, queries and mutations for task
// management. Every operation verifies ownership transitively through the
// task's project.
package tasks

import (
	"strconv"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/store"
)

func taskField(resolve func(p graphql.ResolveParams, task model.Task) (interface{}, error)) func(p graphql.ResolveParams) (interface{}, error) {
	return func(p graphql.ResolveParams) (interface{}, error) {
		switch src := p.Source.(type) {
		case model.Task:
			return resolve(p, src)
		case *model.Task:
			return resolve(p, *src)
		}
		return nil, nil
	}
}

// GetType returns the Task object type. commentType is injected by the
// schema assembly.
func GetType(st store.Store, commentType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.ID,
				Resolve: taskField(func(_ graphql.ResolveParams, task model.Task) (interface{}, error) {
					return strconv.FormatInt(task.ID, 10), nil
				}),
			},
			"title": &graphql.Field{
				Type: graphql.String,
				Resolve: taskField(func(_ graphql.ResolveParams, task model.Task) (interface{}, error) {
					return task.Title, nil
				}),
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: taskField(func(_ graphql.ResolveParams, task model.Task) (interface{}, error) {
					return task.Description, nil
				}),
			},
			"status": &graphql.Field{
				Type: graphql.String,
				Resolve: taskField(func(_ graphql.ResolveParams, task model.Task) (interface{}, error) {
					return task.Status, nil
				}),
			},
			"assigneeEmail": &graphql.Field{
				Type: graphql.String,
				Resolve: taskField(func(_ graphql.ResolveParams, task model.Task) (interface{}, error) {
					return task.AssigneeEmail, nil
				}),
			},
			"dueDate": &graphql.Field{
				Type: graphql.String,
				Resolve: taskField(func(_ graphql.ResolveParams, task model.Task) (interface{}, error) {
					if task.DueDate == nil {
						return nil, nil
					}
					return task.DueDate.Format(time.RFC3339), nil
				}),
			},
			"comments": &graphql.Field{
				Type: graphql.NewList(commentType),
				Resolve: taskField(func(p graphql.ResolveParams, task model.Task) (interface{}, error) {
					return st.CommentsByTask(p.Context, task.ID)
				}),
			},
		},
	})
}
