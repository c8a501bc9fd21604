// Package comments defines the GraphQL surface for task comments.
package comments

import (
	"strconv"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/model"
)

func commentField(resolve func(comment model.TaskComment) interface{}) func(p graphql.ResolveParams) (interface{}, error) {
	return func(p graphql.ResolveParams) (interface{}, error) {
		switch src := p.Source.(type) {
		case model.TaskComment:
			return resolve(src), nil
		case *model.TaskComment:
			return resolve(*src), nil
		}
		return nil, nil
	}
}

// Type is the GraphQL object for a task comment.
var Type = graphql.NewObject(graphql.ObjectConfig{
	Name: "TaskComment",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.ID,
			Resolve: commentField(func(comment model.TaskComment) interface{} {
				return strconv.FormatInt(comment.ID, 10)
			}),
		},
		"content": &graphql.Field{
			Type: graphql.String,
			Resolve: commentField(func(comment model.TaskComment) interface{} {
				return comment.Content
			}),
		},
		"authorEmail": &graphql.Field{
			Type: graphql.String,
			Resolve: commentField(func(comment model.TaskComment) interface{} {
				return comment.AuthorEmail
			}),
		},
		"timestamp": &graphql.Field{
			Type: graphql.String,
			Resolve: commentField(func(comment model.TaskComment) interface{} {
				return comment.Timestamp.Format(time.RFC3339)
			}),
		},
	},
})
