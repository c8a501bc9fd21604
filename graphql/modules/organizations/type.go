// Package organizations defines the GraphQL surface of the tenant itself:
// the organization type, the signup/login bootstrap mutations and the
// current-organization query.
package organizations

import (
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/model"
)

func orgField(resolve func(org *model.Organization) interface{}) func(p graphql.ResolveParams) (interface{}, error) {
	return func(p graphql.ResolveParams) (interface{}, error) {
		if org, ok := p.Source.(*model.Organization); ok {
			return resolve(org), nil
		}
		return nil, nil
	}
}

// Type is the GraphQL object for an organization. The credential hash and
// API key are deliberately not exposed as fields; the key only travels in
// the AuthResponse of the bootstrap mutations.
var Type = graphql.NewObject(graphql.ObjectConfig{
	Name: "Organization",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.ID,
			Resolve: orgField(func(org *model.Organization) interface{} {
				return strconv.FormatInt(org.ID, 10)
			}),
		},
		"name": &graphql.Field{
			Type: graphql.String,
			Resolve: orgField(func(org *model.Organization) interface{} {
				return org.Name
			}),
		},
		"slug": &graphql.Field{
			Type: graphql.String,
			Resolve: orgField(func(org *model.Organization) interface{} {
				return org.Slug
			}),
		},
		"contactEmail": &graphql.Field{
			Type: graphql.String,
			Resolve: orgField(func(org *model.Organization) interface{} {
				return org.ContactEmail
			}),
		},
	},
})

// AuthResponseType carries the outcome of signup and login. Business
// failures (duplicate email, wrong password) travel in success/message at
// HTTP 200, never as transport errors.
var AuthResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthResponse",
	Fields: graphql.Fields{
		"success":      &graphql.Field{Type: graphql.Boolean},
		"message":      &graphql.Field{Type: graphql.String},
		"apiKey":       &graphql.Field{Type: graphql.String},
		"organization": &graphql.Field{Type: Type},
	},
})
