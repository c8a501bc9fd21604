package organizations

import (
	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/store"
)

// GetMutationFields returns the public bootstrap mutations. These are the
// only operations the gate admits without an API key.
func GetMutationFields(st store.Store) graphql.Fields {
	return graphql.Fields{
		"signUpOrganization": &graphql.Field{
			Type: AuthResponseType,
			Args: graphql.FieldConfigArgument{
				"name":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"contactEmail": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				name := p.Args["name"].(string)
				email := p.Args["contactEmail"].(string)
				password := p.Args["password"].(string)

				org, err := st.CreateOrganization(p.Context, name, email, password)
				if err != nil {
					if apperr.KindOf(err) == apperr.KindValidation {
						return authFailure(err.Error()), nil
					}
					return nil, err
				}

				return authSuccess("Organization created successfully", org), nil
			},
		},
		"loginOrganization": &graphql.Field{
			Type: AuthResponseType,
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				email := p.Args["email"].(string)
				password := p.Args["password"].(string)

				org, err := st.OrganizationByEmail(p.Context, email)
				if err != nil {
					if apperr.KindOf(err) == apperr.KindNotFound {
						return authFailure("Organization not found"), nil
					}
					return nil, err
				}

				if !store.VerifyCredential(org, password) {
					return authFailure("Invalid password"), nil
				}

				return authSuccess("Login successful", org), nil
			},
		},
	}
}

func authSuccess(message string, org *model.Organization) map[string]interface{} {
	return map[string]interface{}{
		"success":      true,
		"message":      message,
		"apiKey":       org.APIKey,
		"organization": org,
	}
}

func authFailure(message string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"message": message,
	}
}
