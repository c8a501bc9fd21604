package projects

import (
	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/restapi/modules/auth"
	"github.com/utkarshk014/catalyst/store"
	"github.com/utkarshk014/catalyst/util"
)

// GetMutationFields returns the project mutations to be mounted in the root
// schema.
func GetMutationFields(st store.Store, projectType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"createProject": &graphql.Field{
			Type: projectType,
			Args: graphql.FieldConfigArgument{
				"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description": &graphql.ArgumentConfig{Type: graphql.String},
				"status":      &graphql.ArgumentConfig{Type: graphql.String},
				"dueDate":     &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				org, err := auth.RequireOrganization(p.Context)
				if err != nil {
					return nil, err
				}

				project := &model.Project{
					OrganizationID: org.ID,
					Name:           p.Args["name"].(string),
					Status:         model.ProjectStatusActive,
				}
				if description, ok := p.Args["description"].(string); ok {
					project.Description = description
				}
				if status, ok := p.Args["status"].(string); ok {
					if !model.IsValidProjectStatus(status) {
						return nil, apperr.New(apperr.KindValidation, "Invalid project status: %s", status)
					}
					project.Status = status
				}
				if raw, ok := p.Args["dueDate"].(string); ok {
					due, err := util.ParseDate(raw)
					if err != nil {
						return nil, err
					}
					project.DueDate = &due
				}

				if err := st.CreateProject(p.Context, project); err != nil {
					return nil, err
				}
				return project, nil
			},
		},
		"updateProject": &graphql.Field{
			Type: projectType,
			Args: graphql.FieldConfigArgument{
				"projectId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"name":        &graphql.ArgumentConfig{Type: graphql.String},
				"description": &graphql.ArgumentConfig{Type: graphql.String},
				"status":      &graphql.ArgumentConfig{Type: graphql.String},
				"dueDate":     &graphql.ArgumentConfig{Type: graphql.String},
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

				project, err := st.ProjectByID(p.Context, projectID)
				if err != nil {
					return nil, err
				}

				if name, ok := p.Args["name"].(string); ok {
					project.Name = name
				}
				if description, ok := p.Args["description"].(string); ok {
					project.Description = description
				}
				if status, ok := p.Args["status"].(string); ok {
					if !model.IsValidProjectStatus(status) {
						return nil, apperr.New(apperr.KindValidation, "Invalid project status: %s", status)
					}
					project.Status = status
				}
				if raw, ok := p.Args["dueDate"].(string); ok {
					due, err := util.ParseDate(raw)
					if err != nil {
						return nil, err
					}
					project.DueDate = &due
				}

				if err := st.UpdateProject(p.Context, project); err != nil {
					return nil, err
				}
				return project, nil
			},
		},
		"deleteProject": &graphql.Field{
			Type: deleteResultType,
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

				if err := st.DeleteProject(p.Context, projectID); err != nil {
					return nil, err
				}
				return map[string]interface{}{
					"success": true,
					"message": "Project deleted successfully",
				}, nil
			},
		},
	}
}

var deleteResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeleteProjectResult",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.Boolean},
		"message": &graphql.Field{Type: graphql.String},
	},
})
