package tasks

import (
	"github.com/graphql-go/graphql"

	"github.com/utkarshk014/catalyst/apperr"
	"github.com/utkarshk014/catalyst/model"
	"github.com/utkarshk014/catalyst/restapi/modules/auth"
	"github.com/utkarshk014/catalyst/store"
	"github.com/utkarshk014/catalyst/util"
)

// GetMutationFields returns the task mutations to be mounted in the root
// schema.
func GetMutationFields(st store.Store, taskType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"createTask": &graphql.Field{
			Type: taskType,
			Args: graphql.FieldConfigArgument{
				"projectId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"title":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description":   &graphql.ArgumentConfig{Type: graphql.String},
				"status":        &graphql.ArgumentConfig{Type: graphql.String},
				"assigneeEmail": &graphql.ArgumentConfig{Type: graphql.String},
				"dueDate":       &graphql.ArgumentConfig{Type: graphql.String},
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

				task := &model.Task{
					ProjectID: projectID,
					Title:     p.Args["title"].(string),
					Status:    model.TaskStatusTodo,
				}
				if description, ok := p.Args["description"].(string); ok {
					task.Description = description
				}
				if status, ok := p.Args["status"].(string); ok {
					if !model.IsValidTaskStatus(status) {
						return nil, apperr.New(apperr.KindValidation, "Invalid task status: %s", status)
					}
					task.Status = status
				}
				if assignee, ok := p.Args["assigneeEmail"].(string); ok {
					task.AssigneeEmail = assignee
				}
				if raw, ok := p.Args["dueDate"].(string); ok {
					due, err := util.ParseDateTime(raw)
					if err != nil {
						return nil, err
					}
					task.DueDate = &due
				}

				if err := st.CreateTask(p.Context, task); err != nil {
					return nil, err
				}
				return task, nil
			},
		},
		"updateTask": &graphql.Field{
			Type: taskType,
			Args: graphql.FieldConfigArgument{
				"taskId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"title":         &graphql.ArgumentConfig{Type: graphql.String},
				"description":   &graphql.ArgumentConfig{Type: graphql.String},
				"status":        &graphql.ArgumentConfig{Type: graphql.String},
				"assigneeEmail": &graphql.ArgumentConfig{Type: graphql.String},
				"dueDate":       &graphql.ArgumentConfig{Type: graphql.String},
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

				task, err := st.TaskByID(p.Context, taskID)
				if err != nil {
					return nil, err
				}

				if title, ok := p.Args["title"].(string); ok {
					task.Title = title
				}
				if description, ok := p.Args["description"].(string); ok {
					task.Description = description
				}
				if status, ok := p.Args["status"].(string); ok {
					if !model.IsValidTaskStatus(status) {
						return nil, apperr.New(apperr.KindValidation, "Invalid task status: %s", status)
					}
					task.Status = status
				}
				if assignee, ok := p.Args["assigneeEmail"].(string); ok {
					task.AssigneeEmail = assignee
				}
				if raw, ok := p.Args["dueDate"].(string); ok {
					due, err := util.ParseDateTime(raw)
					if err != nil {
						return nil, err
					}
					task.DueDate = &due
				}

				if err := st.UpdateTask(p.Context, task); err != nil {
					return nil, err
				}
				return task, nil
			},
		},
		"updateTaskStatus": &graphql.Field{
			Type: taskType,
			Args: graphql.FieldConfigArgument{
				"taskId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
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

				status := p.Args["status"].(string)
				if !model.IsValidTaskStatus(status) {
					return nil, apperr.New(apperr.KindValidation, "Invalid task status: %s", status)
				}

				task, err := st.TaskByID(p.Context, taskID)
				if err != nil {
					return nil, err
				}
				task.Status = status

				if err := st.UpdateTask(p.Context, task); err != nil {
					return nil, err
				}
				return task, nil
			},
		},
		"deleteTask": &graphql.Field{
			Type: deleteResultType,
			Args: graphql.FieldConfigArgument{
				"taskId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
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

				if err := st.DeleteTask(p.Context, taskID); err != nil {
					return nil, err
				}
				return map[string]interface{}{
					"success": true,
					"message": "Task deleted successfully",
				}, nil
			},
		},
	}
}

var deleteResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeleteTaskResult",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.Boolean},
		"message": &graphql.Field{Type: graphql.String},
	},
})
