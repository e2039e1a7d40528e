package api

import (
	"context"
	"net/http"
	"net/url"
)

// GetExerciseGroups returns nil, nil when the backend has no document.
func (c *Client) GetExerciseGroups(ctx context.Context) (*ExerciseGroupsDoc, error) {
	var doc *ExerciseGroupsDoc
	if err := c.do(ctx, "exercise_groups", http.MethodGet, "/exercise-groups", nil, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetExerciseGroupsByUser returns nil, nil when the user has no document yet.
func (c *Client) GetExerciseGroupsByUser(ctx context.Context) (*ExerciseGroupsDoc, error) {
	var doc *ExerciseGroupsDoc
	if err := c.do(ctx, "exercise_groups", http.MethodGet, "/exercise-groups/user", nil, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) UpsertExerciseGroups(ctx context.Context, doc *ExerciseGroupsDoc) (*ExerciseGroupsDoc, error) {
	saved := &ExerciseGroupsDoc{}
	if err := c.do(ctx, "exercise_groups", http.MethodPost, "/exercise-groups/upsert", nil, doc, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (c *Client) DeleteExerciseGroups(ctx context.Context, id string) error {
	return c.do(ctx, "exercise_groups", http.MethodDelete, "/exercise-groups/"+url.PathEscape(id), nil, nil, nil)
}
