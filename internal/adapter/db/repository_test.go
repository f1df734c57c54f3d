package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/core/domain"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := ConnectSQLite(filepath.Join(t.TempDir(), "tasklist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func insertTaskAt(t *testing.T, db *sqlx.DB, title, createdAt string) uint64 {
	t.Helper()
	result, err := db.Exec("INSERT INTO tasks (title, created_at, updated_at) VALUES (?, ?, ?)", title, createdAt, createdAt)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)
	return uint64(id)
}

func insertStepAt(t *testing.T, db *sqlx.DB, taskID uint64, description, completedAt string) uint64 {
	t.Helper()
	result, err := db.Exec("INSERT INTO completed_steps (task_id, description, completed_at) VALUES (?, ?, ?)", taskID, description, completedAt)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)
	return uint64(id)
}

func ptr[T any](value T) *T {
	return &value
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Migrate(context.Background(), db))
}

func TestTaskRepository_CreateTask_Defaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	task, err := repo.CreateTask(context.Background(), domain.CreateTaskInput{
		Title:      "Write the README",
		Milestones: ptr("- [ ] outline"),
	})
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.Equal(t, "Write the README", task.Title)
	assert.Equal(t, domain.TaskStatusActive, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.NextStep)
	assert.Nil(t, task.Notes)
	assert.Nil(t, task.ProjectID)
	assert.Nil(t, task.LastStep)
	require.NotNil(t, task.Milestones)
	assert.Equal(t, "- [ ] outline", *task.Milestones)
	assert.False(t, task.CreatedAt.IsZero())
	assert.False(t, task.UpdatedAt.IsZero())
}

func TestTaskRepository_CreateThenList_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, domain.CreateTaskInput{Title: "A"})
	require.NoError(t, err)

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)
	assert.Equal(t, "A", tasks[0].Title)
	assert.Nil(t, tasks[0].NextStep)
}

func TestTaskRepository_ListTasks_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	older := insertTaskAt(t, db, "older", "2026-01-01 09:00:00")
	newer := insertTaskAt(t, db, "newer", "2026-01-02 09:00:00")
	sameSecond := insertTaskAt(t, db, "same second as newer", "2026-01-02 09:00:00")

	tasks, err := NewTaskRepository(db).ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []uint64{sameSecond, newer, older}, []uint64{tasks[0].ID, tasks[1].ID, tasks[2].ID})
	assert.Equal(t, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC), tasks[2].CreatedAt)
}

func TestTaskRepository_ListTasks_LatestStepWithoutFanOut(t *testing.T) {
	db := setupTestDB(t)
	withSteps := insertTaskAt(t, db, "with steps", "2026-01-01 09:00:00")
	withoutSteps := insertTaskAt(t, db, "without steps", "2026-01-01 08:00:00")
	insertStepAt(t, db, withSteps, "first", "2026-01-03 10:00:00")
	insertStepAt(t, db, withSteps, "latest", "2026-01-05 10:00:00")
	insertStepAt(t, db, withSteps, "middle", "2026-01-04 10:00:00")

	tasks, err := NewTaskRepository(db).ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, withSteps, tasks[0].ID)
	require.NotNil(t, tasks[0].LastStep)
	assert.Equal(t, "latest", tasks[0].LastStep.Description)
	assert.Equal(t, time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), tasks[0].LastStep.CompletedAt)

	assert.Equal(t, withoutSteps, tasks[1].ID)
	assert.Nil(t, tasks[1].LastStep)
}

func TestTaskRepository_LatestStep_TieBrokenByHighestID(t *testing.T) {
	db := setupTestDB(t)
	taskID := insertTaskAt(t, db, "tied", "2026-01-01 09:00:00")
	insertStepAt(t, db, taskID, "inserted first", "2026-01-03 10:00:00")
	insertStepAt(t, db, taskID, "inserted second", "2026-01-03 10:00:00")

	task, err := NewTaskRepository(db).GetTask(context.Background(), taskID)
	require.NoError(t, err)
	require.NotNil(t, task.LastStep)
	assert.Equal(t, "inserted second", task.LastStep.Description)
}

func TestTaskRepository_GetTask_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewTaskRepository(db).GetTask(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_UpdateTask_OnlyTouchesPresentFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, domain.CreateTaskInput{Title: "Patch me", Notes: ptr("keep")})
	require.NoError(t, err)
	_, err = repo.UpdateTask(ctx, created.ID, domain.TaskPatch{NextStep: domain.Some("call Bob")})
	require.NoError(t, err)
	_, err = db.Exec("UPDATE tasks SET updated_at = '2020-01-01 00:00:00' WHERE task_id = ?", created.ID)
	require.NoError(t, err)
	before, err := repo.GetTask(ctx, created.ID)
	require.NoError(t, err)

	done := domain.TaskStatusDone
	after, err := repo.UpdateTask(ctx, created.ID, domain.TaskPatch{Status: &done})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusDone, after.Status)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Priority, after.Priority)
	assert.Equal(t, before.NextStep, after.NextStep)
	assert.Equal(t, before.Milestones, after.Milestones)
	assert.Equal(t, before.Notes, after.Notes)
	assert.Equal(t, before.ProjectID, after.ProjectID)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestTaskRepository_UpdateTask_NullClearsField(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, domain.CreateTaskInput{Title: "Clear me", Milestones: ptr("m")})
	require.NoError(t, err)
	_, err = repo.UpdateTask(ctx, created.ID, domain.TaskPatch{NextStep: domain.Some("n")})
	require.NoError(t, err)

	updated, err := repo.UpdateTask(ctx, created.ID, domain.TaskPatch{NextStep: domain.Null[string]()})
	require.NoError(t, err)

	assert.Nil(t, updated.NextStep)
	require.NotNil(t, updated.Milestones)
	assert.Equal(t, "m", *updated.Milestones)
}

func TestTaskRepository_UpdateTask_NotFound(t *testing.T) {
	db := setupTestDB(t)
	title := "ghost"

	_, err := NewTaskRepository(db).UpdateTask(context.Background(), 404, domain.TaskPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_UpdateTask_EmptyPatch(t *testing.T) {
	db := setupTestDB(t)
	id := insertTaskAt(t, db, "x", "2026-01-01 09:00:00")

	_, err := NewTaskRepository(db).UpdateTask(context.Background(), id, domain.TaskPatch{})
	assert.True(t, domain.IsValidationError(err))
}

func TestTaskRepository_UpdateTask_ProjectAssignment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	result, err := db.Exec("INSERT INTO projects (name) VALUES ('Home')")
	require.NoError(t, err)
	projectID, err := result.LastInsertId()
	require.NoError(t, err)
	taskID := insertTaskAt(t, db, "x", "2026-01-01 09:00:00")

	assigned, err := repo.UpdateTask(ctx, taskID, domain.TaskPatch{ProjectID: domain.Some(uint64(projectID))})
	require.NoError(t, err)
	require.NotNil(t, assigned.ProjectID)
	assert.Equal(t, uint64(projectID), *assigned.ProjectID)

	cleared, err := repo.UpdateTask(ctx, taskID, domain.TaskPatch{ProjectID: domain.Null[uint64]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.ProjectID)
}

func TestSchema_RejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Exec("INSERT INTO tasks (title, status) VALUES ('x', 'blocked')")
	assert.Error(t, err)
}

func TestSchema_DeletingTaskCascadesToSteps(t *testing.T) {
	db := setupTestDB(t)
	doomed := insertTaskAt(t, db, "doomed", "2026-01-01 09:00:00")
	kept := insertTaskAt(t, db, "kept", "2026-01-01 09:00:00")
	insertStepAt(t, db, doomed, "a", "2026-01-02 09:00:00")
	insertStepAt(t, db, doomed, "b", "2026-01-02 10:00:00")
	insertStepAt(t, db, kept, "c", "2026-01-02 11:00:00")

	_, err := db.Exec("DELETE FROM tasks WHERE task_id = ?", doomed)
	require.NoError(t, err)

	steps, err := NewStepRepository(db).ListSteps(context.Background(), domain.StepFilter{})
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, kept, steps[0].TaskID)
}

func TestStepRepository_AddStep_ShowsUpAsLastStep(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	taskID := insertTaskAt(t, db, "x", "2026-01-01 09:00:00")

	step, err := NewStepRepository(db).AddStep(ctx, taskID, "x")
	require.NoError(t, err)
	assert.NotZero(t, step.ID)
	assert.Equal(t, taskID, step.TaskID)
	assert.Equal(t, "x", step.Description)
	assert.False(t, step.CompletedAt.IsZero())

	tasks, err := NewTaskRepository(db).ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].LastStep)
	assert.Equal(t, "x", tasks[0].LastStep.Description)
}

func TestStepRepository_AddStep_UnknownTaskFails(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewStepRepository(db).AddStep(context.Background(), 12345, "orphan")

	var storageErr *domain.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestStepRepository_ListSteps_OrderAndFilter(t *testing.T) {
	db := setupTestDB(t)
	first := insertTaskAt(t, db, "first", "2026-01-01 09:00:00")
	second := insertTaskAt(t, db, "second", "2026-01-01 09:00:00")
	insertStepAt(t, db, first, "old", "2026-01-02 09:00:00")
	insertStepAt(t, db, second, "other", "2026-01-03 09:00:00")
	insertStepAt(t, db, first, "new", "2026-01-04 09:00:00")
	repo := NewStepRepository(db)
	ctx := context.Background()

	all, err := repo.ListSteps(ctx, domain.StepFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "other", "old"}, []string{all[0].Description, all[1].Description, all[2].Description})

	filtered, err := repo.ListSteps(ctx, domain.StepFilter{TaskID: &first})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "new", filtered[0].Description)
	assert.Equal(t, "old", filtered[1].Description)
}

func TestStepRepository_CompleteStep_ClearsNextStep(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	tasks := NewTaskRepository(db)
	created, err := tasks.CreateTask(ctx, domain.CreateTaskInput{Title: "x"})
	require.NoError(t, err)
	_, err = tasks.UpdateTask(ctx, created.ID, domain.TaskPatch{NextStep: domain.Some("book flights")})
	require.NoError(t, err)

	step, err := NewStepRepository(db).CompleteStep(ctx, created.ID, "book flights")
	require.NoError(t, err)
	assert.Equal(t, "book flights", step.Description)

	task, err := tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, task.NextStep)
	require.NotNil(t, task.LastStep)
	assert.Equal(t, "book flights", task.LastStep.Description)
}

func TestStepRepository_CompleteStep_UnknownTaskWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStepRepository(db)
	ctx := context.Background()

	_, err := repo.CompleteStep(ctx, 77, "nope")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	steps, err := repo.ListSteps(ctx, domain.StepFilter{})
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestStepRepository_CompleteStep_RollsBackWhenClearFails(t *testing.T) {
	db := setupTestDB(t)
	id := insertTaskAt(t, db, "Write docs", "2026-02-01 09:00:00")
	_, err := db.Exec("UPDATE tasks SET next_step = ? WHERE task_id = ?", "draft intro", id)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TRIGGER fail_clear_next_step BEFORE UPDATE OF next_step ON tasks
		BEGIN SELECT RAISE(ABORT, 'clear failed'); END`)
	require.NoError(t, err)

	repo := NewStepRepository(db)
	ctx := context.Background()

	_, err = repo.CompleteStep(ctx, id, "draft intro")
	require.Error(t, err)
	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "complete step", storageErr.Op)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM completed_steps"))
	assert.Zero(t, count)

	var nextStep *string
	require.NoError(t, db.Get(&nextStep, "SELECT next_step FROM tasks WHERE task_id = ?", id))
	require.NotNil(t, nextStep)
	assert.Equal(t, "draft intro", *nextStep)
}

func TestProjectRepository_ListProjectsByName(t *testing.T) {
	db := setupTestDB(t)
	for _, name := range []string{"Work", "Garden", "Home"} {
		_, err := db.Exec("INSERT INTO projects (name) VALUES (?)", name)
		require.NoError(t, err)
	}
	repo := NewProjectRepository(db)
	ctx := context.Background()

	projects, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, []string{"Garden", "Home", "Work"}, []string{projects[0].Name, projects[1].Name, projects[2].Name})

	exists, err := repo.ProjectExists(ctx, projects[0].ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ProjectExists(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	inserted, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, inserted)

	tasks, err := NewTaskRepository(db).ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, len(sampleTasks))

	inserted, err = Seed(ctx, db)
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestBuildTaskUpdate(t *testing.T) {
	priority := domain.TaskPriorityHigh
	query, args := buildTaskUpdate(7, domain.TaskPatch{Priority: &priority, Notes: domain.Null[string]()})

	assert.Equal(t, "UPDATE tasks SET priority = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE task_id = ?", query)
	assert.Equal(t, []any{"high", nil, uint64(7)}, args)

	query, args = buildTaskUpdate(7, domain.TaskPatch{})
	assert.Empty(t, query)
	assert.Nil(t, args)
}
