package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
	"taskdeck/infrastructure/memory"
	"taskdeck/pkg/apperrors"
)

// fakeCache records invalidations so cache wiring can be asserted.
type fakeCache struct {
	entries     map[string][]*models.Task
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]*models.Task)}
}

func (f *fakeCache) GetTasks(_ context.Context, userID uuid.UUID, timeframe string) ([]*models.Task, bool) {
	tasks, ok := f.entries[userID.String()+":"+timeframe]
	return tasks, ok
}

func (f *fakeCache) SetTasks(_ context.Context, userID uuid.UUID, timeframe string, tasks []*models.Task) {
	f.entries[userID.String()+":"+timeframe] = tasks
}

func (f *fakeCache) Invalidate(_ context.Context, _ uuid.UUID) {
	f.invalidated++
	f.entries = make(map[string][]*models.Task)
}

func newTaskService() (*memory.Store, *TaskServiceImpl) {
	store := memory.NewStore()
	svc := NewTaskService(memory.NewTaskRepository(store), nil).(*TaskServiceImpl)
	return store, svc
}

func createTaskReq(name string) *dto.CreateTaskRequest {
	return &dto.CreateTaskRequest{
		TaskName:      name,
		NumberOfUnits: 10,
		Timeframe:     models.TimeframeWeek,
		Duration:      48,
	}
}

func TestCreateTaskWindow(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	userID := uuid.New()

	before := time.Now()
	task, err := svc.CreateTask(ctx, userID, createTaskReq("Ship widgets"))
	after := time.Now()
	if err != nil {
		t.Fatalf("CreateTask err = %v", err)
	}

	if task.CreatedAt.Before(before) || task.CreatedAt.After(after) {
		t.Errorf("CreatedAt = %v outside [%v, %v]", task.CreatedAt, before, after)
	}
	if got := task.EndDate.Sub(task.CreatedAt); got != 48*time.Hour {
		t.Errorf("EndDate - CreatedAt = %v, want 48h", got)
	}
	if task.Color != "#FFFFFF" {
		t.Errorf("default Color = %q", task.Color)
	}
	if task.Priority != 0 {
		t.Errorf("default Priority = %d", task.Priority)
	}
}

func TestCreateTaskNameUniquePerUser(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	alice, bob := uuid.New(), uuid.New()

	if _, err := svc.CreateTask(ctx, alice, createTaskReq("Ship widgets")); err != nil {
		t.Fatalf("CreateTask err = %v", err)
	}

	// same name, same user: rejected
	_, err := svc.CreateTask(ctx, alice, createTaskReq("Ship widgets"))
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("duplicate CreateTask err = %v, want conflict", err)
	}

	// same name, different user: allowed
	if _, err := svc.CreateTask(ctx, bob, createTaskReq("Ship widgets")); err != nil {
		t.Errorf("CreateTask for other user err = %v", err)
	}
}

func TestGetTasksByTimeframe(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	userID := uuid.New()

	weekly := createTaskReq("Weekly report")
	daily := createTaskReq("Standup notes")
	daily.Timeframe = models.TimeframeDay
	if _, err := svc.CreateTask(ctx, userID, weekly); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateTask(ctx, userID, daily); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		timeframe string
		want      int
	}{
		{"week", 1},
		{"day", 1},
		{"month", 0},
		{"none", 2}, // "none" is no filter, not the bucket
	}
	for _, tt := range tests {
		t.Run(tt.timeframe, func(t *testing.T) {
			tasks, err := svc.GetTasksByTimeframe(ctx, userID, tt.timeframe)
			if err != nil {
				t.Fatalf("GetTasksByTimeframe err = %v", err)
			}
			if len(tasks) != tt.want {
				t.Errorf("got %d tasks, want %d", len(tasks), tt.want)
			}
		})
	}

	if _, err := svc.GetTasksByTimeframe(ctx, userID, "year"); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("invalid timeframe err = %v, want validation error", err)
	}
}

func TestUpdateCompletedUnitsNoUpperBound(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, createTaskReq("Ship widgets"))
	if err != nil {
		t.Fatal(err)
	}

	// progress past the target is accepted
	updated, err := svc.UpdateCompletedUnits(ctx, userID, task.ID, 25)
	if err != nil {
		t.Fatalf("UpdateCompletedUnits err = %v", err)
	}
	if updated.CompletedUnits != 25 {
		t.Errorf("CompletedUnits = %d, want 25", updated.CompletedUnits)
	}
}

func TestUpdatePriority(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, createTaskReq("Ship widgets"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.UpdatePriority(ctx, userID, task.ID, -1); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("negative priority err = %v, want validation error", err)
	}

	updated, err := svc.UpdatePriority(ctx, userID, task.ID, 3)
	if err != nil {
		t.Fatalf("UpdatePriority err = %v", err)
	}
	if updated.Priority != 3 {
		t.Errorf("Priority = %d, want 3", updated.Priority)
	}
}

func TestUpdateWindow(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, createTaskReq("Ship widgets"))
	if err != nil {
		t.Fatal(err)
	}

	start := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Hour)

	if _, err := svc.UpdateWindow(ctx, userID, task.ID, end, start); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("inverted window err = %v, want validation error", err)
	}

	updated, err := svc.UpdateWindow(ctx, userID, task.ID, start, end)
	if err != nil {
		t.Fatalf("UpdateWindow err = %v", err)
	}
	if !updated.CreatedAt.Equal(start) || !updated.EndDate.Equal(end) {
		t.Errorf("window = [%v, %v], want [%v, %v]", updated.CreatedAt, updated.EndDate, start, end)
	}
	if updated.Duration != 6 {
		t.Errorf("Duration = %v, want 6 (recomputed from explicit bounds)", updated.Duration)
	}
}

func TestUpdateTaskRename(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, createTaskReq("Ship widgets"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateTask(ctx, userID, createTaskReq("Pack boxes")); err != nil {
		t.Fatal(err)
	}

	taken := "Pack boxes"
	if _, err := svc.UpdateTask(ctx, userID, task.ID, &dto.UpdateTaskRequest{TaskName: &taken}); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("rename to taken name err = %v, want conflict", err)
	}

	fresh := "Ship gadgets"
	updated, err := svc.UpdateTask(ctx, userID, task.ID, &dto.UpdateTaskRequest{TaskName: &fresh})
	if err != nil {
		t.Fatalf("UpdateTask err = %v", err)
	}
	if updated.TaskName != fresh {
		t.Errorf("TaskName = %q, want %q", updated.TaskName, fresh)
	}
	if !updated.UpdatedAt.After(task.CreatedAt) {
		t.Error("UpdatedAt not bumped")
	}
}

func TestMoveTask(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, createTaskReq("Ship widgets"))
	if err != nil {
		t.Fatal(err)
	}

	status := "in_progress"
	tf := models.TimeframeMonth
	moved, err := svc.MoveTask(ctx, userID, task.ID, &dto.MoveTaskRequest{Status: &status, Timeframe: &tf})
	if err != nil {
		t.Fatalf("MoveTask err = %v", err)
	}
	if moved.Status != status || moved.Timeframe != tf {
		t.Errorf("moved = %q/%q, want %q/%q", moved.Status, moved.Timeframe, status, tf)
	}
}

func TestTaskOwnership(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	owner, stranger := uuid.New(), uuid.New()

	task, err := svc.CreateTask(ctx, owner, createTaskReq("Ship widgets"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetTask(ctx, stranger, task.ID); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("foreign GetTask err = %v, want forbidden", err)
	}
	if err := svc.DeleteTask(ctx, stranger, task.ID); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("foreign DeleteTask err = %v, want forbidden", err)
	}
	if _, err := svc.GetTask(ctx, owner, uuid.New()); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("missing GetTask err = %v, want not found", err)
	}
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	_, svc := newTaskService()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, createTaskReq("Ship widgets"))
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteTask(ctx, userID, task.ID); err != nil {
		t.Fatalf("DeleteTask err = %v", err)
	}

	tasks, err := svc.GetUserTasks(ctx, userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks after delete, want 0", len(tasks))
	}
}

func TestTaskCacheInvalidation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cache := newFakeCache()
	svc := NewTaskService(memory.NewTaskRepository(store), cache).(*TaskServiceImpl)
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, createTaskReq("Ship widgets"))
	if err != nil {
		t.Fatal(err)
	}
	if cache.invalidated == 0 {
		t.Error("create did not invalidate cache")
	}

	// a listing populates the cache, a second one hits it
	if _, err := svc.GetUserTasks(ctx, userID); err != nil {
		t.Fatal(err)
	}
	if len(cache.entries) == 0 {
		t.Error("listing did not populate cache")
	}

	n := cache.invalidated
	if _, err := svc.UpdateCompletedUnits(ctx, userID, task.ID, 5); err != nil {
		t.Fatal(err)
	}
	if cache.invalidated <= n {
		t.Error("update did not invalidate cache")
	}
}
