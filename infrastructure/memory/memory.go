// Package memory provides in-memory repository implementations with the same
// error semantics as the GORM-backed ones (gorm.ErrRecordNotFound,
// gorm.ErrDuplicatedKey). Used for tests and as a substitutable store.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/domain/models"
)

// Store holds all four collections behind one lock.
type Store struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]models.User
	tasks      map[uuid.UUID]models.Task
	categories map[uuid.UUID]models.Category
	notes      map[uuid.UUID]models.Note
}

func NewStore() *Store {
	return &Store{
		users:      make(map[uuid.UUID]models.User),
		tasks:      make(map[uuid.UUID]models.Task),
		categories: make(map[uuid.UUID]models.Category),
		notes:      make(map[uuid.UUID]models.Note),
	}
}

var errNotFound = gorm.ErrRecordNotFound
var errDuplicated = gorm.ErrDuplicatedKey

func sortTasks(tasks []*models.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}
