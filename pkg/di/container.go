package di

import (
	"errors"

	"gorm.io/gorm"

	"taskdeck/application/serviceimpl"
	"taskdeck/domain/repositories"
	"taskdeck/domain/services"
	"taskdeck/infrastructure/postgres"
	"taskdeck/infrastructure/rediscache"
	"taskdeck/interfaces/api/handlers"
	"taskdeck/pkg/config"
	"taskdeck/pkg/logger"
)

// Container wires configuration, infrastructure, repositories and services.
// Everything is passed explicitly; no package holds a global store handle.
type Container struct {
	Config *config.Config

	DB        *gorm.DB
	TaskCache *rediscache.TaskCache

	UserRepository     repositories.UserRepository
	TaskRepository     repositories.TaskRepository
	CategoryRepository repositories.CategoryRepository
	NoteRepository     repositories.NoteRepository

	UserService     services.UserService
	TaskService     services.TaskService
	CategoryService services.CategoryService
	NoteService     services.NoteService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	c.Config = config.Load()

	if c.Config.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if err := logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}); err != nil {
		return err
	}

	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver)

	// Cache is optional; the task service runs without it.
	if c.Config.Redis.URL != "" {
		cache, err := rediscache.NewTaskCache(c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, task cache disabled", "error", err)
		} else {
			c.TaskCache = cache
		}
	}

	c.UserRepository = postgres.NewUserRepository(db)
	c.TaskRepository = postgres.NewTaskRepository(db)
	c.CategoryRepository = postgres.NewCategoryRepository(db)
	c.NoteRepository = postgres.NewNoteRepository(db)

	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	if c.TaskCache != nil {
		c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TaskCache)
	} else {
		c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, nil)
	}
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.TaskRepository)
	c.NoteService = serviceimpl.NewNoteService(c.NoteRepository)

	return nil
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:     c.UserService,
		TaskService:     c.TaskService,
		CategoryService: c.CategoryService,
		NoteService:     c.NoteService,
	}
}

func (c *Container) Cleanup() error {
	if c.TaskCache != nil {
		if err := c.TaskCache.Close(); err != nil {
			logger.Error("Failed to close Redis", "error", err)
		}
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
