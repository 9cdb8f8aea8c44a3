package memory

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.PhoneNumber == user.PhoneNumber || u.Pincode == user.Pincode {
			return errDuplicated
		}
	}

	r.store.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, errNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByPhoneNumber(_ context.Context, phoneNumber string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.PhoneNumber == phoneNumber {
			user := u
			return &user, nil
		}
	}
	return nil, errNotFound
}

func (r *UserRepository) GetByPincode(_ context.Context, pincode string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Pincode == pincode {
			user := u
			return &user, nil
		}
	}
	return nil, errNotFound
}

func (r *UserRepository) Update(_ context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return errNotFound
	}
	for id, u := range r.store.users {
		if id != user.ID && u.Pincode == user.Pincode {
			return errDuplicated
		}
	}

	r.store.users[user.ID] = *user
	return nil
}
