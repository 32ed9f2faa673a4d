package repositories

import (
	"context"
	"sync"

	"github.com/Dosada05/scouting-system/models"
)

type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int]models.User
	nextID int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[int]models.User),
		nextID: 1,
	}
}

func cloneUser(u models.User) models.User {
	u.FullName = clonePtr(u.FullName)
	u.AvatarURL = clonePtr(u.AvatarURL)
	return u
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return ErrUserUsernameConflict
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	user = cloneUser(user)
	return &user, nil
}

func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			user = cloneUser(user)
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}
