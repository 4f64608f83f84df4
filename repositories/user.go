//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"quickchat/errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(user User) (string, error)
	GetUserByUsername(username string) (User, error)
}

// User is the registered account of the session.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CellPhone    string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// UserRepository keeps accounts for the lifetime of the process only.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]User
}

func NewUserRepository() IUserRepository {
	return &UserRepository{users: make(map[string]User)}
}

// CreateUser stores the user and returns its newly generated ID.
func (u *UserRepository) CreateUser(user User) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.users[user.Username]; ok {
		return "", errors.ErrUserAlreadyExists
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now().UTC()
	u.users[user.Username] = user
	return user.ID, nil
}

func (u *UserRepository) GetUserByUsername(username string) (User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.users[username]
	if !ok {
		return User{}, errors.ErrNotFound
	}
	return user, nil
}
