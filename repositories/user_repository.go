package repositories

import (
	"fmt"
	"slices"

	"researchflow/models"
)

type UserRepository interface {
	GetAll() []models.User
	GetByID(id string) (*models.User, error)
}

type userRepository struct {
	users []models.User
}

func NewUserRepository(seed *Seed) UserRepository {
	return &userRepository{users: slices.Clone(seed.Users)}
}

func (r *userRepository) GetAll() []models.User {
	return slices.Clone(r.users)
}

func (r *userRepository) GetByID(id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, models.ErrorNotFound{Message: fmt.Sprintf("user %q not found", id)}
}
