package services

import (
	"researchflow/models"
	"researchflow/repositories"
)

type TeamService interface {
	Overview() models.TeamOverview
	GetUser(id string) (*models.User, error)
}

type teamService struct {
	userRepo repositories.UserRepository
}

func NewTeamService(userRepo repositories.UserRepository) TeamService {
	return &teamService{userRepo: userRepo}
}

func (s *teamService) Overview() models.TeamOverview {
	users := s.userRepo.GetAll()

	counts := make(map[models.UserRole]int)
	for _, u := range users {
		counts[u.Role]++
	}

	roles := make([]models.RoleCount, 0, len(models.AllRoles()))
	for _, r := range models.AllRoles() {
		roles = append(roles, models.RoleCount{Role: r, Label: r.Label(), Count: counts[r]})
	}
	return models.TeamOverview{Roles: roles, Members: users}
}

func (s *teamService) GetUser(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
