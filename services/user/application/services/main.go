package services

import (
	"github.com/ghuser/navboard/pkg/app"
	"github.com/ghuser/navboard/services/user/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	User *UserService
	Auth *AuthService
}

// New wires all user application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		User: NewUserService(repo),
		Auth: NewAuthService(repo, a.Logger),
	}
}
