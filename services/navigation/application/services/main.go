package services

import (
	"github.com/ghuser/navboard/pkg/app"
	"github.com/ghuser/navboard/pkg/cache"
	"github.com/ghuser/navboard/services/navigation/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Navigation *NavigationService
	Section    *SectionService
}

// New wires all navigation application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	menuCache := cache.NewMenuCache(a.Redis)
	return &Services{
		Navigation: NewNavigationService(postgres.NewItemRepository(a.Db, a.EventBus), menuCache),
		Section:    NewSectionService(postgres.NewSectionRepository(a.Db, a.EventBus), menuCache),
	}
}
