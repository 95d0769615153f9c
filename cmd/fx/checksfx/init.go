package checksfx

import (
	"go.uber.org/fx"

	"carlog/internal/repositories"
	"carlog/internal/services"
)

var Module = fx.Provide(
	provideCheckService)

func provideCheckService(carRepo repositories.CarRepository) services.CheckServiceInterface {
	return services.NewCheckService(carRepo)
}
