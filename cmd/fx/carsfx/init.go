package carsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"carlog/internal/repositories"
	"carlog/internal/services"
	"carlog/pkg/utils"
)

var Module = fx.Provide(
	provideCarRepo, provideImageCleaner, provideCarService)

func provideCarRepo(db *gorm.DB) repositories.CarRepository {
	return repositories.NewCarRepository(db)
}

func provideImageCleaner() utils.ImageCleaner {
	return utils.NewDiskImageCleaner()
}

func provideCarService(
	carRepo repositories.CarRepository,
	accountRepo repositories.AccountRepository,
	images utils.ImageCleaner,
) services.CarServiceInterface {
	return services.NewCarService(carRepo, accountRepo, images)
}
