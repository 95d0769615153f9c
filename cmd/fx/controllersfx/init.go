package controllersfx

import (
	"go.uber.org/fx"

	"carlog/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCarController),
	fx.Provide(controllers.NewCheckController))
