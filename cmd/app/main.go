package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"carlog/cmd/fx/accountfx"
	"carlog/cmd/fx/carsfx"
	"carlog/cmd/fx/checksfx"
	"carlog/cmd/fx/controllersfx"
	"carlog/cmd/fx/dbfx"
	"carlog/internal/api/controllers"
	"carlog/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		carsfx.Module,
		checksfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	carController *controllers.CarController,
	checkController *controllers.CheckController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, carController, checkController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	carController *controllers.CarController,
	checkController *controllers.CheckController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	carsGroup := r.Group("/cars")
	carsGroup.Use(middleware.JWTAuthMiddleware())
	carsGroup.GET("", carController.GetCars)
	carsGroup.POST("/add-car", carController.AddCar)
	carsGroup.PUT("/edit-car", carController.EditCar)
	carsGroup.POST("/delete-car", carController.DeleteCar)

	checksGroup := r.Group("/checks")
	checksGroup.Use(middleware.JWTAuthMiddleware())
	checksGroup.POST("/new-check", checkController.NewCheck)
	checksGroup.PUT("/edit-check", checkController.EditCheck)
	checksGroup.POST("/delete-check", checkController.DeleteCheck)
	checksGroup.POST("/complete-check", checkController.CompleteCheck)
	checksGroup.POST("/delete-check-history-item", checkController.DeleteCheckHistoryItem)
}
