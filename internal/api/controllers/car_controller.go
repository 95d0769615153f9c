package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carlog/internal/models/request_models"
	"carlog/internal/services"
	"carlog/pkg/utils"
)

type CarController struct {
	carService services.CarServiceInterface
}

func NewCarController(carService services.CarServiceInterface) *CarController {
	return &CarController{
		carService: carService,
	}
}

// saveUploadedImage stores an attached image part and returns its
// serving path. No file part is not an error: the caller falls back to
// whatever image value the body carried.
func saveUploadedImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}

	dst := filepath.Join(dir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(dst), nil
}

// AddCar godoc
// @Summary Add a car
// @Description Create a car owned by the authenticated account
// @Tags Cars
// @Accept mpfd
// @Produce json
// @Param request formData request_models.CreateCarRequest true "Car payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cars/add-car [post]
func (cc *CarController) AddCar(c *gin.Context) {

	var req request_models.CreateCarRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationErrors(c, utils.CollectValidationErrors(err))
		return
	}

	// An uploaded file supersedes any client-supplied image value.
	if path, err := saveUploadedImage(c); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create a new Car")
		return
	} else if path != "" {
		req.Image = path
	}

	car, err := cc.carService.CreateCar(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, car, "Car created successfully")
}

// EditCar godoc
// @Summary Edit a car
// @Description Overwrite brand and model of an owned car, optionally replacing its image
// @Tags Cars
// @Accept mpfd
// @Produce json
// @Param request formData request_models.EditCarRequest true "Car payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cars/edit-car [put]
func (cc *CarController) EditCar(c *gin.Context) {

	var req request_models.EditCarRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondValidationErrors(c, utils.CollectValidationErrors(err))
		return
	}

	if path, err := saveUploadedImage(c); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to edit the Car")
		return
	} else if path != "" {
		req.Image = path
	}

	car, err := cc.carService.EditCar(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, car, "Car updated successfully")
}

// DeleteCar godoc
// @Summary Delete a car
// @Description Delete an owned car, its image file and its index entry
// @Tags Cars
// @Accept json
// @Produce json
// @Param request body request_models.DeleteCarRequest true "Car id"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cars/delete-car [post]
func (cc *CarController) DeleteCar(c *gin.Context) {

	var req request_models.DeleteCarRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := cc.carService.DeleteCar(c.Request.Context(), req.ID, c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Car deleted successfully")
}

// GetCars godoc
// @Summary List cars
// @Description Fetch the authenticated account's cars in index order
// @Tags Cars
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cars [get]
func (cc *CarController) GetCars(c *gin.Context) {

	cars, err := cc.carService.ListCars(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cars, "Cars fetched successfully")
}
