package controllers

import (
	"github.com/gin-gonic/gin"

	"carlog/internal/models/request_models"
	"carlog/internal/services"
	"carlog/pkg/utils"
)

type CheckController struct {
	checkService services.CheckServiceInterface
}

func NewCheckController(checkService services.CheckServiceInterface) *CheckController {
	return &CheckController{
		checkService: checkService,
	}
}

// NewCheck godoc
// @Summary Add a maintenance check
// @Description Append a new check with its seed history entry to an owned car
// @Tags Checks
// @Accept json
// @Produce json
// @Param request body request_models.NewCheckRequest true "Check payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /checks/new-check [post]
func (cc *CheckController) NewCheck(c *gin.Context) {

	var req request_models.NewCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationErrors(c, utils.CollectValidationErrors(err))
		return
	}

	car, err := cc.checkService.AddCheck(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, car, "Check added successfully")
}

// EditCheck godoc
// @Summary Edit a maintenance check
// @Description Overwrite a check's name/color and one of its history entries
// @Tags Checks
// @Accept json
// @Produce json
// @Param request body request_models.EditCheckRequest true "Check payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /checks/edit-check [put]
func (cc *CheckController) EditCheck(c *gin.Context) {

	var req request_models.EditCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationErrors(c, utils.CollectValidationErrors(err))
		return
	}

	car, err := cc.checkService.EditCheck(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, car, "Check updated successfully")
}

// DeleteCheck godoc
// @Summary Delete a maintenance check
// @Description Remove the check at the given position
// @Tags Checks
// @Accept json
// @Produce json
// @Param request body request_models.DeleteCheckRequest true "Car id and check index"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /checks/delete-check [post]
func (cc *CheckController) DeleteCheck(c *gin.Context) {

	var req request_models.DeleteCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationErrors(c, utils.CollectValidationErrors(err))
		return
	}

	car, err := cc.checkService.DeleteCheck(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, car, "Check deleted successfully")
}

// CompleteCheck godoc
// @Summary Complete a maintenance check
// @Description Stamp the current head history entry as completed and open a fresh pending one
// @Tags Checks
// @Accept json
// @Produce json
// @Param request body request_models.CompleteCheckRequest true "Car id and check index"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /checks/complete-check [post]
func (cc *CheckController) CompleteCheck(c *gin.Context) {

	var req request_models.CompleteCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationErrors(c, utils.CollectValidationErrors(err))
		return
	}

	car, err := cc.checkService.CompleteCheck(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, car, "Check completed successfully")
}

// DeleteCheckHistoryItem godoc
// @Summary Delete a check history item
// @Description Remove the history entry at the given position within a check
// @Tags Checks
// @Accept json
// @Produce json
// @Param request body request_models.DeleteCheckHistoryItemRequest true "Car id, check index and history index"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /checks/delete-check-history-item [post]
func (cc *CheckController) DeleteCheckHistoryItem(c *gin.Context) {

	var req request_models.DeleteCheckHistoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationErrors(c, utils.CollectValidationErrors(err))
		return
	}

	car, err := cc.checkService.DeleteCheckHistoryItem(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, car, "Check history item deleted successfully")
}
