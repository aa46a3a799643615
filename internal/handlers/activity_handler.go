package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HardPrice/test-task-secunda/internal/services"
	"github.com/HardPrice/test-task-secunda/pkg/utils"
)

type ActivityHandler struct {
	activities *services.ActivityService
}

func NewActivityHandler(activities *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// List godoc
// @Summary List all activities with their children
// @Tags activities
// @Produce json
// @Success 200 {array} models.Activity
// @Router /api/v1/activities/ [get]
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activities.List(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.JSONResponse(c, http.StatusOK, activities)
}

// Create godoc
// @Summary Create an activity
// @Description Creates a category node; nesting is limited to 3 levels.
// @Tags activities
// @Accept json
// @Produce json
// @Success 201 {object} models.Activity
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/activities/ [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, err.Error())
		return
	}

	activity, err := h.activities.Create(c.Request.Context(), req.Name, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrActivityNotFound):
			utils.NotFound(c, "parent activity not found")
		case errors.Is(err, services.ErrMaxActivityDepth):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalServerError(c, err.Error())
		}
		return
	}
	utils.JSONResponse(c, http.StatusCreated, activity)
}
