package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HardPrice/test-task-secunda/internal/services"
	"github.com/HardPrice/test-task-secunda/pkg/utils"
)

type BuildingHandler struct {
	buildings *services.BuildingService
}

func NewBuildingHandler(buildings *services.BuildingService) *BuildingHandler {
	return &BuildingHandler{buildings: buildings}
}

// List godoc
// @Summary List all buildings
// @Tags buildings
// @Produce json
// @Success 200 {array} models.Building
// @Router /api/v1/buildings/ [get]
func (h *BuildingHandler) List(c *gin.Context) {
	buildings, err := h.buildings.List(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.JSONResponse(c, http.StatusOK, buildings)
}

// Create godoc
// @Summary Create a building
// @Tags buildings
// @Accept json
// @Produce json
// @Success 201 {object} models.Building
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/buildings/ [post]
func (h *BuildingHandler) Create(c *gin.Context) {
	var req CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, err.Error())
		return
	}

	if err := utils.ValidateCoordinates(*req.Latitude, *req.Longitude); err != nil {
		utils.UnprocessableEntity(c, err.Error())
		return
	}

	building, err := h.buildings.Create(c.Request.Context(), req.Address, *req.Latitude, *req.Longitude)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.JSONResponse(c, http.StatusCreated, building)
}
