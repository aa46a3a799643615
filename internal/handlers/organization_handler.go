package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HardPrice/test-task-secunda/internal/services"
	"github.com/HardPrice/test-task-secunda/pkg/utils"
)

type OrganizationHandler struct {
	organizations *services.OrganizationService
}

func NewOrganizationHandler(organizations *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizations: organizations}
}

// List godoc
// @Summary Search organizations
// @Description Filters: building_id, activity_id (expanded to descendant
// categories), name substring, and location as either latitude+longitude+radius
// (meters) or the four bbox_* bounds. All filters combine with AND.
// @Tags organizations
// @Produce json
// @Success 200 {array} models.Organization
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/organizations/ [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	var filters services.SearchFilters

	buildingID, err := queryUint(c, "building_id")
	if err != nil {
		utils.UnprocessableEntity(c, "building_id must be a positive integer")
		return
	}
	filters.BuildingID = buildingID

	activityID, err := queryUint(c, "activity_id")
	if err != nil {
		utils.UnprocessableEntity(c, "activity_id must be a positive integer")
		return
	}
	filters.ActivityID = activityID

	filters.Name = c.Query("name")

	var geo services.GeoParams
	geoParams := []struct {
		name string
		dest **float64
	}{
		{"latitude", &geo.Latitude},
		{"longitude", &geo.Longitude},
		{"radius", &geo.Radius},
		{"bbox_min_lat", &geo.BBoxMinLat},
		{"bbox_min_lon", &geo.BBoxMinLon},
		{"bbox_max_lat", &geo.BBoxMaxLat},
		{"bbox_max_lon", &geo.BBoxMaxLon},
	}
	for _, p := range geoParams {
		value, err := queryFloat(c, p.name)
		if err != nil {
			utils.UnprocessableEntity(c, p.name+" must be a number")
			return
		}
		*p.dest = value
	}
	filters.Geo = services.NewGeoFilter(geo)

	organizations, err := h.organizations.Search(c.Request.Context(), filters)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.JSONResponse(c, http.StatusOK, organizations)
}

// Get godoc
// @Summary Get an organization by id
// @Tags organizations
// @Produce json
// @Success 200 {object} models.Organization
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/organizations/{id} [get]
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.UnprocessableEntity(c, "id must be a positive integer")
		return
	}

	organization, err := h.organizations.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrganizationNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.JSONResponse(c, http.StatusOK, organization)
}

// Create godoc
// @Summary Create an organization
// @Description Atomically creates the organization with its phones and
// activity associations.
// @Tags organizations
// @Accept json
// @Produce json
// @Success 201 {object} models.Organization
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/organizations/ [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, err.Error())
		return
	}

	organization, err := h.organizations.Create(c.Request.Context(), services.CreateOrganizationInput{
		Name:       req.Name,
		BuildingID: req.BuildingID,
		Phones:     req.Phones,
		Activities: req.Activities,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPhoneNumber):
			utils.UnprocessableEntity(c, err.Error())
		case errors.Is(err, services.ErrBuildingNotFound),
			errors.Is(err, services.ErrActivityNotFound):
			utils.NotFound(c, err.Error())
		default:
			utils.InternalServerError(c, err.Error())
		}
		return
	}
	utils.JSONResponse(c, http.StatusCreated, organization)
}

func queryUint(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	id := uint(value)
	return &id, nil
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
