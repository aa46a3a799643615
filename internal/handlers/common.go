package handlers

// CreateBuildingRequest is the POST /buildings/ payload. Coordinates
// are pointers so a supplied zero survives binding.
type CreateBuildingRequest struct {
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// CreateActivityRequest is the POST /activities/ payload.
type CreateActivityRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// CreateOrganizationRequest is the POST /organizations/ payload.
type CreateOrganizationRequest struct {
	Name       string   `json:"name" binding:"required"`
	BuildingID uint     `json:"building_id" binding:"required"`
	Phones     []string `json:"phones"`
	Activities []uint   `json:"activities"`
}
