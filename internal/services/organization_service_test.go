package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HardPrice/test-task-secunda/internal/database"
	"github.com/HardPrice/test-task-secunda/internal/models"
)

type fixture struct {
	db            database.Database
	buildings     *BuildingService
	activities    *ActivityService
	organizations *OrganizationService

	center *models.Building
	suburb *models.Building

	food  *models.Activity
	meat  *models.Activity
	dairy *models.Activity
	cars  *models.Activity

	butcher *models.Organization
	dairyCo *models.Organization
	garage  *models.Organization
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{db: newTestDB(t)}
	f.buildings = NewBuildingService(f.db)
	f.activities = NewActivityService(f.db, nil, 0)
	f.organizations = NewOrganizationService(f.db, f.activities)

	var err error
	f.center, err = f.buildings.Create(ctx, "Center street 1", 55.7558, 37.6173)
	require.NoError(t, err)
	f.suburb, err = f.buildings.Create(ctx, "Suburb road 2", 55.9000, 37.9000)
	require.NoError(t, err)

	f.food, err = f.activities.Create(ctx, "Food", nil)
	require.NoError(t, err)
	f.meat, err = f.activities.Create(ctx, "Meat", &f.food.ID)
	require.NoError(t, err)
	f.dairy, err = f.activities.Create(ctx, "Dairy", &f.food.ID)
	require.NoError(t, err)
	f.cars, err = f.activities.Create(ctx, "Cars", nil)
	require.NoError(t, err)

	f.butcher, err = f.organizations.Create(ctx, CreateOrganizationInput{
		Name:       "Butcher Shop",
		BuildingID: f.center.ID,
		Phones:     []string{"2-222-222"},
		Activities: []uint{f.meat.ID, f.dairy.ID},
	})
	require.NoError(t, err)

	f.dairyCo, err = f.organizations.Create(ctx, CreateOrganizationInput{
		Name:       "Dairy Kitchen",
		BuildingID: f.suburb.ID,
		Phones:     []string{"333-333-333"},
		Activities: []uint{f.dairy.ID},
	})
	require.NoError(t, err)

	f.garage, err = f.organizations.Create(ctx, CreateOrganizationInput{
		Name:       "Garage Masters",
		BuildingID: f.suburb.ID,
		Phones:     []string{"8-923-666-13-13"},
		Activities: []uint{f.cars.ID},
	})
	require.NoError(t, err)

	return f
}

func orgIDs(orgs []models.Organization) []uint {
	ids := make([]uint, 0, len(orgs))
	for _, org := range orgs {
		ids = append(ids, org.ID)
	}
	return ids
}

func TestSearchNoFilters(t *testing.T) {
	f := newFixture(t)

	orgs, err := f.organizations.Search(context.Background(), SearchFilters{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{f.butcher.ID, f.dairyCo.ID, f.garage.ID}, orgIDs(orgs))
}

func TestSearchByBuilding(t *testing.T) {
	f := newFixture(t)

	orgs, err := f.organizations.Search(context.Background(), SearchFilters{
		BuildingID: &f.suburb.ID,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{f.dairyCo.ID, f.garage.ID}, orgIDs(orgs))
}

func TestSearchByActivityExpandsDescendants(t *testing.T) {
	f := newFixture(t)

	// Food itself tags no organization; its children do.
	orgs, err := f.organizations.Search(context.Background(), SearchFilters{
		ActivityID: &f.food.ID,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{f.butcher.ID, f.dairyCo.ID}, orgIDs(orgs))
}

func TestSearchByActivityNoDuplicates(t *testing.T) {
	f := newFixture(t)

	// Butcher Shop carries both Meat and Dairy, which are both in the
	// expansion of Food; it must still appear exactly once.
	orgs, err := f.organizations.Search(context.Background(), SearchFilters{
		ActivityID: &f.food.ID,
	})
	require.NoError(t, err)

	seen := map[uint]int{}
	for _, org := range orgs {
		seen[org.ID]++
	}
	assert.Equal(t, 1, seen[f.butcher.ID])
}

func TestSearchByActivityLeaf(t *testing.T) {
	f := newFixture(t)

	orgs, err := f.organizations.Search(context.Background(), SearchFilters{
		ActivityID: &f.meat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{f.butcher.ID}, orgIDs(orgs))
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	f := newFixture(t)

	orgs, err := f.organizations.Search(context.Background(), SearchFilters{
		Name: "dAiRy",
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{f.dairyCo.ID}, orgIDs(orgs))
}

func TestSearchByRadius(t *testing.T) {
	f := newFixture(t)

	distance := HaversineMeters(f.center.Latitude, f.center.Longitude, f.suburb.Latitude, f.suburb.Longitude)

	// Radius covering only the center building.
	orgs, err := f.organizations.Search(context.Background(), SearchFilters{
		Geo: NewGeoFilter(GeoParams{
			Latitude:  &f.center.Latitude,
			Longitude: &f.center.Longitude,
			Radius:    fp(distance - 1),
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{f.butcher.ID}, orgIDs(orgs))

	// Radius reaching the suburb building as well.
	orgs, err = f.organizations.Search(context.Background(), SearchFilters{
		Geo: NewGeoFilter(GeoParams{
			Latitude:  &f.center.Latitude,
			Longitude: &f.center.Longitude,
			Radius:    fp(distance + 1),
		}),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{f.butcher.ID, f.dairyCo.ID, f.garage.ID}, orgIDs(orgs))
}

func TestSearchByBBox(t *testing.T) {
	f := newFixture(t)

	orgs, err := f.organizations.Search(context.Background(), SearchFilters{
		Geo: NewGeoFilter(GeoParams{
			BBoxMinLat: fp(55.7),
			BBoxMinLon: fp(37.5),
			BBoxMaxLat: fp(55.8),
			BBoxMaxLon: fp(37.7),
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{f.butcher.ID}, orgIDs(orgs))
}

func TestSearchCombinedFilters(t *testing.T) {
	f := newFixture(t)

	// Dairy activity AND suburb building: only Dairy Kitchen.
	orgs, err := f.organizations.Search(context.Background(), SearchFilters{
		BuildingID: &f.suburb.ID,
		ActivityID: &f.dairy.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{f.dairyCo.ID}, orgIDs(orgs))

	// Name filter that matches nothing in the building.
	orgs, err = f.organizations.Search(context.Background(), SearchFilters{
		BuildingID: &f.suburb.ID,
		Name:       "butcher",
	})
	require.NoError(t, err)
	assert.Empty(t, orgs)
}

func TestGetOrganization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	org, err := f.organizations.Get(ctx, f.butcher.ID)
	require.NoError(t, err)
	assert.Equal(t, "Butcher Shop", org.Name)
	require.NotNil(t, org.Building)
	assert.Equal(t, f.center.ID, org.Building.ID)
	require.Len(t, org.Phones, 1)
	assert.Equal(t, "2-222-222", org.Phones[0].Number)
	assert.Len(t, org.Activities, 2)

	_, err = f.organizations.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestCreateOrganizationBuildingNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.organizations.Create(context.Background(), CreateOrganizationInput{
		Name:       "Ghost",
		BuildingID: 9999,
	})
	assert.ErrorIs(t, err, ErrBuildingNotFound)
}

func TestCreateOrganizationActivityNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var before int64
	require.NoError(t, f.db.DB().Model(&models.Organization{}).Count(&before).Error)

	_, err := f.organizations.Create(ctx, CreateOrganizationInput{
		Name:       "Ghost",
		BuildingID: f.center.ID,
		Phones:     []string{"2-222-222"},
		Activities: []uint{f.meat.ID, 9999},
	})
	assert.ErrorIs(t, err, ErrActivityNotFound)

	// The failed write must not leave a partially created organization.
	var after int64
	require.NoError(t, f.db.DB().Model(&models.Organization{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestCreateOrganizationInvalidPhone(t *testing.T) {
	f := newFixture(t)

	_, err := f.organizations.Create(context.Background(), CreateOrganizationInput{
		Name:       "Bad Phones Inc",
		BuildingID: f.center.ID,
		Phones:     []string{"invalid-phone"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
	assert.Contains(t, err.Error(), "invalid-phone")
}

func TestCreateOrganizationWithoutActivities(t *testing.T) {
	f := newFixture(t)

	org, err := f.organizations.Create(context.Background(), CreateOrganizationInput{
		Name:       "Plain Org",
		BuildingID: f.center.ID,
		Phones:     []string{"2-222-222"},
	})
	require.NoError(t, err)
	assert.NotNil(t, org.Activities)
	assert.Empty(t, org.Activities)
}
