package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"driverp-api/models"
)

func intPtr(n int) *int { return &n }

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	location := models.Location{ID: "loc-1", Name: "Chengalpattu"}
	require.NoError(t, db.Create(&location).Error)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	bikes := []models.BuyBike{
		{
			ID: "bike-honda-2020", Title: "Honda CB Shine", Brand: "Honda",
			Category: "commuter", Price: 48000, Year: intPtr(2020),
			Kilometers: intPtr(34000), FuelType: "petrol", Color: "red",
			LocationID: &location.ID, CreatedAt: base,
		},
		{
			ID: "bike-honda-2018", Title: "Honda Activa", Brand: "Honda",
			Category: "scooter", Price: 52000, Year: intPtr(2018),
			Kilometers: intPtr(21000), FuelType: "petrol", Color: "grey",
			CreatedAt: base.Add(time.Hour),
		},
		{
			ID: "bike-re-2020", Title: "Royal Enfield Classic 350", Brand: "Royal Enfield",
			Category: "cruiser", Price: 165000, Year: intPtr(2020),
			Kilometers: intPtr(12000), FuelType: "petrol", Color: "black",
			Refurbished: true, CreatedAt: base.Add(2 * time.Hour),
		},
	}
	for i := range bikes {
		require.NoError(t, db.Create(&bikes[i]).Error)
	}
}

func TestGetBikesDefaultOrdering(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	w := doRequest(t, r, "GET", "/api/buybikes/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []models.BuyBike
	decodeBody(t, w, &bikes)
	require.Len(t, bikes, 3)

	// most recently created first
	assert.Equal(t, "bike-re-2020", bikes[0].ID)
	assert.Equal(t, "bike-honda-2018", bikes[1].ID)
	assert.Equal(t, "bike-honda-2020", bikes[2].ID)
}

func TestGetBikesFiltersCombineWithAND(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	w := doRequest(t, r, "GET", "/api/buybikes/?brand=Honda&year=2020", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []models.BuyBike
	decodeBody(t, w, &bikes)
	require.Len(t, bikes, 1)
	assert.Equal(t, "bike-honda-2020", bikes[0].ID)
}

func TestGetBikesBooleanFilter(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	w := doRequest(t, r, "GET", "/api/buybikes/?refurbished=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []models.BuyBike
	decodeBody(t, w, &bikes)
	require.Len(t, bikes, 1)
	assert.Equal(t, "bike-re-2020", bikes[0].ID)
}

func TestGetBikesLocationFilter(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	w := doRequest(t, r, "GET", "/api/buybikes/?location=loc-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []models.BuyBike
	decodeBody(t, w, &bikes)
	require.Len(t, bikes, 1)
	assert.Equal(t, "bike-honda-2020", bikes[0].ID)
	require.NotNil(t, bikes[0].Location)
	assert.Equal(t, "Chengalpattu", bikes[0].Location.Name)
}

func TestGetBikesSearchMatchesAnyField(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	// case-insensitive substring against the title
	w := doRequest(t, r, "GET", "/api/buybikes/?search=enfield", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []models.BuyBike
	decodeBody(t, w, &bikes)
	require.Len(t, bikes, 1)
	assert.Equal(t, "bike-re-2020", bikes[0].ID)

	// match through the location name
	w = doRequest(t, r, "GET", "/api/buybikes/?search=chengal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &bikes)
	require.Len(t, bikes, 1)
	assert.Equal(t, "bike-honda-2020", bikes[0].ID)
}

func TestGetBikesOrderingByPrice(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	w := doRequest(t, r, "GET", "/api/buybikes/?ordering=price", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []models.BuyBike
	decodeBody(t, w, &bikes)
	require.Len(t, bikes, 3)
	assert.Equal(t, "bike-honda-2020", bikes[0].ID)
	assert.Equal(t, "bike-re-2020", bikes[2].ID)

	w = doRequest(t, r, "GET", "/api/buybikes/?ordering=-price", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &bikes)
	require.Len(t, bikes, 3)
	assert.Equal(t, "bike-re-2020", bikes[0].ID)
}

func TestGetBikesEmptyResultIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	w := doRequest(t, r, "GET", "/api/buybikes/?brand=Yamaha", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetBikesRejectsMalformedFilterValues(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	w := doRequest(t, r, "GET", "/api/buybikes/?year=twentytwenty", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "GET", "/api/buybikes/?is_booked=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "GET", "/api/buybikes/?ordering=owner_count", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBikesIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	first := doRequest(t, r, "GET", "/api/buybikes/?brand=Honda&ordering=price", nil)
	second := doRequest(t, r, "GET", "/api/buybikes/?brand=Honda&ordering=price", nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetBikeDetail(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	r := newTestRouter(db, &fakeMailer{})

	w := doRequest(t, r, "GET", "/api/buybikes/bike-re-2020/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bike models.BuyBike
	decodeBody(t, w, &bike)
	assert.Equal(t, "Royal Enfield Classic 350", bike.Title)

	w = doRequest(t, r, "GET", "/api/buybikes/nope/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
