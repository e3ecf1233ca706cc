package handlers

import (
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/utils"
)

// fakeDonationService records which operation the handler routed to.
type fakeDonationService struct {
	listCalls   []domain.DonationFilter
	nearbyCalls []domain.NearbyDonationsRequest
}

func (f *fakeDonationService) CreateDonation(context.Context, domain.Identity, domain.CreateDonationRequest) (*domain.DonationResponse, error) {
	return &domain.DonationResponse{}, nil
}

func (f *fakeDonationService) GetDonations(_ context.Context, filter domain.DonationFilter) ([]*domain.DonationResponse, int64, error) {
	f.listCalls = append(f.listCalls, filter)
	return []*domain.DonationResponse{}, 0, nil
}

func (f *fakeDonationService) GetDonationByID(context.Context, string) (*domain.DonationResponse, error) {
	return &domain.DonationResponse{}, nil
}

func (f *fakeDonationService) GetMyDonations(context.Context, domain.Identity, int, int) ([]*domain.DonationResponse, int64, error) {
	return nil, 0, nil
}

func (f *fakeDonationService) UpdateDonation(context.Context, domain.Identity, string, domain.UpdateDonationRequest) (*domain.DonationResponse, error) {
	return &domain.DonationResponse{}, nil
}

func (f *fakeDonationService) DeleteDonation(context.Context, domain.Identity, string) error {
	return nil
}

func (f *fakeDonationService) GetNearbyDonations(_ context.Context, req domain.NearbyDonationsRequest) ([]*domain.NearbyDonation, error) {
	f.nearbyCalls = append(f.nearbyCalls, req)
	return []*domain.NearbyDonation{}, nil
}

func (f *fakeDonationService) UploadDonationImage(context.Context, domain.Identity, string, *multipart.FileHeader) (*domain.DonationResponse, error) {
	return &domain.DonationResponse{}, nil
}

func newDonationTestApp(svc *fakeDonationService) *fiber.App {
	utils.InitValidator()
	h := NewDonationHandler(svc, utils.Validate)

	app := fiber.New()
	app.Get("/api/v1/donations", h.GetDonations)
	app.Get("/api/v1/donations/nearby", h.GetNearbyDonations)
	return app
}

func TestListDonationsWithCoordinatesUsesGeoSearch(t *testing.T) {
	svc := &fakeDonationService{}
	app := newDonationTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/donations?latitude=0.3476&longitude=32.5825&radius=25", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, svc.nearbyCalls, 1)
	assert.Empty(t, svc.listCalls)
	assert.InDelta(t, 0.3476, svc.nearbyCalls[0].Latitude, 1e-9)
	assert.InDelta(t, 32.5825, svc.nearbyCalls[0].Longitude, 1e-9)
	assert.InDelta(t, 25, svc.nearbyCalls[0].Radius, 1e-9)
}

func TestListDonationsWithoutCoordinatesStaysPlainList(t *testing.T) {
	svc := &fakeDonationService{}
	app := newDonationTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/donations?status=available", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, svc.listCalls, 1)
	assert.Empty(t, svc.nearbyCalls)
	assert.Equal(t, domain.DonationStatusAvailable, svc.listCalls[0].Status)
}

func TestNearbyRadiusDefaultsAndClamps(t *testing.T) {
	cases := []struct {
		query string
		want  float64
	}{
		{"", domain.DefaultNearbyRadiusKm},
		{"&radius=banana", domain.DefaultNearbyRadiusKm},
		{"&radius=0.2", domain.MinNearbyRadiusKm},
		{"&radius=500", domain.MaxNearbyRadiusKm},
		{"&radius=42", 42},
	}

	for _, tc := range cases {
		svc := &fakeDonationService{}
		app := newDonationTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/donations/nearby?latitude=0.3476&longitude=32.5825"+tc.query, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, tc.query)
		require.Len(t, svc.nearbyCalls, 1, tc.query)
		assert.InDelta(t, tc.want, svc.nearbyCalls[0].Radius, 1e-9, tc.query)
	}
}

func TestNearbyRejectsMissingCoordinates(t *testing.T) {
	svc := &fakeDonationService{}
	app := newDonationTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/donations/nearby?radius=10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, svc.nearbyCalls)
}
