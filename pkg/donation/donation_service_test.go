package donation

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
)

type fakeDonationRepository struct {
	donations map[uuid.UUID]*entities.Donation
	nearby    []*domain.NearbyDonation
}

func newFakeDonationRepository() *fakeDonationRepository {
	return &fakeDonationRepository{donations: map[uuid.UUID]*entities.Donation{}}
}

func (f *fakeDonationRepository) CreateDonation(_ context.Context, donation *entities.Donation) error {
	f.donations[donation.ID] = donation
	return nil
}

func (f *fakeDonationRepository) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	donationID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	donation, ok := f.donations[donationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return donation, nil
}

func (f *fakeDonationRepository) GetDonations(_ context.Context, filter domain.DonationFilter) ([]*entities.Donation, int64, error) {
	var result []*entities.Donation
	for _, donation := range f.donations {
		if filter.Status != "" && donation.Status != filter.Status {
			continue
		}
		result = append(result, donation)
	}
	return result, int64(len(result)), nil
}

func (f *fakeDonationRepository) GetDonationsByDonor(_ context.Context, donorID string, _, _ int) ([]*entities.Donation, int64, error) {
	var result []*entities.Donation
	for _, donation := range f.donations {
		if donation.DonorID.String() == donorID {
			result = append(result, donation)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeDonationRepository) UpdateDonation(_ context.Context, id string, updates map[string]interface{}) error {
	donation := f.donations[uuid.MustParse(id)]
	if donation == nil {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["title"].(string); ok {
		donation.Title = v
	}
	if v, ok := updates["quantity"].(float64); ok {
		donation.Quantity = v
	}
	if v, ok := updates["image_url"].(string); ok {
		donation.ImageURL = v
	}
	return nil
}

func (f *fakeDonationRepository) DeleteDonation(_ context.Context, id string) error {
	delete(f.donations, uuid.MustParse(id))
	return nil
}

func (f *fakeDonationRepository) GetNearbyDonations(_ context.Context, _, _, _ float64) ([]*domain.NearbyDonation, error) {
	return f.nearby, nil
}

type fakeStorage struct{}

func (fakeStorage) UploadFile(name string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + name + ".jpg", nil
}

func (fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func donorIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.NewString(), Role: domain.RoleDonor}
}

func validCreateRequest() domain.CreateDonationRequest {
	return domain.CreateDonationRequest{
		Title:           "bread",
		Description:     "day-old loaves",
		Category:        "bakery",
		Quantity:        12,
		Unit:            "loaves",
		ExpiryDate:      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		PickupAddress:   "12 Market St",
		PickupLatitude:  0.3476,
		PickupLongitude: 32.5825,
	}
}

func TestCreateDonationOnlyDonors(t *testing.T) {
	svc := NewDonationService(newFakeDonationRepository(), fakeStorage{})

	_, err := svc.CreateDonation(context.Background(), domain.Identity{UserID: uuid.NewString(), Role: domain.RoleReceiver}, validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrOnlyDonorsCanDonate)
}

func TestCreateDonationRejectsPastExpiry(t *testing.T) {
	svc := NewDonationService(newFakeDonationRepository(), fakeStorage{})

	req := validCreateRequest()
	req.ExpiryDate = time.Now().Add(-time.Hour).Format(time.RFC3339)
	_, err := svc.CreateDonation(context.Background(), donorIdentity(), req)
	assert.ErrorIs(t, err, domain.ErrExpiryDateInPast)
}

func TestCreateDonationStartsAvailable(t *testing.T) {
	svc := NewDonationService(newFakeDonationRepository(), fakeStorage{})

	res, err := svc.CreateDonation(context.Background(), donorIdentity(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusAvailable, res.Status)
}

func TestCreateDonationAcceptsDateOnlyExpiry(t *testing.T) {
	svc := NewDonationService(newFakeDonationRepository(), fakeStorage{})

	req := validCreateRequest()
	req.ExpiryDate = time.Now().Add(72 * time.Hour).Format("2006-01-02")
	_, err := svc.CreateDonation(context.Background(), donorIdentity(), req)
	assert.NoError(t, err)
}

func TestUpdateDonationOnlyOwner(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, fakeStorage{})
	owner := donorIdentity()

	created, err := svc.CreateDonation(context.Background(), owner, validCreateRequest())
	require.NoError(t, err)

	title := "fresh bread"
	_, err = svc.UpdateDonation(context.Background(), donorIdentity(), created.ID, domain.UpdateDonationRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)

	res, err := svc.UpdateDonation(context.Background(), owner, created.ID, domain.UpdateDonationRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "fresh bread", res.Title)
}

func TestUpdateDonationNeverTouchesStatus(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, fakeStorage{})
	owner := donorIdentity()

	created, err := svc.CreateDonation(context.Background(), owner, validCreateRequest())
	require.NoError(t, err)
	repo.donations[uuid.MustParse(created.ID)].Status = domain.DonationStatusClaimed

	quantity := 5.0
	res, err := svc.UpdateDonation(context.Background(), owner, created.ID, domain.UpdateDonationRequest{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusClaimed, res.Status)
	assert.Equal(t, 5.0, res.Quantity)
}

func TestDeleteDonationOwnerOrAdmin(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, fakeStorage{})
	owner := donorIdentity()

	created, err := svc.CreateDonation(context.Background(), owner, validCreateRequest())
	require.NoError(t, err)

	err = svc.DeleteDonation(context.Background(), donorIdentity(), created.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)

	admin := domain.Identity{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	require.NoError(t, svc.DeleteDonation(context.Background(), admin, created.ID))

	_, err = svc.GetDonationByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestGetNearbyDonationsReturnsEmptySlice(t *testing.T) {
	svc := NewDonationService(newFakeDonationRepository(), fakeStorage{})

	res, err := svc.GetNearbyDonations(context.Background(), domain.NearbyDonationsRequest{
		Latitude:  0.3476,
		Longitude: 32.5825,
		Radius:    domain.DefaultNearbyRadiusKm,
	})
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}
