package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/service"
)

func validSpec() service.GroupSpec {
	return service.GroupSpec{
		CarModel:   "Nexon",
		Brand:      "Tata",
		City:       "Pune",
		MaxMembers: 5,
	}
}

// echoGroupStore returns whatever it receives back — useful for Create tests
// that only care about validation logic, not what the DB returns.
func echoGroupStore() *mockStore {
	return &mockStore{
		createGroup: func(_ context.Context, g domain.Group) (domain.Group, error) { return g, nil },
	}
}

func TestGroupService_Create_Valid(t *testing.T) {
	svc := service.NewGroupService(echoGroupStore())

	got, err := svc.Create(context.Background(), validSpec())

	require.NoError(t, err)
	assert.Equal(t, "Nexon", got.CarModel)
	assert.Equal(t, "Tata", got.Brand)
	assert.Equal(t, "Pune", got.City)
	assert.Equal(t, 5, got.MaxMembers)
}

func TestGroupService_Create_TrimsWhitespace(t *testing.T) {
	svc := service.NewGroupService(echoGroupStore())

	spec := validSpec()
	spec.CarModel = "  Nexon  "
	spec.City = " Pune "

	got, err := svc.Create(context.Background(), spec)

	require.NoError(t, err)
	assert.Equal(t, "Nexon", got.CarModel)
	assert.Equal(t, "Pune", got.City)
}

func TestGroupService_Create_Validation(t *testing.T) {
	svc := service.NewGroupService(echoGroupStore())

	tests := []struct {
		name   string
		mutate func(*service.GroupSpec)
	}{
		{"empty car_model", func(s *service.GroupSpec) { s.CarModel = "" }},
		{"whitespace car_model", func(s *service.GroupSpec) { s.CarModel = "   " }},
		{"empty brand", func(s *service.GroupSpec) { s.Brand = "" }},
		{"empty city", func(s *service.GroupSpec) { s.City = "" }},
		{"zero max_members", func(s *service.GroupSpec) { s.MaxMembers = 0 }},
		{"negative max_members", func(s *service.GroupSpec) { s.MaxMembers = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			_, err := svc.Create(context.Background(), spec)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestGroupService_Create_StoreError(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := service.NewGroupService(&mockStore{
		createGroup: func(_ context.Context, _ domain.Group) (domain.Group, error) {
			return domain.Group{}, dbErr
		},
	})

	_, err := svc.Create(context.Background(), validSpec())

	assert.ErrorIs(t, err, dbErr)
}

func TestGroupService_GetByID(t *testing.T) {
	id := uuid.New()
	svc := service.NewGroupService(&mockStore{
		getGroup: func(_ context.Context, got uuid.UUID) (domain.Group, error) {
			assert.Equal(t, id, got)
			return domain.Group{ID: got, CarModel: "Nexon"}, nil
		},
	})

	got, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestGroupService_GetByID_NotFound(t *testing.T) {
	svc := service.NewGroupService(&mockStore{
		getGroup: func(_ context.Context, _ uuid.UUID) (domain.Group, error) {
			return domain.Group{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGroupService_ListLocked_NilBecomesEmpty(t *testing.T) {
	svc := service.NewGroupService(&mockStore{
		listLockedGroups: func(_ context.Context) ([]domain.Group, error) { return nil, nil },
	})

	got, err := svc.ListLocked(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
