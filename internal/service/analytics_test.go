package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/service"
)

func TestAnalyticsService_Get(t *testing.T) {
	groupID := uuid.New()
	svc := service.NewAnalyticsService(&mockStore{
		getAnalytics: func(_ context.Context, gID uuid.UUID) (domain.Analytics, error) {
			assert.Equal(t, groupID, gID)
			return domain.Analytics{
				Group:        domain.Group{ID: gID, Status: domain.StatusNegotiation},
				MembersCount: 3,
				TotalVotes:   2,
				Offers:       []domain.Offer{{GroupID: gID, Votes: 2}},
			}, nil
		},
	})

	got, err := svc.Get(context.Background(), groupID)

	require.NoError(t, err)
	assert.Equal(t, 3, got.MembersCount)
	assert.Equal(t, 2, got.TotalVotes)
	assert.Len(t, got.Offers, 1)
}

func TestAnalyticsService_Get_NilOffersBecomesEmpty(t *testing.T) {
	svc := service.NewAnalyticsService(&mockStore{
		getAnalytics: func(_ context.Context, _ uuid.UUID) (domain.Analytics, error) {
			return domain.Analytics{MembersCount: 1}, nil
		},
	})

	got, err := svc.Get(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got.Offers)
	assert.Empty(t, got.Offers)
}

func TestAnalyticsService_Get_StoreErrors(t *testing.T) {
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrInconsistent} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			svc := service.NewAnalyticsService(&mockStore{
				getAnalytics: func(_ context.Context, _ uuid.UUID) (domain.Analytics, error) {
					return domain.Analytics{}, sentinel
				},
			})

			_, err := svc.Get(context.Background(), uuid.New())

			assert.ErrorIs(t, err, sentinel)
		})
	}
}
