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

func TestVoteService_Cast(t *testing.T) {
	groupID, memberID, offerID := uuid.New(), uuid.New(), uuid.New()
	svc := service.NewVoteService(&mockStore{
		castVote: func(_ context.Context, gID, mID, oID uuid.UUID) (domain.Offer, error) {
			assert.Equal(t, groupID, gID)
			assert.Equal(t, memberID, mID)
			assert.Equal(t, offerID, oID)
			return domain.Offer{ID: oID, GroupID: gID, Votes: 1}, nil
		},
	})

	got, err := svc.Cast(context.Background(), groupID, memberID, offerID)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Votes)
}

func TestVoteService_Cast_NilIDs(t *testing.T) {
	// The store must never be reached; a nil mock would panic if it were.
	svc := service.NewVoteService(&mockStore{})

	_, err := svc.Cast(context.Background(), uuid.New(), uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Cast(context.Background(), uuid.New(), uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVoteService_Cast_StoreErrors(t *testing.T) {
	for _, sentinel := range []error{
		domain.ErrNotFound,
		domain.ErrNotAMember,
		domain.ErrAlreadyVoted,
	} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			svc := service.NewVoteService(&mockStore{
				castVote: func(_ context.Context, _, _, _ uuid.UUID) (domain.Offer, error) {
					return domain.Offer{}, sentinel
				},
			})

			_, err := svc.Cast(context.Background(), uuid.New(), uuid.New(), uuid.New())

			assert.ErrorIs(t, err, sentinel)
		})
	}
}
