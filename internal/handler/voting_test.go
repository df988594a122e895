package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/handler"
)

func TestCastVote(t *testing.T) {
	groupID, memberID, offerID := uuid.New(), uuid.New(), uuid.New()
	h := newTestHandler(deps{votes: &mockVoteServicer{
		cast: func(_ context.Context, gID, mID, oID uuid.UUID) (domain.Offer, error) {
			assert.Equal(t, groupID, gID)
			assert.Equal(t, memberID, mID)
			assert.Equal(t, offerID, oID)
			o := offerFixture(gID)
			o.ID = oID
			o.Votes = 1
			return o, nil
		},
	}})

	rec := doJSON(t, h, http.MethodPost, "/groups/"+groupID.String()+"/votes",
		handler.CastVoteRequest{MemberID: memberID.String(), OfferID: offerID.String()})

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Offer
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, offerID, got.ID)
	assert.Equal(t, 1, got.Votes)
}

func TestCastVote_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"already voted", domain.ErrAlreadyVoted, http.StatusConflict, "already_voted"},
		{"not a member", domain.ErrNotAMember, http.StatusForbidden, "not_a_member"},
		{"offer not found", domain.ErrNotFound, http.StatusNotFound, "not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(deps{votes: &mockVoteServicer{
				cast: func(_ context.Context, _, _, _ uuid.UUID) (domain.Offer, error) {
					return domain.Offer{}, tt.err
				},
			}})

			rec := doJSON(t, h, http.MethodPost, "/groups/"+uuid.NewString()+"/votes",
				handler.CastVoteRequest{MemberID: uuid.NewString(), OfferID: uuid.NewString()})

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestCastVote_MalformedIDs(t *testing.T) {
	// The service must never be reached for unparseable IDs.
	h := newTestHandler(deps{votes: &mockVoteServicer{}})

	rec := doJSON(t, h, http.MethodPost, "/groups/"+uuid.NewString()+"/votes",
		handler.CastVoteRequest{MemberID: "nope", OfferID: uuid.NewString()})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))

	rec = doJSON(t, h, http.MethodPost, "/groups/"+uuid.NewString()+"/votes",
		handler.CastVoteRequest{MemberID: uuid.NewString(), OfferID: "nope"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}
