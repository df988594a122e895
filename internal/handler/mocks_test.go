package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/handler"
	"github.com/cargroup/backend/internal/service"
)

// ---- mock servicers --------------------------------------------------------
// Hand-written function-field doubles for each handler dependency. Tests set
// only the methods they need; an unset method panics, catching handlers that
// reach into the wrong service.

type mockGroupServicer struct {
	create     func(ctx context.Context, spec service.GroupSpec) (domain.Group, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Group, error)
	listLocked func(ctx context.Context) ([]domain.Group, error)
}

func (m *mockGroupServicer) Create(ctx context.Context, spec service.GroupSpec) (domain.Group, error) {
	return m.create(ctx, spec)
}
func (m *mockGroupServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	return m.getByID(ctx, id)
}
func (m *mockGroupServicer) ListLocked(ctx context.Context) ([]domain.Group, error) {
	return m.listLocked(ctx)
}

type mockMembershipServicer struct {
	join func(ctx context.Context, groupID, memberID uuid.UUID) (domain.Group, error)
}

func (m *mockMembershipServicer) Join(ctx context.Context, groupID, memberID uuid.UUID) (domain.Group, error) {
	return m.join(ctx, groupID, memberID)
}

type mockOfferServicer struct {
	add         func(ctx context.Context, groupID uuid.UUID, in service.OfferInput) (domain.Offer, error)
	listByGroup func(ctx context.Context, groupID uuid.UUID) ([]domain.Offer, error)
}

func (m *mockOfferServicer) Add(ctx context.Context, groupID uuid.UUID, in service.OfferInput) (domain.Offer, error) {
	return m.add(ctx, groupID, in)
}
func (m *mockOfferServicer) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Offer, error) {
	return m.listByGroup(ctx, groupID)
}

type mockVoteServicer struct {
	cast func(ctx context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error)
}

func (m *mockVoteServicer) Cast(ctx context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error) {
	return m.cast(ctx, groupID, memberID, offerID)
}

type mockAnalyticsServicer struct {
	get func(ctx context.Context, groupID uuid.UUID) (domain.Analytics, error)
}

func (m *mockAnalyticsServicer) Get(ctx context.Context, groupID uuid.UUID) (domain.Analytics, error) {
	return m.get(ctx, groupID)
}

type mockAuthenticator struct {
	login func(email, password string) (string, error)
}

func (m *mockAuthenticator) Login(email, password string) (string, error) {
	return m.login(email, password)
}

// compile-time checks
var (
	_ handler.GroupServicer      = (*mockGroupServicer)(nil)
	_ handler.MembershipServicer = (*mockMembershipServicer)(nil)
	_ handler.OfferServicer      = (*mockOfferServicer)(nil)
	_ handler.VoteServicer       = (*mockVoteServicer)(nil)
	_ handler.AnalyticsServicer  = (*mockAnalyticsServicer)(nil)
	_ handler.Authenticator      = (*mockAuthenticator)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps bundles the Server dependencies so tests only set what they exercise.
type deps struct {
	groups     handler.GroupServicer
	membership handler.MembershipServicer
	offers     handler.OfferServicer
	votes      handler.VoteServicer
	analytics  handler.AnalyticsServicer
	auth       handler.Authenticator
}

// newTestHandler builds the router with a pass-through in place of the admin
// guard. The guard itself is covered by the middleware tests.
func newTestHandler(d deps) http.Handler {
	srv := handler.NewServer(d.groups, d.membership, d.offers, d.votes, d.analytics, d.auth)
	passthrough := func(next http.Handler) http.Handler { return next }
	return srv.Routes(passthrough)
}

// doJSON performs a request with a JSON body against h and returns the recorder.
func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorCode decodes the error envelope and returns its code.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error.Code
}

func groupFixture() domain.Group {
	return domain.Group{
		ID:             uuid.New(),
		CarModel:       "Nexon",
		Brand:          "Tata",
		City:           "Pune",
		MaxMembers:     3,
		CurrentMembers: 0,
		Status:         domain.StatusOpen,
	}
}

func offerFixture(groupID uuid.UUID) domain.Offer {
	return domain.Offer{
		ID:           uuid.New(),
		GroupID:      groupID,
		DealerName:   "Metro Motors",
		Price:        950_000,
		DeliveryTime: "4 weeks",
		BonusItems:   "floor mats",
	}
}
