// Package handler implements the HTTP handlers for the group car-buying API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (groups.go, offers.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/service"
)

// The service interfaces are defined here, in the consumer package,
// following the Go convention: "accept interfaces, return concrete types".
// They let handler tests inject mocks without touching the store or service
// layers.

// GroupServicer defines the group operations the handlers depend on.
type GroupServicer interface {
	Create(ctx context.Context, spec service.GroupSpec) (domain.Group, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error)
	ListLocked(ctx context.Context) ([]domain.Group, error)
}

// MembershipServicer defines the join operation the handlers depend on.
type MembershipServicer interface {
	Join(ctx context.Context, groupID, memberID uuid.UUID) (domain.Group, error)
}

// OfferServicer defines the offer ledger operations the handlers depend on.
type OfferServicer interface {
	Add(ctx context.Context, groupID uuid.UUID, in service.OfferInput) (domain.Offer, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Offer, error)
}

// VoteServicer defines the vote operation the handlers depend on.
type VoteServicer interface {
	Cast(ctx context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error)
}

// AnalyticsServicer defines the analytics read the handlers depend on.
type AnalyticsServicer interface {
	Get(ctx context.Context, groupID uuid.UUID) (domain.Analytics, error)
}

// Authenticator validates admin credentials and issues a bearer token.
type Authenticator interface {
	Login(email, password string) (string, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	groups     GroupServicer
	membership MembershipServicer
	offers     OfferServicer
	votes      VoteServicer
	analytics  AnalyticsServicer
	auth       Authenticator
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	groups GroupServicer,
	membership MembershipServicer,
	offers OfferServicer,
	votes VoteServicer,
	analytics AnalyticsServicer,
	auth Authenticator,
) *Server {
	return &Server{
		groups:     groups,
		membership: membership,
		offers:     offers,
		votes:      votes,
		analytics:  analytics,
		auth:       auth,
	}
}

// Routes returns the API router. adminOnly guards the administrative
// endpoints; pass middleware.NewAdminAuth in production or a pass-through
// in tests.
func (s *Server) Routes(adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Post("/auth/login", s.Login)
	r.Get("/car-data", s.GetCarData)
	r.Get("/car-data/{brand}", s.GetBrandData)

	r.Route("/groups", func(r chi.Router) {
		r.With(adminOnly).Post("/", s.CreateGroup)
		r.Get("/{id}", s.GetGroup)
		r.Post("/{id}/join", s.JoinGroup)
		r.Get("/{id}/offers", s.ListOffers)
		r.Post("/{id}/votes", s.CastVote)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(adminOnly)
		r.Get("/locked-groups", s.ListLockedGroups)
		r.Get("/groups/{id}/analytics", s.GetAnalytics)
		r.Post("/groups/{id}/offers", s.AddOffer)
	})

	return r
}
