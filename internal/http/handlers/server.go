package handlers

import (
	"time"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/http/ban"
	"github.com/rogerio-castellano/storefront/internal/orders"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/session"
	"go.uber.org/zap"
)

// Server carries the dependencies every handler reads. The storefront catalog
// is the immutable seed; admin product edits go to Products only.
type Server struct {
	Catalog  *catalog.Catalog
	Sessions *session.Manager
	Orders   orders.Service

	Auth    *auth.Authenticator
	Tokens  *auth.TokenIssuer
	Revoked *auth.Revocations

	Products  repo.ProductRepository
	OrderRepo repo.OrderRepository
	Users     repo.UserRepository
	Deals     repo.DealRepository
	Metrics   repo.MetricsRepository
	Bans      ban.Log

	NewArrivals repo.NewArrivalRepository

	Logger *zap.Logger

	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (s *Server) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
