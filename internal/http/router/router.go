package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/rogerio-castellano/storefront/docs"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	mw "github.com/rogerio-castellano/storefront/internal/http/middleware"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Options struct {
	CORSOrigins []string
	// Limiter is optional; without one requests are never throttled.
	Limiter *rl.Limiter
}

func NewRouter(s *handlers.Server, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(s.Logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", mw.SessionHeader},
		ExposedHeaders:   []string{mw.SessionHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if opts.Limiter != nil {
		r.Use(mw.RateLimit(opts.Limiter))
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Storefront
	r.Group(func(r chi.Router) {
		r.Use(mw.Session(s.Sessions))

		r.Get("/products", s.GetProductsHandler)
		r.Get("/products/featured", s.GetFeaturedProductsHandler)
		r.Get("/products/{id}", s.GetProductByIDHandler)
		r.Get("/categories", s.GetCategoriesHandler)
		r.Get("/deals", s.GetActiveDealsHandler)
		r.Get("/new-arrivals", s.GetNewArrivalsHandler)
		r.Post("/coupons/validate", s.ValidateCouponHandler)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.GetCartHandler)
			r.Delete("/", s.ClearCartHandler)
			r.Post("/items", s.AddCartItemHandler)
			r.Put("/items/{id}", s.UpdateCartItemHandler)
			r.Delete("/items/{id}", s.RemoveCartItemHandler)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", s.GetWishlistHandler)
			r.Delete("/", s.ClearWishlistHandler)
			r.Post("/items", s.AddWishlistItemHandler)
			r.Get("/items/{id}", s.GetWishlistItemHandler)
			r.Delete("/items/{id}", s.RemoveWishlistItemHandler)
			r.Post("/items/{id}/cart", s.WishlistItemToCartHandler)
			r.Post("/move-to-cart", s.MoveAllToCartHandler)
		})

		r.Post("/checkout", s.CheckoutHandler)
		r.Get("/orders/{id}/tracking", s.TrackOrderHandler)

		r.Post("/login", s.LoginHandler)
		r.Post("/login/google", s.GoogleLoginHandler)
		r.Post("/register", s.RegisterHandler)
		r.Post("/logout", s.LogoutHandler)
		r.Get("/me", s.MeHandler)
		r.Put("/me", s.UpdateProfileHandler)
		r.Get("/me/orders", s.MyOrdersHandler)
		r.Post("/me/password", s.ChangePasswordHandler)
		r.Post("/password/forgot", s.ForgotPasswordHandler)
	})

	// Back office
	r.Route("/admin", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(s.Tokens, s.Revoked))
		r.Use(mw.RequireAdmin)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.FilterProductsHandler)
			r.Post("/", s.CreateProductHandler)
			r.Post("/import", s.ImportProductsHandler)
			r.Get("/{id}", s.GetProductByIDAdminHandler)
			r.Put("/{id}", s.UpdateProductHandler)
			r.Delete("/{id}", s.DeleteProductHandler)
			r.Post("/{id}/stock", s.AdjustStockHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", s.ListOrdersHandler)
			r.Get("/{id}", s.GetOrderHandler)
			r.Put("/{id}/status", s.UpdateOrderStatusHandler)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.ListUsersHandler)
			r.Get("/{id}", s.GetUserHandler)
			r.Put("/{id}/role", s.UpdateUserRoleHandler)
			r.Post("/{id}/impersonate", s.ImpersonateUserHandler)
		})

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", s.ListDealsHandler)
			r.Post("/", s.CreateDealHandler)
			r.Get("/{id}", s.GetDealHandler)
			r.Put("/{id}", s.UpdateDealHandler)
			r.Delete("/{id}", s.DeleteDealHandler)
		})

		r.Route("/new-arrivals", func(r chi.Router) {
			r.Get("/", s.ListNewArrivalsHandler)
			r.Post("/", s.CreateNewArrivalHandler)
			r.Get("/{id}", s.GetNewArrivalHandler)
			r.Put("/{id}", s.UpdateNewArrivalHandler)
			r.Delete("/{id}", s.DeleteNewArrivalHandler)
		})

		r.Get("/metrics/dashboard", s.GetDashboardMetricsHandler)
		r.Get("/metrics/analytics", s.GetAnalyticsHandler)
		r.Get("/bans", s.ListBansHandler)
	})

	return r
}
