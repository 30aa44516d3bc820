package server

import (
	"scent-store-api/internal/auth"
	"scent-store-api/internal/handler"
	appmw "scent-store-api/internal/middleware"
	"scent-store-api/internal/repository"
	"scent-store-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	catalogHandler *handler.CatalogHandler
	contentHandler *handler.ContentHandler
	authHandler    *handler.AuthHandler
	promoHandler   *handler.PromoHandler
	tokens         *auth.TokenIssuer
	operatorAPIKey string
}

type Deps struct {
	CartService     service.CartService
	CheckoutService service.CheckoutService
	CatalogService  service.CatalogService
	ContentService  service.ContentService
	AccountService  service.AccountService
	PromoService    service.PromoService
	OrderRepo       repository.OrderRepository
	ReviewRepo      repository.ReviewRepository
	Tokens          *auth.TokenIssuer
	OperatorAPIKey  string
}

func NewServer(deps Deps) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		cartHandler:    handler.NewCartHandler(deps.CartService),
		orderHandler:   handler.NewOrderHandler(deps.CheckoutService, deps.OrderRepo),
		catalogHandler: handler.NewCatalogHandler(deps.CatalogService, deps.ReviewRepo),
		contentHandler: handler.NewContentHandler(deps.ContentService),
		authHandler:    handler.NewAuthHandler(deps.AccountService),
		promoHandler:   handler.NewPromoHandler(deps.PromoService),
		tokens:         deps.Tokens,
		operatorAPIKey: deps.OperatorAPIKey,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/auth/register", s.authHandler.Register)
	api.POST("/auth/login", s.authHandler.Login)

	// -------- catalog --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:slug", s.catalogHandler.GetProduct)
	api.GET("/dupes", s.catalogHandler.ListDupes)
	api.GET("/dupes/:slug", s.catalogHandler.GetDupe)

	// -------- reviews / blog --------
	api.GET("/products/:slug/reviews", s.contentHandler.ListReviews)
	api.POST("/products/:slug/reviews", s.contentHandler.CreateReview)
	api.GET("/blog", s.contentHandler.ListBlogPosts)
	api.GET("/blog/:slug", s.contentHandler.GetBlogPost)

	// -------- cart / checkout (owner key resolved per request) --------
	owned := api.Group("", appmw.OwnerKey(s.tokens))
	owned.GET("/cart", s.cartHandler.GetCart)
	owned.POST("/cart/items", s.cartHandler.AddItem)
	owned.PUT("/cart/items/:id", s.cartHandler.UpdateItem)
	owned.DELETE("/cart/items/:id", s.cartHandler.RemoveItem)
	owned.DELETE("/cart/clear", s.cartHandler.ClearCart)
	owned.POST("/cart/apply-promo", s.cartHandler.ApplyPromo)
	owned.POST("/cart/preview-promo", s.cartHandler.PreviewPromo)
	owned.DELETE("/cart/promo", s.cartHandler.RemovePromo)

	owned.POST("/orders", s.orderHandler.Checkout)
	owned.GET("/orders", s.orderHandler.ListOrders, appmw.RequireAuth())
	api.GET("/orders/:orderNumber", s.orderHandler.GetOrder)

	// -------- operator --------
	api.POST("/promo-codes", s.promoHandler.CreatePromo, appmw.RequireAPIKey(s.operatorAPIKey))
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
