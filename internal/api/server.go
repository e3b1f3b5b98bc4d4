package api

import (
	"github.com/asaskevich/EventBus"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/clubverd/pos-api/docs"
	v1 "github.com/clubverd/pos-api/internal/api/handler/v1"
	"github.com/clubverd/pos-api/internal/api/middleware"
	"github.com/clubverd/pos-api/internal/config"
	"github.com/clubverd/pos-api/internal/repository"
	"github.com/clubverd/pos-api/internal/repository/dao"
	"github.com/clubverd/pos-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, bus EventBus.Bus) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	memberRepo := repository.NewMemberRepository(dao.NewMemberDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewProductDAO(db))
	ledgerRepo := repository.NewLedgerRepository(dao.NewLedgerDAO(db))
	staffRepo := repository.NewStaffRepository(dao.NewStaffDAO(db))

	ledgerSvc := service.NewLedgerService(ledgerRepo)
	posSvc := service.NewPosService(ledgerRepo, bus)

	authHandler := v1.NewAuthHandler(s.Config.API, service.NewAuthService(staffRepo))
	staffHandler := v1.NewStaffHandler(service.NewStaffService(staffRepo))
	memberHandler := v1.NewMemberHandler(service.NewMemberService(memberRepo), posSvc, ledgerSvc)
	productHandler := v1.NewProductHandler(service.NewCatalogService(catalogRepo))
	posHandler := v1.NewPosHandler(service.NewCartService(memberRepo, catalogRepo), posSvc)
	ledgerHandler := v1.NewLedgerHandler(ledgerSvc, service.NewDashboardService(memberRepo, catalogRepo, ledgerSvc))
	assistantHandler := v1.NewAssistantHandler(service.NewAssistantService(s.Config.Assistant, catalogRepo))

	s.MountHandlers(authHandler, staffHandler, memberHandler, productHandler, posHandler, ledgerHandler, assistantHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	staffHandler *v1.StaffHandler,
	memberHandler *v1.MemberHandler,
	productHandler *v1.ProductHandler,
	posHandler *v1.PosHandler,
	ledgerHandler *v1.LedgerHandler,
	assistantHandler *v1.AssistantHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.POST("/auth/signup", authHandler.HandleSignup)

		authed.GET("/staff", staffHandler.HandleListStaff)
		authed.GET("/staff/:staffID", staffHandler.HandleGetStaff)
		authed.PUT("/staff/:staffID", staffHandler.HandleUpdateStaff)
		authed.DELETE("/staff/:staffID", staffHandler.HandleDeleteStaff)

		authed.GET("/members", memberHandler.HandleListMembers)
		authed.POST("/members", memberHandler.HandleRegisterMember)
		authed.GET("/members/search", memberHandler.HandleSearchMembers)
		authed.GET("/members/:memberID", memberHandler.HandleGetMember)
		authed.PATCH("/members/:memberID/active", memberHandler.HandleSetMemberActive)
		authed.POST("/members/:memberID/deposit", memberHandler.HandleDeposit)
		authed.GET("/members/:memberID/transactions", memberHandler.HandleMemberTransactions)

		authed.GET("/products", productHandler.HandleListProducts)
		authed.POST("/products", productHandler.HandleCreateProduct)
		authed.GET("/products/low-stock", productHandler.HandleLowStockProducts)
		authed.GET("/products/:productID", productHandler.HandleGetProduct)
		authed.PUT("/products/:productID", productHandler.HandleUpdateProduct)

		authed.PUT("/pos/cart/member", posHandler.HandleSelectMember)
		authed.GET("/pos/cart", posHandler.HandleGetCart)
		authed.DELETE("/pos/cart", posHandler.HandleClearCart)
		authed.POST("/pos/cart/lines", posHandler.HandleAddLine)
		authed.PUT("/pos/cart/lines/:productID", posHandler.HandleSetQuantity)
		authed.DELETE("/pos/cart/lines/:productID", posHandler.HandleRemoveLine)
		authed.POST("/pos/checkout", posHandler.HandleCheckout)

		authed.GET("/transactions", ledgerHandler.HandleRecentTransactions)
		authed.GET("/transactions/:transactionID", ledgerHandler.HandleGetTransaction)
		authed.GET("/dashboard", ledgerHandler.HandleDashboard)

		authed.POST("/assistant/chat", assistantHandler.HandleChat)
		authed.GET("/assistant/ws", assistantHandler.HandleWebSocket)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Club Verd POS API"
	docs.SwaggerInfo.Description = "Point-of-sale and membership ledger for a private members club."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
