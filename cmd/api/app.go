package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/lucasferr/pdv-varejo/docs"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/controller"
	"github.com/lucasferr/pdv-varejo/internal/adapter/repository"
	"github.com/lucasferr/pdv-varejo/internal/infrastructure/database"
	"github.com/lucasferr/pdv-varejo/internal/service"
	"github.com/lucasferr/pdv-varejo/pkg/auth"
	"github.com/lucasferr/pdv-varejo/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger

	authController     *controller.AuthController
	userController     *controller.UserController
	productController  *controller.ProductController
	categoryController *controller.CategoryController
	saleController     *controller.SaleController
	stockController    *controller.StockController
	cashFlowController *controller.CashFlowController
	registerController *controller.RegisterController
	settingsController *controller.SettingsController
	exportController   *controller.ExportController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Repositórios
	pool := db.Pool()
	productRepo := repository.NewProductRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	saleRepo := repository.NewSaleRepository(db)
	stockRepo := repository.NewStockRepository(pool)
	cashFlowRepo := repository.NewCashFlowRepository(pool)
	registerRepo := repository.NewRegisterRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	// Serviços
	saleService := service.NewSaleService(saleRepo, productRepo, registerRepo, userRepo, settingsRepo)
	stockService := service.NewStockService(productRepo, stockRepo)

	// gin.Default já instala Logger e Recovery
	router := gin.Default()

	// CORS para o frontend do PDV
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:             router,
		db:                 db,
		logger:             log,
		authController:     controller.NewAuthController(userRepo, log),
		userController:     controller.NewUserController(userRepo, log),
		productController:  controller.NewProductController(productRepo, log),
		categoryController: controller.NewCategoryController(categoryRepo, log),
		saleController:     controller.NewSaleController(saleService, log),
		stockController:    controller.NewStockController(stockService, log),
		cashFlowController: controller.NewCashFlowController(cashFlowRepo, settingsRepo, log),
		registerController: controller.NewRegisterController(registerRepo, log),
		settingsController: controller.NewSettingsController(settingsRepo, log),
		exportController:   controller.NewExportController(registerRepo, saleRepo, userRepo, log),
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas públicas
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", a.authController.Login)
		authRoutes.POST("/refresh", a.authController.RefreshToken)
	}

	// Rotas autenticadas
	protected := api.Group("")
	protected.Use(auth.JWTAuthMiddleware())

	protected.GET("/auth/me", a.authController.Me)

	usersRoutes := protected.Group("/users")
	usersRoutes.Use(auth.RequirePermission(auth.PermUserManage))
	{
		usersRoutes.POST("", a.userController.Create)
		usersRoutes.GET("", a.userController.List)
		usersRoutes.GET("/:id", a.userController.Get)
		usersRoutes.PUT("/:id", a.userController.Update)
		usersRoutes.DELETE("/:id", a.userController.Delete)
	}

	productsRoutes := protected.Group("/products")
	{
		productsRoutes.GET("", auth.RequirePermission(auth.PermProductRead), a.productController.List)
		productsRoutes.GET("/:id", auth.RequirePermission(auth.PermProductRead), a.productController.Get)
		productsRoutes.GET("/barcode/:barcode", auth.RequirePermission(auth.PermProductRead), a.productController.GetByBarcode)
		productsRoutes.GET("/low-stock", auth.RequirePermission(auth.PermProductRead), a.productController.ListLowStock)
		productsRoutes.POST("", auth.RequirePermission(auth.PermProductWrite), a.productController.Create)
		productsRoutes.PUT("/:id", auth.RequirePermission(auth.PermProductWrite), a.productController.Update)
		productsRoutes.PATCH("/:id/active", auth.RequirePermission(auth.PermProductWrite), a.productController.UpdateActive)
		productsRoutes.DELETE("/:id", auth.RequirePermission(auth.PermProductWrite), a.productController.Delete)

		productsRoutes.POST("/:id/stock", auth.RequirePermission(auth.PermStockAdjust), a.stockController.Adjust)
		productsRoutes.GET("/:id/stock", auth.RequirePermission(auth.PermStockRead), a.stockController.History)
	}

	categoriesRoutes := protected.Group("/categories")
	{
		categoriesRoutes.GET("", auth.RequirePermission(auth.PermProductRead), a.categoryController.List)
		categoriesRoutes.POST("", auth.RequirePermission(auth.PermCategoryWrite), a.categoryController.Create)
		categoriesRoutes.PUT("/:id", auth.RequirePermission(auth.PermCategoryWrite), a.categoryController.Update)
		categoriesRoutes.DELETE("/:id", auth.RequirePermission(auth.PermCategoryWrite), a.categoryController.Delete)
		categoriesRoutes.POST("/cleanup", auth.RequirePermission(auth.PermCategoryWrite), a.categoryController.Cleanup)
	}

	salesRoutes := protected.Group("/sales")
	{
		salesRoutes.POST("", auth.RequirePermission(auth.PermSaleCreate), a.saleController.Finalize)
		salesRoutes.GET("", auth.RequirePermission(auth.PermSaleRead), a.saleController.List)
		salesRoutes.GET("/:id", auth.RequirePermission(auth.PermSaleRead), a.saleController.Get)
	}

	protected.GET("/stock/movements", auth.RequirePermission(auth.PermStockRead), a.stockController.List)

	cashFlowRoutes := protected.Group("/cashflow")
	{
		cashFlowRoutes.GET("", auth.RequirePermission(auth.PermCashFlowRead), a.cashFlowController.List)
		cashFlowRoutes.GET("/balance", auth.RequirePermission(auth.PermCashFlowRead), a.cashFlowController.Balance)
		cashFlowRoutes.POST("", auth.RequirePermission(auth.PermCashFlowWrite), a.cashFlowController.Create)
	}

	registerRoutes := protected.Group("/register")
	{
		registerRoutes.POST("/open", auth.RequirePermission(auth.PermRegisterOpen), a.registerController.Open)
		registerRoutes.POST("/close", auth.RequirePermission(auth.PermRegisterOpen), a.registerController.Close)
		registerRoutes.GET("/status", auth.RequirePermission(auth.PermRegisterRead), a.registerController.Status)
		registerRoutes.GET("/sessions", auth.RequirePermission(auth.PermRegisterRead), a.registerController.List)
	}

	settingsRoutes := protected.Group("/settings")
	{
		settingsRoutes.GET("", a.settingsController.Get)
		settingsRoutes.PUT("", auth.RequirePermission(auth.PermSettingsWrite), a.settingsController.Update)
	}

	protected.GET("/export/caixa", auth.RequirePermission(auth.PermExportRead), a.exportController.Session)
}

// Start configura as rotas e inicia o servidor HTTP
func (a *App) Start() {
	if err := database.RunMigrations(); err != nil {
		a.logger.Warn("erro ao aplicar migrações", "error", err)
	}

	a.SetupRoutes("/api/v1")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	if err := a.router.Run(":" + port); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
