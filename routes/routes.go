package routes

import (
	"log"

	"pharmacy-shop/config"
	"pharmacy-shop/controllers"
	"pharmacy-shop/libs"
	"pharmacy-shop/middleware"
	"pharmacy-shop/models"
	"pharmacy-shop/repositories"
	"pharmacy-shop/services"
	"pharmacy-shop/stores"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cartStore := stores.NewCartStore()
	wishlistStore := stores.NewWishlistStore()
	sessionStore := stores.NewSessionStore(config.RedisClient)

	productRepo := repositories.NewProductRepository()
	orderRepo := repositories.NewOrderRepository()
	companyRepo := repositories.NewCompanyRepository()

	var events services.OrderEventPublisher
	if len(config.AppConfig.KafkaBrokers) > 0 {
		events = libs.NewOrderEventProducer(config.AppConfig.KafkaBrokers, config.AppConfig.KafkaTopic)
		log.Println("Order events enabled, topic:", config.AppConfig.KafkaTopic)
	}

	var mailer services.ConfirmationMailer
	if emailService, err := models.NewEmailService(); err == nil {
		mailer = emailService
	} else {
		log.Println("Email disabled:", err)
	}

	authService := services.NewAuthService(sessionStore)
	catalogService := services.NewCatalogService()
	userService := services.NewUserService()
	cartService := services.NewCartService(cartStore, wishlistStore, productRepo, orderRepo, events, mailer)

	authCtrl := controllers.NewAuthController(authService)
	productCtrl := controllers.NewProductController(catalogService)
	categoryCtrl := &controllers.CategoryController{}
	cartCtrl := controllers.NewCartController(cartService)
	wishlistCtrl := controllers.NewWishlistController(cartService)
	orderCtrl := controllers.NewOrderController(orderRepo)
	userCtrl := controllers.NewUserController(userService)
	companyCtrl := controllers.NewCompanyController(companyRepo)
	dashboardCtrl := controllers.NewDashboardController(orderRepo, catalogService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(sessionStore))
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:productId", cartCtrl.SetQuantity)
		auth.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
		auth.POST("/checkout", cartCtrl.Checkout)

		auth.GET("/wishlist", wishlistCtrl.GetWishlist)
		auth.POST("/wishlist/toggle", wishlistCtrl.Toggle)
		auth.DELETE("/wishlist/:productId", wishlistCtrl.Remove)
		auth.POST("/wishlist/:productId/cart", wishlistCtrl.AddToCart)

		auth.GET("/orders", orderCtrl.GetMyOrders)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(sessionStore), middleware.RoleMiddleware(models.RoleAdmin))
	{
		admin.GET("/dashboard", dashboardCtrl.AdminDashboard)

		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id", userCtrl.GetUserByID)
		admin.POST("/users", userCtrl.CreateUser)
		admin.PATCH("/users/:id", userCtrl.UpdateUser)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/drugs", productCtrl.CreateDrug)
		admin.PATCH("/drugs/:id", productCtrl.UpdateDrug)
		admin.DELETE("/drugs/:id", productCtrl.DeleteDrug)
		admin.POST("/drugs/:id/image", productCtrl.UploadDrugImage)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.GET("/companies", companyCtrl.GetAllCompanies)
		admin.GET("/companies/:id", companyCtrl.GetCompanyByID)
		admin.POST("/companies", companyCtrl.CreateCompany)
		admin.PATCH("/companies/:id", companyCtrl.UpdateCompany)
		admin.DELETE("/companies/:id", companyCtrl.DeleteCompany)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	branch := router.Group("/branch")
	branch.Use(middleware.AuthMiddleware(sessionStore), middleware.RoleMiddleware(models.RoleBranch))
	{
		branch.GET("/dashboard", dashboardCtrl.BranchDashboard)
	}

	company := router.Group("/company")
	company.Use(middleware.AuthMiddleware(sessionStore), middleware.RoleMiddleware(models.RoleCompany))
	{
		company.GET("/dashboard", dashboardCtrl.CompanyDashboard)
	}

	router.Static("/uploads", "./uploads")
}
