// Package routes defines the API routing configuration.
// It wires repositories into services and handlers, then groups routes
// by audience: public storefront, authenticated buyers, approved
// vendors, and admins.
package routes

import (
	"agrimart/internal/handlers"
	"agrimart/internal/middleware"
	"agrimart/internal/repositories"
	"agrimart/internal/services/address"
	"agrimart/internal/services/admin"
	"agrimart/internal/services/article"
	"agrimart/internal/services/auth"
	"agrimart/internal/services/catalog"
	"agrimart/internal/services/order"
	"agrimart/internal/services/payment"
	"agrimart/internal/services/promotion"
	"agrimart/internal/services/stats"
	"agrimart/internal/services/user"
	"agrimart/internal/services/vendor"
	"agrimart/internal/services/wishlist"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App) {
	// Repositories
	userRepo := repositories.NewUserRepository(repositories.DB, repositories.Cache)
	vendorRepo := repositories.NewVendorRepository(repositories.DB, repositories.Cache)
	productRepo := repositories.NewProductRepository(repositories.DB)
	orderRepo := repositories.NewOrderRepository(repositories.DB)
	addressRepo := repositories.NewAddressRepository(repositories.DB)
	favoriteRepo := repositories.NewFavoriteRepository(repositories.DB, repositories.Cache)
	promotionRepo := repositories.NewPromotionRepository(repositories.DB)
	articleRepo := repositories.NewArticleRepository(repositories.DB)

	// Services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)
	vendorService := vendor.NewService(vendorRepo)
	adminService := admin.NewService(userRepo, vendorRepo)
	catalogService := catalog.NewService(productRepo)
	paymentService := payment.NewService()
	orderService := order.NewService(orderRepo, productRepo, addressRepo, promotionRepo, paymentService)
	wishlistService := wishlist.NewService(favoriteRepo, productRepo)
	addressService := address.NewService(addressRepo)
	promotionService := promotion.NewService(promotionRepo, productRepo)
	articleService := article.NewService(articleRepo)
	statsService := stats.NewService(userRepo, vendorRepo, productRepo, orderRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	adminHandler := handlers.NewAdminHandler(adminService)
	productHandler := handlers.NewProductHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	addressHandler := handlers.NewAddressHandler(addressService)
	promotionHandler := handlers.NewPromotionHandler(promotionService)
	articleHandler := handlers.NewArticleHandler(articleService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	vendorGate := middleware.NewVendorGate(vendorRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the AgriMart API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.Get)
	api.Get("/articles", articleHandler.ListPublished)
	api.Get("/articles/:slug", articleHandler.GetBySlug)

	// Authenticated routes
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Get("/profile", userHandler.GetProfile)
	protected.Put("/profile", userHandler.UpdateProfile)

	setupBuyerRoutes(protected, orderHandler, wishlistHandler, addressHandler)
	setupVendorRoutes(protected, vendorGate, vendorHandler, productHandler, orderHandler, promotionHandler, dashboardHandler)
	setupAdminRoutes(app, authMiddleware, adminHandler, orderHandler, articleHandler, dashboardHandler)
}

func setupBuyerRoutes(router fiber.Router, orderHandler *handlers.OrderHandler, wishlistHandler *handlers.WishlistHandler, addressHandler *handlers.AddressHandler) {
	orders := router.Group("/orders")
	orders.Post("/", orderHandler.Checkout)
	orders.Get("/", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.Get)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	wl := router.Group("/wishlist")
	wl.Get("/", wishlistHandler.List)
	wl.Post("/:productId", wishlistHandler.Add)
	wl.Delete("/:productId", wishlistHandler.Remove)

	addresses := router.Group("/addresses")
	addresses.Get("/", addressHandler.List)
	addresses.Post("/", addressHandler.Create)
	addresses.Put("/:id", addressHandler.Update)
	addresses.Delete("/:id", addressHandler.Delete)
	addresses.Put("/:id/default", addressHandler.SetDefault)
}

func setupVendorRoutes(router fiber.Router, gate *middleware.VendorGate, vendorHandler *handlers.VendorHandler, productHandler *handlers.ProductHandler, orderHandler *handlers.OrderHandler, promotionHandler *handlers.PromotionHandler, dashboardHandler *handlers.DashboardHandler) {
	// Applying for a vendor profile and checking its status only need a
	// logged-in user; the rest of the group requires an approved profile.
	router.Post("/vendor", vendorHandler.Apply)
	router.Get("/vendor/status", vendorHandler.GetProfile)

	v := router.Group("/vendor", gate.Approved)
	v.Put("/profile", vendorHandler.UpdateProfile)

	v.Get("/products", productHandler.ListMine)
	v.Post("/products", productHandler.Create)
	v.Put("/products/:id", productHandler.Update)
	v.Delete("/products/:id", productHandler.Archive)

	v.Get("/orders", orderHandler.ListVendorOrders)
	v.Put("/orders/:id/status", orderHandler.UpdateVendorStatus)

	v.Get("/discounts", promotionHandler.ListDiscounts)
	v.Post("/discounts", promotionHandler.CreateDiscount)
	v.Delete("/discounts/:id", promotionHandler.DeactivateDiscount)

	v.Get("/flash-sales", promotionHandler.ListFlashSales)
	v.Post("/flash-sales", promotionHandler.CreateFlashSale)
	v.Delete("/flash-sales/:id", promotionHandler.DeleteFlashSale)

	v.Get("/dashboard", dashboardHandler.VendorStats)
	v.Get("/analytics", dashboardHandler.VendorStats)
}

func setupAdminRoutes(app *fiber.App, authMiddleware *middleware.AuthMiddleware, adminHandler *handlers.AdminHandler, orderHandler *handlers.OrderHandler, articleHandler *handlers.ArticleHandler, dashboardHandler *handlers.DashboardHandler) {
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminRequired)

	admin.Get("/vendors", adminHandler.ListVendors)
	admin.Put("/vendors/:id/approve", adminHandler.ApproveVendor)
	admin.Put("/vendors/:id/reject", adminHandler.RejectVendor)
	admin.Put("/vendors/:id/status", adminHandler.SetVendorStatus)
	admin.Post("/vendors/:id/notify", adminHandler.ResendNotification)
	admin.Delete("/vendors/:id", adminHandler.DeleteVendor)

	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users", adminHandler.UpdateUserStatus)
	admin.Delete("/users/:id", adminHandler.DeleteUser)

	admin.Put("/orders/:id/status", orderHandler.UpdateStatus)

	admin.Get("/articles", articleHandler.ListAll)
	admin.Post("/articles", articleHandler.Create)
	admin.Put("/articles/:id", articleHandler.Update)
	admin.Delete("/articles/:id", articleHandler.Delete)

	admin.Get("/stats", dashboardHandler.AdminStats)
	admin.Get("/analytics", dashboardHandler.AdminAnalytics)
	admin.Get("/cache-stats", dashboardHandler.CacheStats)
	admin.Post("/cache-flush", dashboardHandler.FlushCache)
}
