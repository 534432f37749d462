package main

import (
	"log"
	"os"
	"time"

	"tiffinwala/internal/auth"
	"tiffinwala/internal/catalog"
	"tiffinwala/internal/db"
	"tiffinwala/internal/listing"
	"tiffinwala/internal/menu"
	"tiffinwala/internal/middleware"
	"tiffinwala/internal/vendor"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	vendorRepo := vendor.NewPostgresRepository(pgDB)
	itemRepo := catalog.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	listingReader := listing.NewPostgresReader(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	marketTZ := os.Getenv("MARKET_TZ")
	if marketTZ == "" {
		marketTZ = "Asia/Kolkata"
	}
	marketLoc, err := time.LoadLocation(marketTZ)
	if err != nil {
		log.Fatalf("❌ Invalid MARKET_TZ %q: %v", marketTZ, err)
	}

	vendorService := vendor.NewService(vendorRepo)
	itemService := catalog.NewService(itemRepo)
	menuService := menu.NewService(menuRepo, itemRepo)
	listingService := listing.NewService(listingReader, marketLoc)

	// ───────────────────────── HANDLERS ─────────────────────────
	vendorHandler := vendor.NewHandler(vendorService)
	itemHandler := catalog.NewHandler(itemService, vendorRepo)
	menuHandler := menu.NewHandler(menuService, vendorRepo)
	listingHandler := listing.NewHandler(listingService)

	// ───────────────────────── VENDOR ROUTES ─────────────────────────
	vendors := r.Group("/vendors")
	vendors.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("VENDOR"),
	)
	{
		vendors.POST("", vendorHandler.CreateProfile)
		vendors.GET("/me", vendorHandler.GetProfile)
		vendors.GET("/me/dashboard", vendorHandler.Dashboard)
		vendors.PATCH("/me/active", vendorHandler.SetActive)
	}

	// ───────────────────────── ITEM ROUTES ─────────────────────────
	items := r.Group("/items")
	items.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("VENDOR"),
	)
	{
		items.GET("", itemHandler.ListItems)
		items.POST("", itemHandler.CreateItem)
		items.PATCH("/:id/availability", itemHandler.SetAvailability)
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menus")
	menus.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("VENDOR"),
	)
	{
		menus.GET("", menuHandler.ListMenus)
		menus.POST("", menuHandler.CreateMenu)
		menus.PUT("/:id/selection", menuHandler.UpdateSelection)
		menus.PATCH("/:id/active", menuHandler.SetActive)
	}

	// Capacity endpoints sit outside the vendor group: the order system
	// reserves and releases dabbas on any menu.
	capacity := r.Group("/menus")
	capacity.Use(middleware.AuthMiddleware())
	{
		capacity.POST("/:id/reserve", menuHandler.ReserveSlot)
		capacity.POST("/:id/release", menuHandler.ReleaseSlot)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.GET("/vendors/pending", vendorHandler.ListPendingVendors)
		admin.POST("/vendors/:id/verify", vendorHandler.VerifyVendor)
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	public := r.Group("/public")
	{
		public.GET("/menus", listingHandler.ListActiveMenus)
		public.GET("/vendors/:vendorId/menus", listingHandler.VendorMenus)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
