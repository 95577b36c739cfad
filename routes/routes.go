package routes

import (
	"context"
	"os"

	"sourcing-erp/constants"
	"sourcing-erp/controllers/auth"
	"sourcing-erp/controllers/bulk_order"
	"sourcing-erp/controllers/confirmation"
	"sourcing-erp/controllers/dashboard"
	"sourcing-erp/controllers/factory_contact"
	"sourcing-erp/controllers/files"
	"sourcing-erp/controllers/image_proxy"
	"sourcing-erp/controllers/inspection"
	"sourcing-erp/controllers/market_research"
	"sourcing-erp/controllers/order_status"
	"sourcing-erp/controllers/sampling"
	"sourcing-erp/controllers/user"
	"sourcing-erp/httpServices/image_translate"
	"sourcing-erp/logger"
	"sourcing-erp/middleware"
	"sourcing-erp/services/assignment"
	"sourcing-erp/services/lifecycle"
	"sourcing-erp/services/storage"
	"sourcing-erp/services/translation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	assignmentService := assignment.NewService(db, asyncLogger)
	translationService := translation.NewService(db)
	lifecycleService := lifecycle.NewService(db, asyncLogger)

	// Bucket storage with local-disk fallback for rejected MIME types
	var store storage.Interface
	var signer *storage.S3Storage
	if s3Store, err := storage.NewS3Storage(context.Background()); err != nil {
		logger.Error("S3 storage unavailable, using local storage only", err)
		store = storage.NewLocalStorage()
	} else {
		store = &storage.FallbackStorage{Primary: s3Store, Fallback: storage.NewLocalStorage()}
		signer = s3Store
	}

	translateClient := image_translate.NewClient(os.Getenv("IMAGE_TRANSLATE_API_URL"))

	authController := auth.NewAuthController(db)
	userController := user.NewUserController(db)
	marketResearchController := market_research.NewMarketResearchController(db, asyncLogger, assignmentService, translationService)
	samplingController := sampling.NewSamplingController(db, asyncLogger, assignmentService, translationService)
	factoryContactController := factory_contact.NewFactoryContactController(db, asyncLogger, assignmentService, translationService)
	inspectionController := inspection.NewInspectionController(db, asyncLogger, assignmentService, translationService)
	bulkOrderController := bulk_order.NewBulkOrderController(db, asyncLogger, assignmentService, translationService)
	orderStatusController := order_status.NewOrderStatusController(lifecycleService)
	fileController := files.NewFileController(db, asyncLogger, store, signer)
	confirmationController := confirmation.NewConfirmationController(db, asyncLogger)
	dashboardController := dashboard.NewDashboardController(db)
	imageProxyController := image_proxy.NewImageProxyController(translateClient)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("sourcing-erp api")
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)
	api.Post("/auth/verify-email", authController.VerifyEmail)
	api.Post("/auth/resend-otp", authController.ResendOTP)
	api.Get("/auth/oauth/:provider", authController.OAuthStart)
	api.Get("/auth/oauth/:provider/callback", authController.OAuthCallback)

	api.Get("/1688/image-proxy", imageProxyController.Proxy)

	/*=============================================================================
	| Authenticated Routes
	===============================================================================*/
	authenticated := api.Group("").Use(middleware.RequireAuthentication())
	authenticated.Post("/auth/logout", authController.Logout)
	authenticated.Get("/users/me", userController.Profile)
	authenticated.Put("/users/me", userController.UpdateProfile)

	authenticated.Get("/users/me/shipping-addresses", userController.ListShippingAddresses)
	authenticated.Post("/users/me/shipping-addresses", userController.CreateShippingAddress)
	authenticated.Put("/users/me/shipping-addresses/:id", userController.UpdateShippingAddress)
	authenticated.Delete("/users/me/shipping-addresses/:id", userController.DeleteShippingAddress)
	authenticated.Get("/users/me/company-address", userController.CompanyAddress)
	authenticated.Put("/users/me/company-address", userController.UpsertCompanyAddress)

	authenticated.Post("/files/upload", fileController.Upload)
	authenticated.Get("/files/:reservationNumber", fileController.List)

	authenticated.Post("/1688/translate-image", imageProxyController.TranslateImage)

	authenticated.Get("/confirmations/pending", confirmationController.Pending)
	authenticated.Post("/confirmations/:id/respond", confirmationController.Respond)

	/*=============================================================================
	| Customer Order Routes
	===============================================================================*/
	customer := api.Group("").Use(middleware.RequirePermissions(constants.PermCustomerFull))

	customer.Post("/market-research", marketResearchController.Store)
	customer.Get("/market-research", marketResearchController.Index)

	customer.Post("/sampling", samplingController.Store)
	customer.Get("/sampling", samplingController.Index)

	customer.Post("/factory-contact", factoryContactController.Store)
	customer.Get("/factory-contact", factoryContactController.Index)

	customer.Post("/inspection", inspectionController.Store)
	customer.Get("/inspection", inspectionController.Index)

	customer.Post("/bulk-orders", bulkOrderController.Store)
	customer.Get("/bulk-orders", bulkOrderController.Index)

	// Detail views are shared: owners and staff both pass the in-handler check
	authenticated.Get("/market-research/:reservationNumber", marketResearchController.Show)
	authenticated.Get("/sampling/:reservationNumber", samplingController.Show)
	authenticated.Get("/factory-contact/:reservationNumber", factoryContactController.Show)
	authenticated.Get("/inspection/:reservationNumber", inspectionController.Show)
	authenticated.Get("/bulk-orders/:reservationNumber", bulkOrderController.Show)

	/*=============================================================================
	| Staff Routes
	===============================================================================*/
	staff := api.Group("/staff").Use(middleware.RequireAnyPermission(constants.StaffPermissions...))

	staff.Get("/market-research", marketResearchController.StaffIndex)
	staff.Put("/market-research/:reservationNumber", marketResearchController.StaffUpdate)

	staff.Get("/sampling", samplingController.StaffIndex)
	staff.Put("/sampling/:reservationNumber", samplingController.StaffUpdate)

	staff.Get("/factory-contact", factoryContactController.StaffIndex)
	staff.Put("/factory-contact/:reservationNumber", factoryContactController.StaffUpdate)

	staff.Get("/inspection", inspectionController.StaffIndex)
	staff.Put("/inspection/:reservationNumber", inspectionController.StaffUpdate)

	staff.Get("/bulk-orders", bulkOrderController.StaffIndex)
	staff.Put("/bulk-orders/:reservationNumber", bulkOrderController.StaffUpdate)

	staff.Put("/orders/:reservationNumber/status", orderStatusController.ChangeStatus)
	staff.Put("/orders/:reservationNumber/payment-status", orderStatusController.SetPaymentStatus)
	staff.Get("/orders/:reservationNumber/history", orderStatusController.History)

	staff.Post("/confirmations", confirmationController.Create)

	staff.Get("/dashboard", dashboardController.Summary)
}
