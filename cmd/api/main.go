package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountsHTTP "client-portal-service/internal/accounts/adapters/http/fiber"
	accountsRepoPg "client-portal-service/internal/accounts/adapters/postgres"
	accountsUsecase "client-portal-service/internal/accounts/core/usecase"

	chatbotHTTP "client-portal-service/internal/chatbot/adapters/http/fiber"
	chatbotMongo "client-portal-service/internal/chatbot/adapters/mongo"
	chatbotUsecase "client-portal-service/internal/chatbot/core/usecase"

	"client-portal-service/internal/auth"
	"client-portal-service/internal/config"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "client-portal-service/docs"
)

// @title Client Portal Service API
// @version 1.0
// @description Multi-tenant client-management portal with chatbot usage reporting
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Relational store (accounts, catalog, subscriptions)
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	accountsDB := accountsRepoPg.NewSQLDB(db)

	// Repositories
	userRepository := accountsRepoPg.NewUserRepository(accountsDB)
	productRepository := accountsRepoPg.NewProductRepository(accountsDB)
	subscriptionRepository := accountsRepoPg.NewSubscriptionRepository(accountsDB)
	contactRepository := accountsRepoPg.NewContactRequestRepository(accountsDB)

	// Document store (chatbot menus, logs, answers); dialed per request
	chatbotStore := chatbotMongo.NewStore(cfg.MongoURI, cfg.MongoDatabase, cfg.MongoConnectTimeout)

	// Usecases
	usersUC := accountsUsecase.NewManageUsersUseCase(userRepository)
	productsUC := accountsUsecase.NewManageProductsUseCase(productRepository)
	subsUC := accountsUsecase.NewManageSubscriptionsUseCase(subscriptionRepository, userRepository, productRepository)
	overviewUC := accountsUsecase.NewGetOverviewUseCase(userRepository, productRepository)
	contactsUC := accountsUsecase.NewManageContactsUseCase(contactRepository)

	reportUC := chatbotUsecase.NewGetUsageReportUseCase(chatbotStore, subscriptionRepository, userRepository)
	editorUC := chatbotUsecase.NewEditAnswersUseCase(chatbotStore, subscriptionRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	accountsHandler := accountsHTTP.NewAccountsHandler(usersUC, productsUC, subsUC, overviewUC, contactsUC)
	chatbotHandler := chatbotHTTP.NewChatbotHandler(reportUC, editorUC)

	// Public landing-form intake
	app.Post("/contact", accountsHandler.SubmitContact)

	// Operator endpoints; gated by the upstream auth layer
	admin := app.Group("/admin")
	admin.Get("/overview", accountsHandler.GetOverview)
	admin.Get("/users", accountsHandler.ListUsers)
	admin.Post("/users", accountsHandler.CreateUser)
	admin.Get("/users/:id", accountsHandler.GetUser)
	admin.Put("/users/:id", accountsHandler.UpdateUser)
	admin.Delete("/users/:id", accountsHandler.DeleteUser)
	admin.Get("/products", accountsHandler.ListProducts)
	admin.Post("/products", accountsHandler.CreateProduct)
	admin.Put("/products/:id", accountsHandler.UpdateProduct)
	admin.Delete("/products/:id", accountsHandler.DeleteProduct)
	admin.Get("/users/:id/products", accountsHandler.ListUserProducts)
	admin.Post("/users/:id/products", accountsHandler.AssignProduct)
	admin.Put("/users/:id/products/:productID", accountsHandler.UpdateSubscription)
	admin.Delete("/users/:id/products/:productID", accountsHandler.RemoveSubscription)
	admin.Get("/users/:id/chatbot-report", chatbotHandler.GetAdminReport)
	admin.Get("/contact-requests", accountsHandler.ListContactRequests)
	admin.Get("/contact-requests/:id", accountsHandler.GetContactRequest)
	admin.Put("/contact-requests/:id", accountsHandler.UpdateContactRequest)
	admin.Delete("/contact-requests/:id", accountsHandler.DeleteContactRequest)
	admin.Get("/newsletter/recipients", accountsHandler.GetNewsletterRecipients)

	// Client endpoints; identity comes from the upstream session
	dashboard := app.Group("/dashboard", auth.RequireUser())
	dashboard.Get("/", accountsHandler.GetDashboard)
	dashboard.Get("/chatbot-report", chatbotHandler.GetClientReport)
	dashboard.Get("/chatbot-answers", chatbotHandler.ListAnswers)
	dashboard.Put("/chatbot-answers/:answerID", chatbotHandler.SaveAnswer)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
