package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"insurance-intake/internal/config"
	"insurance-intake/internal/domain/interfaces/repository"
	Iservices "insurance-intake/internal/domain/interfaces/services"
	"insurance-intake/internal/infra/handlers"
	"insurance-intake/internal/infra/logger"
	infrarepo "insurance-intake/internal/infra/repository"
	"insurance-intake/internal/infra/routes"
	"insurance-intake/internal/infra/services"
	"insurance-intake/internal/middleware"
	client "insurance-intake/internal/pkg"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/gorilla/mux"
)

func main() {
	config.LoadEnv()

	ctx := context.Background()
	log := logger.NewLogger(ctx, true)

	appConfig, err := config.LoadAppConfig("config/config.yaml")
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	mongoClient := client.MongoClient()
	chatbotDB := mongoClient.Database("chatbot")

	var sessionRepo repository.SessionRepository = infrarepo.NewMongoSessionRepository(chatbotDB)
	var recordRepo repository.RecordRepository = infrarepo.NewMongoRecordRepository(chatbotDB)

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  config.GetEnv("OPENAI_API_KEY"),
		Model:   appConfig.Model,
		BaseURL: config.GetEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
	})
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to create chat model: %v", err))
	}

	intakeAgent, err := services.NewIntakeAgent(chatModel, appConfig.SystemPrompt, log)
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to create intake agent: %v", err))
	}

	var chatService Iservices.IChatService = services.NewChatService(log, sessionRepo, recordRepo, intakeAgent)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	httpHandlers := handlers.NewHttpHandlers(log, chatService)

	routes := routes.NewRoutes(router, httpHandlers)
	routes.Init()

	port := config.GetEnvOrDefault("PORT", "8080")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(fmt.Sprintf("Error running HTTP server: %s", err))
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
