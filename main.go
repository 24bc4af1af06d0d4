package main

import (
	"log"

	"pquiz/config"
	"pquiz/handlers"
	"pquiz/middleware"
	"pquiz/models"
	"pquiz/routes"
	"pquiz/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Ensure all six tables exist before serving anything
	err = db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Attempt{},
		&models.Category{},
		&models.Level{},
		&models.Topic{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize services
	quizService := services.NewQuizService(db)
	questionService := services.NewQuestionService(db)
	attemptService := services.NewAttemptService(db)
	categoryService := services.NewTaxonomyService[models.Category, *models.Category](db)
	levelService := services.NewTaxonomyService[models.Level, *models.Level](db)
	topicService := services.NewTaxonomyService[models.Topic, *models.Topic](db)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	categoryHandler := handlers.NewTaxonomyHandler(categoryService, "Category")
	levelHandler := handlers.NewTaxonomyHandler(levelService, "Level")
	topicHandler := handlers.NewTaxonomyHandler(topicService, "Topic")

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, quizHandler, questionHandler, attemptHandler, categoryHandler, levelHandler, topicHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
