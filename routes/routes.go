package routes

import (
	"net/http"

	"pquiz/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	quizHandler *handlers.QuizHandler,
	questionHandler *handlers.QuestionHandler,
	attemptHandler *handlers.AttemptHandler,
	categoryHandler *handlers.CategoryHandler,
	levelHandler *handlers.LevelHandler,
	topicHandler *handlers.TopicHandler,
) {
	// Quiz routes, with question creation and listing scoped under the quiz
	quizzes := router.Group("/quizzes")
	{
		quizzes.POST("", quizHandler.CreateQuiz)
		quizzes.GET("", quizHandler.GetQuizzes)
		quizzes.PUT("/:id", quizHandler.UpdateQuiz)
		quizzes.DELETE("/:id", quizHandler.DeleteQuiz)

		quizzes.POST("/:id/questions", questionHandler.CreateQuestion)
		quizzes.GET("/:id/questions", questionHandler.GetQuestions)
	}

	// Question update and delete address the question directly
	questions := router.Group("/questions")
	{
		questions.PUT("/:id", questionHandler.UpdateQuestion)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	// Attempts are append-only: create and fetch by id, nothing else
	attempts := router.Group("/attempts")
	{
		attempts.POST("", attemptHandler.CreateAttempt)
		attempts.GET("/:id", attemptHandler.GetAttempt)
	}

	// Taxonomy routes, one identical group per lookup table
	categories := router.Group("/categories")
	{
		categories.POST("", categoryHandler.Create)
		categories.GET("", categoryHandler.List)
		categories.PUT("/:id", categoryHandler.Update)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	levels := router.Group("/levels")
	{
		levels.POST("", levelHandler.Create)
		levels.GET("", levelHandler.List)
		levels.PUT("/:id", levelHandler.Update)
		levels.DELETE("/:id", levelHandler.Delete)
	}

	topics := router.Group("/topics")
	{
		topics.POST("", topicHandler.Create)
		topics.GET("", topicHandler.List)
		topics.PUT("/:id", topicHandler.Update)
		topics.DELETE("/:id", topicHandler.Delete)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
