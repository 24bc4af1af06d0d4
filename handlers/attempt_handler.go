package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pquiz/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{
		attemptService: attemptService,
	}
}

func (h *AttemptHandler) CreateAttempt(c *gin.Context) {
	var req services.CreateAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.attemptService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attempt"})
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	attemptID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attempt ID"})
		return
	}

	attempt, err := h.attemptService.GetByID(uint(attemptID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attempt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attempt"})
		return
	}

	c.JSON(http.StatusOK, attempt)
}
