package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pquiz/models"
	"pquiz/services"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler serves one lookup table. The model's own binding and JSON
// tags drive request validation, so the handler binds straight into the
// entity instead of a separate request struct.
type TaxonomyHandler[T any, PT interface {
	*T
	models.Term
}] struct {
	service *services.TaxonomyService[T, PT]
	label   string
}

func NewTaxonomyHandler[T any, PT interface {
	*T
	models.Term
}](service *services.TaxonomyService[T, PT], label string) *TaxonomyHandler[T, PT] {
	return &TaxonomyHandler[T, PT]{
		service: service,
		label:   label,
	}
}

// Instantiations used by the route table.
type (
	CategoryHandler = TaxonomyHandler[models.Category, *models.Category]
	LevelHandler    = TaxonomyHandler[models.Level, *models.Level]
	TopicHandler    = TaxonomyHandler[models.Topic, *models.Topic]
)

func (h *TaxonomyHandler[T, PT]) Create(c *gin.Context) {
	term := PT(new(T))
	if err := c.ShouldBindJSON(term); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Create(term); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + strings.ToLower(h.label)})
		return
	}

	c.JSON(http.StatusCreated, term)
}

func (h *TaxonomyHandler[T, PT]) List(c *gin.Context) {
	terms, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list " + strings.ToLower(h.label) + " entries"})
		return
	}

	c.JSON(http.StatusOK, terms)
}

func (h *TaxonomyHandler[T, PT]) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + strings.ToLower(h.label) + " ID"})
		return
	}

	term := PT(new(T))
	if err := c.ShouldBindJSON(term); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Update(uint(id), term); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.label + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + strings.ToLower(h.label)})
		return
	}

	c.JSON(http.StatusOK, term)
}

func (h *TaxonomyHandler[T, PT]) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + strings.ToLower(h.label) + " ID"})
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete " + strings.ToLower(h.label)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": h.label + " deleted successfully"})
}
