package services

import (
	"errors"

	"pquiz/models"

	"gorm.io/gorm"
)

// TaxonomyService is a single CRUD implementation shared by the three lookup
// tables (categories, levels, topics). T is the concrete model and PT its
// pointer type, which carries the table, column and JSON tags.
type TaxonomyService[T any, PT interface {
	*T
	models.Term
}] struct {
	db *gorm.DB
}

func NewTaxonomyService[T any, PT interface {
	*T
	models.Term
}](db *gorm.DB) *TaxonomyService[T, PT] {
	return &TaxonomyService[T, PT]{db: db}
}

func (s *TaxonomyService[T, PT]) Create(term PT) error {
	// The store assigns ids; anything the caller sent is discarded.
	term.SetTermID(0)
	return s.db.Create(term).Error
}

func (s *TaxonomyService[T, PT]) List() ([]T, error) {
	terms := make([]T, 0)
	err := s.db.Find(&terms).Error
	return terms, err
}

// Update overwrites name and description of the row matching id, or returns
// ErrNotFound when there is none.
func (s *TaxonomyService[T, PT]) Update(id uint, term PT) error {
	var existing T
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	term.SetTermID(id)
	return s.db.Save(term).Error
}

func (s *TaxonomyService[T, PT]) Delete(id uint) error {
	var term T
	return s.db.Delete(&term, id).Error
}
