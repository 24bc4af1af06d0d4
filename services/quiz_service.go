package services

import (
	"errors"

	"pquiz/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

func (s *QuizService) Create(req *CreateQuizRequest) (*models.Quiz, error) {
	quiz := models.Quiz{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (s *QuizService) List() ([]models.Quiz, error) {
	quizzes := make([]models.Quiz, 0)
	err := s.db.Find(&quizzes).Error
	return quizzes, err
}

// Update overwrites every mutable field of the quiz. An omitted description
// becomes NULL, it does not keep its previous value.
func (s *QuizService) Update(quizID uint, req *CreateQuizRequest) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description

	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, err
	}

	return &quiz, nil
}

// Delete removes the quiz row only. Questions and attempts that reference it
// are left untouched, and a missing id is a silent no-op.
func (s *QuizService) Delete(quizID uint) error {
	return s.db.Delete(&models.Quiz{}, quizID).Error
}
