package services

import (
	"errors"

	"pquiz/models"

	"gorm.io/gorm"
)

type AttemptService struct {
	db *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{db: db}
}

type CreateAttemptRequest struct {
	QuizID  uint   `json:"quiz_id"`
	UserID  int64  `json:"user_id"`
	Answers string `json:"answers" binding:"required"`
}

func (s *AttemptService) Create(req *CreateAttemptRequest) (*models.Attempt, error) {
	attempt := models.Attempt{
		QuizID:  req.QuizID,
		UserID:  req.UserID,
		Answers: req.Answers,
	}

	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	return &attempt, nil
}

func (s *AttemptService) GetByID(attemptID uint) (*models.Attempt, error) {
	var attempt models.Attempt
	if err := s.db.First(&attempt, attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}
