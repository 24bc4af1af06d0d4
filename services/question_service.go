package services

import (
	"errors"

	"pquiz/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type CreateQuestionRequest struct {
	QuestionText  string `json:"question_text" binding:"required"`
	Choices       string `json:"choices" binding:"required"`
	CorrectAnswer int    `json:"correct_answer"`
}

// Create records the question under the given quiz id without checking that
// the quiz exists.
func (s *QuestionService) Create(quizID uint, req *CreateQuestionRequest) (*models.Question, error) {
	question := models.Question{
		QuizID:        quizID,
		QuestionText:  req.QuestionText,
		Choices:       req.Choices,
		CorrectAnswer: req.CorrectAnswer,
	}

	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

func (s *QuestionService) ListByQuiz(quizID uint) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Where("quiz_id = ?", quizID).Find(&questions).Error
	return questions, err
}

// Update overwrites text, choices and correct answer. The quiz reference is
// immutable once created and is never touched here.
func (s *QuestionService) Update(questionID uint, req *CreateQuestionRequest) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	question.QuestionText = req.QuestionText
	question.Choices = req.Choices
	question.CorrectAnswer = req.CorrectAnswer

	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

func (s *QuestionService) Delete(questionID uint) error {
	return s.db.Delete(&models.Question{}, questionID).Error
}
