package models

// Attempt is append-only: created once, read individually, never updated or
// deleted. Answers is opaque serialized text, same posture as Question.Choices.
type Attempt struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	QuizID  uint   `json:"quiz_id" gorm:"index"`
	UserID  int64  `json:"user_id"`
	Answers string `json:"answers" gorm:"not null"`
}
