package models

// Question references its quiz by id only. The column is a recorded value,
// not a database-level foreign key: the parent quiz is never verified at
// write time and deleting a quiz leaves its questions in place.
type Question struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	QuizID       uint   `json:"quiz_id" gorm:"index"`
	QuestionText string `json:"question_text" gorm:"not null"`
	// Choices holds the caller's serialized option list verbatim; this layer
	// never parses it, and CorrectAnswer is not bounds-checked against it.
	Choices       string `json:"choices" gorm:"not null"`
	CorrectAnswer int    `json:"correct_answer"`
}
