package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_Create(t *testing.T) {
	t.Parallel()

	svc := NewQuestionService(newTestDB(t))

	// The parent quiz does not exist; the reference is recorded regardless
	question, err := svc.Create(42, &CreateQuestionRequest{
		QuestionText:  "2+2?",
		Choices:       `["3","4"]`,
		CorrectAnswer: 1,
	})
	require.NoError(t, err)
	assert.NotZero(t, question.ID)
	assert.Equal(t, uint(42), question.QuizID)
	assert.Equal(t, "2+2?", question.QuestionText)
	assert.Equal(t, `["3","4"]`, question.Choices)
	assert.Equal(t, 1, question.CorrectAnswer)
}

func TestQuestionService_ListByQuiz(t *testing.T) {
	t.Parallel()

	svc := NewQuestionService(newTestDB(t))

	_, err := svc.Create(1, &CreateQuestionRequest{QuestionText: "2+2?", Choices: `["3","4"]`, CorrectAnswer: 1})
	require.NoError(t, err)
	_, err = svc.Create(1, &CreateQuestionRequest{QuestionText: "3*3?", Choices: `["6","9"]`, CorrectAnswer: 1})
	require.NoError(t, err)
	_, err = svc.Create(2, &CreateQuestionRequest{QuestionText: "Capital of France?", Choices: `["Paris","Rome"]`, CorrectAnswer: 0})
	require.NoError(t, err)

	questions, err := svc.ListByQuiz(1)
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	questions, err = svc.ListByQuiz(99)
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestQuestionService_Update(t *testing.T) {
	t.Parallel()

	svc := NewQuestionService(newTestDB(t))

	created, err := svc.Create(1, &CreateQuestionRequest{QuestionText: "2+2?", Choices: `["3","4"]`, CorrectAnswer: 1})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &CreateQuestionRequest{
		QuestionText:  "2+3?",
		Choices:       `["4","5"]`,
		CorrectAnswer: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2+3?", updated.QuestionText)
	assert.Equal(t, `["4","5"]`, updated.Choices)
	// quiz_id is immutable through update
	assert.Equal(t, uint(1), updated.QuizID)

	_, err = svc.Update(999, &CreateQuestionRequest{QuestionText: "x", Choices: "[]", CorrectAnswer: 0})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestionService_Delete(t *testing.T) {
	t.Parallel()

	svc := NewQuestionService(newTestDB(t))

	created, err := svc.Create(1, &CreateQuestionRequest{QuestionText: "2+2?", Choices: `["3","4"]`, CorrectAnswer: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	questions, err := svc.ListByQuiz(1)
	require.NoError(t, err)
	assert.Empty(t, questions)

	assert.NoError(t, svc.Delete(999))
}

func TestQuestionsSurviveQuizDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	quizzes := NewQuizService(db)
	questions := NewQuestionService(db)

	quiz, err := quizzes.Create(&CreateQuizRequest{Title: "Math"})
	require.NoError(t, err)

	created, err := questions.Create(quiz.ID, &CreateQuestionRequest{QuestionText: "2+2?", Choices: `["3","4"]`, CorrectAnswer: 1})
	require.NoError(t, err)

	require.NoError(t, quizzes.Delete(quiz.ID))

	// No cascade: the question still lists under the now-dangling quiz id
	remaining, err := questions.ListByQuiz(quiz.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, created.ID, remaining[0].ID)
}
