package dto

import (
	"time"

	"gorm.io/datatypes"
)

// QuestionInputDTO is one MCQ as typed by faculty or read from an import file.
// CorrectAnswer accepts A-D, 1-4 or the text of the right option.
type QuestionInputDTO struct {
	QuestionText  string `json:"question_text" binding:"required"`
	Option1       string `json:"option_1" binding:"required"`
	Option2       string `json:"option_2" binding:"required"`
	Option3       string `json:"option_3" binding:"required"`
	Option4       string `json:"option_4" binding:"required"`
	CorrectAnswer string `json:"correct_answer" binding:"required"`
}

// TestCreateDTO arrives either as JSON or as multipart form fields next to a
// question file.
type TestCreateDTO struct {
	TrainingID uint               `json:"training_id" form:"training_id" binding:"required"`
	TestName   string             `json:"test_name" form:"test_name" binding:"required"`
	Duration   int                `json:"duration" form:"duration" binding:"required,gt=0"`
	FromDate   string             `json:"from_date" form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate     string             `json:"to_date" form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Questions  []QuestionInputDTO `json:"questions" form:"-" binding:"omitempty,dive"`
}

// TestUpdateDTO is a partial update; nil fields are left untouched.
type TestUpdateDTO struct {
	TrainingID *uint   `json:"training_id" binding:"omitempty,gt=0"`
	TestName   *string `json:"test_name" binding:"omitempty,min=1"`
	FromDate   *string `json:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate     *string `json:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Duration   *int    `json:"duration" binding:"omitempty,gt=0"`
}

type TestListFilter struct {
	TrainingID uint   `form:"training_id"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type TestCreatedDTO struct {
	Message       string `json:"message"`
	TestID        uint   `json:"test_id"`
	QuestionCount int    `json:"question_count"`
}

type QuestionResponseDTO struct {
	ID            uint   `json:"id"`
	TestID        uint   `json:"test_id"`
	TrainingID    uint   `json:"training_id"`
	QuestionText  string `json:"question_text"`
	Option1       string `json:"option_1"`
	Option2       string `json:"option_2"`
	Option3       string `json:"option_3"`
	Option4       string `json:"option_4"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

type TestResponseDTO struct {
	TestID     uint                  `json:"test_id"`
	TrainingID uint                  `json:"training_id"`
	TestName   string                `json:"test_name"`
	Duration   int                   `json:"duration"`
	FromDate   *datatypes.Date       `json:"from_date"`
	ToDate     *datatypes.Date       `json:"to_date"`
	Questions  []QuestionResponseDTO `json:"questions"`
	CreatedAt  time.Time             `json:"created_at"`
}

type AnswerSubmitDTO struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option"`
}

type TestSubmitDTO struct {
	StudentID uint              `json:"student_id" binding:"required"`
	TestID    uint              `json:"test_id" binding:"required"`
	Answers   []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

type SubmissionResultDTO struct {
	Message        string `json:"message"`
	ScoreID        uint   `json:"score_id"`
	TestID         uint   `json:"test_id"`
	StudentID      uint   `json:"student_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}
