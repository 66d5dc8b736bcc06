package service

import (
	"testing"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_ScoresBySubject(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	tests := newTestServices(db)
	reports := NewReportService(repository.NewReportRepository(db))

	created, err := tests.admin.CreateTest(ctx, dto.TestCreateDTO{
		TrainingID: f.training.ID, TestName: "Quiz1", Duration: 30, Questions: quizQuestions(),
	}, nil)
	require.NoError(t, err)
	details, err := tests.reader.GetTestDetails(ctx, created.TestID, false)
	require.NoError(t, err)
	_, err = tests.submission.SubmitTest(ctx, Actor{ID: alice.ID, RoleID: model.RoleStudent}, dto.TestSubmitDTO{
		StudentID: alice.ID, TestID: created.TestID,
		Answers: []dto.AnswerSubmitDTO{{QuestionID: details.Questions[0].ID, SelectedOption: "B"}},
	})
	require.NoError(t, err)

	subjects := []struct {
		kind string
		id   uint
		name string
	}{
		{model.ReportStudent, alice.ID, "alice"},
		{model.ReportTraining, f.training.ID, "JS basics"},
		{model.ReportCourse, f.course.ID, "JS101"},
		{model.ReportCompany, f.company.ID, "Acme"},
	}
	for _, s := range subjects {
		t.Run(s.kind, func(t *testing.T) {
			rows, err := reports.Generate(ctx, dto.ReportRequest{ID: s.id, Type: s.kind})
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, s.name, rows[0].Name)
			assert.Equal(t, s.kind, rows[0].Type)
			assert.Equal(t, "Quiz1", rows[0].TestName)
			assert.Equal(t, 1, rows[0].TestScore)
		})
	}

	_, err = reports.Generate(ctx, dto.ReportRequest{ID: f.company.ID + 1, Type: model.ReportCompany})
	assert.ErrorIs(t, err, ErrNotFound)

	var vErr *ValidationError
	_, err = reports.Generate(ctx, dto.ReportRequest{ID: 1, Type: "faculty"})
	assert.ErrorAs(t, err, &vErr)
}
