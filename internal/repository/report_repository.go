package repository

import (
	"context"
	"fmt"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

type ReportRepository interface {
	// Scores lists every recorded score that belongs to the entity of the
	// given report type and id.
	Scores(ctx context.Context, reportType string, id uint) ([]model.ReportRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// reportSubjects maps a report type onto the id and name columns of the
// joined score view.
var reportSubjects = map[string][2]string{
	model.ReportStudent:  {"u.id", "u.username"},
	model.ReportTraining: {"td.id", "td.training_name"},
	model.ReportCourse:   {"c.id", "c.name"},
	model.ReportCompany:  {"co.id", "co.name"},
}

func (r *reportRepository) Scores(ctx context.Context, reportType string, id uint) ([]model.ReportRow, error) {
	subject, ok := reportSubjects[reportType]
	if !ok {
		return nil, fmt.Errorf("unknown report type %q", reportType)
	}
	var rows []model.ReportRow
	err := r.db.WithContext(ctx).Table("test_scores ts").
		Select(fmt.Sprintf(`%s AS id, %s AS name, u.id AS student_id, u.username AS student_name,
			t.test_id, t.test_name, ts.score AS test_score, ts.created_at AS submitted_at`, subject[0], subject[1])).
		Joins("JOIN users u ON u.id = ts.student_id").
		Joins("JOIN test_master t ON t.test_id = ts.test_id").
		Joins("JOIN training_details td ON td.id = t.training_id").
		Joins("JOIN courses c ON c.id = td.course_id").
		Joins("JOIN companies co ON co.id = c.company_id").
		Where(subject[0]+" = ?", id).
		Order("ts.created_at ASC, ts.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Type = reportType
	}
	return rows, nil
}
