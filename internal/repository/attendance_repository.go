package repository

import (
	"context"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	WithTx(tx *gorm.DB) AttendanceRepository
	// Upsert inserts each record or, when its (student, course, training, date)
	// key exists, overwrites the status in place.
	Upsert(ctx context.Context, records []model.Attendance) error
	FindAll(ctx context.Context) ([]model.Attendance, error)
	FindByID(ctx context.Context, id uint) (*model.Attendance, error)
	Update(ctx context.Context, record *model.Attendance) error
	Delete(ctx context.Context, id uint) error
	// Grid lists the recorded (student, date) rows of a training.
	Grid(ctx context.Context, trainingID, courseID, companyID uint) ([]model.AttendanceRow, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) WithTx(tx *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: tx}
}

func (r *attendanceRepository) Upsert(ctx context.Context, records []model.Attendance) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"}, {Name: "course_id"}, {Name: "training_id"}, {Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(&records).Error
}

func (r *attendanceRepository) FindAll(ctx context.Context) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).Order("attendance_date DESC, id ASC").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) FindByID(ctx context.Context, id uint) (*model.Attendance, error) {
	var record model.Attendance
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) Update(ctx context.Context, record *model.Attendance) error {
	return affected(r.db.WithContext(ctx).Model(&model.Attendance{}).Where("id = ?", record.ID).
		Select("student_id", "course_id", "training_id", "attendance_date", "status").
		Updates(record))
}

func (r *attendanceRepository) Delete(ctx context.Context, id uint) error {
	return affected(r.db.WithContext(ctx).Delete(&model.Attendance{}, id))
}

func (r *attendanceRepository) Grid(ctx context.Context, trainingID, courseID, companyID uint) ([]model.AttendanceRow, error) {
	var rows []model.AttendanceRow
	err := r.db.WithContext(ctx).Table("attendance a").
		Select("a.*, u.username AS student_name").
		Joins("JOIN users u ON u.id = a.student_id").
		Joins("JOIN courses c ON c.id = a.course_id").
		Where("a.training_id = ? AND a.course_id = ? AND c.company_id = ?", trainingID, courseID, companyID).
		Order("u.username ASC, a.attendance_date ASC").
		Scan(&rows).Error
	return rows, err
}
