package repository

import (
	"context"
	"time"

	"github.com/lshigami/lms/internal/model"
	"gorm.io/gorm"
)

// LookupRepository answers the cross-entity questions the admin and student
// screens ask. Every call is a fresh join.
type LookupRepository interface {
	CourseStudents(ctx context.Context, courseID uint) ([]model.StudentBrief, error)
	TrainingStudents(ctx context.Context, courseID, trainingID uint) ([]model.StudentBrief, error)
	TrainingStudentsOn(ctx context.Context, courseID, trainingID uint, day time.Time) ([]model.StudentAttendanceRow, error)
	StudentCourses(ctx context.Context, studentID uint) ([]model.Course, error)
	CourseTrainings(ctx context.Context, courseID uint) ([]model.TrainingDetail, error)
	CompanyCourses(ctx context.Context, companyID uint) ([]model.Course, error)
	CompanyStudents(ctx context.Context, companyID uint) ([]model.User, error)
	StudentTrainings(ctx context.Context, studentID uint) ([]model.TrainingDetail, error)
	StudentTrainingTests(ctx context.Context, studentID, trainingID uint) ([]model.TestMaster, error)
}

type lookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) CourseStudents(ctx context.Context, courseID uint) ([]model.StudentBrief, error) {
	var rows []model.StudentBrief
	err := r.db.WithContext(ctx).Table("courses cu").
		Select("u.id, u.username").
		Joins("JOIN users u ON u.company_id = cu.company_id").
		Where("u.role_id = ? AND u.isactive = ? AND cu.id = ?", model.RoleStudent, true, courseID).
		Order("u.username ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *lookupRepository) trainingStudents(ctx context.Context, courseID, trainingID uint) *gorm.DB {
	return r.db.WithContext(ctx).Table("courses cu").
		Joins("JOIN users u ON u.company_id = cu.company_id").
		Joins("JOIN training_details td ON td.course_id = cu.id").
		Where("u.role_id = ? AND u.isactive = ? AND cu.id = ? AND td.id = ?", model.RoleStudent, true, courseID, trainingID)
}

func (r *lookupRepository) TrainingStudents(ctx context.Context, courseID, trainingID uint) ([]model.StudentBrief, error) {
	var rows []model.StudentBrief
	err := r.trainingStudents(ctx, courseID, trainingID).
		Select("u.id, u.username").
		Order("u.username ASC").
		Scan(&rows).Error
	return rows, err
}

// TrainingStudentsOn joins each student to their own attendance row of that day.
func (r *lookupRepository) TrainingStudentsOn(ctx context.Context, courseID, trainingID uint, day time.Time) ([]model.StudentAttendanceRow, error) {
	var rows []model.StudentAttendanceRow
	err := r.trainingStudents(ctx, courseID, trainingID).
		Select("u.id, u.username, a.id AS attendance_id, a.attendance_date, a.status").
		Joins("LEFT JOIN attendance a ON a.training_id = td.id AND a.student_id = u.id AND a.attendance_date = ?", day).
		Order("u.username ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *lookupRepository) StudentCourses(ctx context.Context, studentID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Table("courses cu").
		Select("cu.*").
		Joins("JOIN users u ON u.company_id = cu.company_id").
		Where("u.role_id = ? AND u.id = ? AND cu.status = ?", model.RoleStudent, studentID, model.StatusActive).
		Order("cu.id ASC").
		Scan(&courses).Error
	return courses, err
}

func (r *lookupRepository) CourseTrainings(ctx context.Context, courseID uint) ([]model.TrainingDetail, error) {
	var trainings []model.TrainingDetail
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND status = ?", courseID, model.StatusActive).
		Order("from_date ASC, id ASC").
		Find(&trainings).Error
	return trainings, err
}

func (r *lookupRepository) CompanyCourses(ctx context.Context, companyID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ?", companyID, model.StatusActive).
		Order("id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *lookupRepository) CompanyStudents(ctx context.Context, companyID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND role_id = ? AND isactive = ?", companyID, model.RoleStudent, true).
		Order("username ASC").
		Find(&users).Error
	return users, err
}

func (r *lookupRepository) StudentTrainings(ctx context.Context, studentID uint) ([]model.TrainingDetail, error) {
	var trainings []model.TrainingDetail
	err := r.db.WithContext(ctx).Table("student_trainings st").
		Select("td.*").
		Joins("JOIN training_details td ON td.id = st.training_id").
		Where("st.student_id = ? AND td.status = ?", studentID, model.StatusActive).
		Order("td.from_date ASC, td.id ASC").
		Scan(&trainings).Error
	return trainings, err
}

func (r *lookupRepository) StudentTrainingTests(ctx context.Context, studentID, trainingID uint) ([]model.TestMaster, error) {
	var tests []model.TestMaster
	err := r.db.WithContext(ctx).Table("student_trainings st").
		Select("t.*").
		Joins("JOIN test_master t ON t.training_id = st.training_id").
		Where("st.student_id = ? AND st.training_id = ?", studentID, trainingID).
		Order("t.test_id ASC").
		Scan(&tests).Error
	return tests, err
}
