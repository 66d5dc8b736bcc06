package service

import (
	"context"
	"time"

	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
)

// LookupService serves the relational lookups. An empty result is reported
// as ErrNotFound.
type LookupService interface {
	CourseStudents(ctx context.Context, courseID uint) ([]model.StudentBrief, error)
	TrainingStudents(ctx context.Context, courseID, trainingID uint) ([]model.StudentBrief, error)
	TrainingStudentsOn(ctx context.Context, courseID, trainingID uint, day string) ([]model.StudentAttendanceRow, error)
	StudentCourses(ctx context.Context, studentID uint) ([]model.Course, error)
	CourseTrainings(ctx context.Context, courseID uint) ([]model.TrainingDetail, error)
	CompanyCourses(ctx context.Context, companyID uint) ([]model.Course, error)
	CompanyStudents(ctx context.Context, companyID uint) ([]model.User, error)
	StudentTrainings(ctx context.Context, studentID uint) ([]model.TrainingDetail, error)
	StudentTrainingTests(ctx context.Context, studentID, trainingID uint) ([]model.TestMaster, error)
}

type lookupService struct {
	repo repository.LookupRepository
}

func NewLookupService(repo repository.LookupRepository) LookupService {
	return &lookupService{repo: repo}
}

func nonEmpty[T any](op string, rows []T, err error) ([]T, error) {
	if err != nil {
		return nil, translateDBError(op, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

func (s *lookupService) CourseStudents(ctx context.Context, courseID uint) ([]model.StudentBrief, error) {
	rows, err := s.repo.CourseStudents(ctx, courseID)
	return nonEmpty("course students", rows, err)
}

func (s *lookupService) TrainingStudents(ctx context.Context, courseID, trainingID uint) ([]model.StudentBrief, error) {
	rows, err := s.repo.TrainingStudents(ctx, courseID, trainingID)
	return nonEmpty("training students", rows, err)
}

func (s *lookupService) TrainingStudentsOn(ctx context.Context, courseID, trainingID uint, day string) ([]model.StudentAttendanceRow, error) {
	d, err := parseDate("att_date", day)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.TrainingStudentsOn(ctx, courseID, trainingID, time.Time(d))
	return nonEmpty("training students on date", rows, err)
}

func (s *lookupService) StudentCourses(ctx context.Context, studentID uint) ([]model.Course, error) {
	rows, err := s.repo.StudentCourses(ctx, studentID)
	return nonEmpty("student courses", rows, err)
}

func (s *lookupService) CourseTrainings(ctx context.Context, courseID uint) ([]model.TrainingDetail, error) {
	rows, err := s.repo.CourseTrainings(ctx, courseID)
	return nonEmpty("course trainings", rows, err)
}

func (s *lookupService) CompanyCourses(ctx context.Context, companyID uint) ([]model.Course, error) {
	rows, err := s.repo.CompanyCourses(ctx, companyID)
	return nonEmpty("company courses", rows, err)
}

func (s *lookupService) CompanyStudents(ctx context.Context, companyID uint) ([]model.User, error) {
	rows, err := s.repo.CompanyStudents(ctx, companyID)
	return nonEmpty("company students", rows, err)
}

func (s *lookupService) StudentTrainings(ctx context.Context, studentID uint) ([]model.TrainingDetail, error) {
	rows, err := s.repo.StudentTrainings(ctx, studentID)
	return nonEmpty("student trainings", rows, err)
}

func (s *lookupService) StudentTrainingTests(ctx context.Context, studentID, trainingID uint) ([]model.TestMaster, error) {
	rows, err := s.repo.StudentTrainingTests(ctx, studentID, trainingID)
	return nonEmpty("student training tests", rows, err)
}
