package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceService interface {
	// Submit upserts the batch atomically and returns how many records it took.
	Submit(ctx context.Context, records []dto.AttendanceRecordRequest) (int, error)
	FindAll(ctx context.Context) ([]model.Attendance, error)
	FindByID(ctx context.Context, id uint) (*model.Attendance, error)
	UpdateBatch(ctx context.Context, records []dto.AttendanceUpdateRequest) error
	Delete(ctx context.Context, id uint) error
	Grid(ctx context.Context, trainingID, courseID, companyID uint) ([]model.AttendanceRow, error)
}

type attendanceService struct {
	repo       repository.AttendanceRepository
	db         *gorm.DB
	windowDays int
	now        func() time.Time
}

func NewAttendanceService(repo repository.AttendanceRepository, db *gorm.DB, cfg *config.Config) AttendanceService {
	return newAttendanceService(repo, db, cfg.Attendance.WindowDays, time.Now)
}

func newAttendanceService(repo repository.AttendanceRepository, db *gorm.DB, windowDays int, now func() time.Time) *attendanceService {
	if windowDays <= 0 {
		windowDays = 5
	}
	return &attendanceService{repo: repo, db: db, windowDays: windowDays, now: now}
}

// checkDate enforces the recording window: not in the future and not more
// than windowDays back, both measured in whole UTC days.
func (s *attendanceService) checkDate(field string, d datatypes.Date) error {
	y, m, day := s.now().UTC().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	t := time.Time(d)
	if t.After(today) {
		return invalid(field, "attendance date cannot be in the future")
	}
	if t.Before(today.AddDate(0, 0, -s.windowDays)) {
		return invalid(field, fmt.Sprintf("attendance date must be within the last %d days", s.windowDays))
	}
	return nil
}

func (s *attendanceService) toModel(field string, r dto.AttendanceRecordRequest) (model.Attendance, *ValidationError) {
	d, err := parseDate(field+".attendance_date", r.AttendanceDate)
	if err != nil {
		return model.Attendance{}, err.(*ValidationError)
	}
	if err := s.checkDate(field+".attendance_date", d); err != nil {
		return model.Attendance{}, err.(*ValidationError)
	}
	if r.Status != model.AttendancePresent && r.Status != model.AttendanceAbsent {
		return model.Attendance{}, invalid(field+".status", "must be present or absent")
	}
	return model.Attendance{
		StudentID:      r.StudentID,
		CourseID:       r.CourseID,
		TrainingID:     r.TrainingID,
		AttendanceDate: d,
		Status:         r.Status,
	}, nil
}

type attendanceKey struct {
	student, course, training uint
	day                       string
}

func (s *attendanceService) Submit(ctx context.Context, records []dto.AttendanceRecordRequest) (int, error) {
	if len(records) == 0 {
		return 0, invalid("records", "at least one attendance record is required")
	}

	fields := map[string]string{}
	index := map[attendanceKey]int{}
	rows := make([]model.Attendance, 0, len(records))
	for i, r := range records {
		row, verr := s.toModel(fmt.Sprintf("records[%d]", i), r)
		if verr != nil {
			for k, v := range verr.Fields {
				fields[k] = v
			}
			continue
		}
		// the last record for a key wins, as it would with sequential upserts
		k := attendanceKey{row.StudentID, row.CourseID, row.TrainingID, time.Time(row.AttendanceDate).Format(dateLayout)}
		if at, dup := index[k]; dup {
			rows[at] = row
			continue
		}
		index[k] = len(rows)
		rows = append(rows, row)
	}
	if len(fields) > 0 {
		return 0, &ValidationError{Fields: fields}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Upsert(ctx, rows)
	})
	if err != nil {
		log.Error().Err(err).Int("records", len(rows)).Msg("Failed to submit attendance")
		return 0, translateDBError("submit attendance", err)
	}
	log.Info().Int("records", len(rows)).Msg("Attendance submitted")
	return len(rows), nil
}

func (s *attendanceService) FindAll(ctx context.Context) ([]model.Attendance, error) {
	records, err := s.repo.FindAll(ctx)
	return records, translateDBError("list attendance", err)
}

func (s *attendanceService) FindByID(ctx context.Context, id uint) (*model.Attendance, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError("find attendance", err)
	}
	return record, nil
}

func (s *attendanceService) UpdateBatch(ctx context.Context, records []dto.AttendanceUpdateRequest) error {
	if len(records) == 0 {
		return invalid("records", "at least one attendance record is required")
	}
	fields := map[string]string{}
	rows := make([]model.Attendance, 0, len(records))
	for i, r := range records {
		row, verr := s.toModel(fmt.Sprintf("records[%d]", i), r.AttendanceRecordRequest)
		if verr != nil {
			for k, v := range verr.Fields {
				fields[k] = v
			}
			continue
		}
		row.ID = r.ID
		rows = append(rows, row)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for i := range rows {
			if err := repo.Update(ctx, &rows[i]); err != nil {
				return fmt.Errorf("attendance %d: %w", rows[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return translateDBError("update attendance", err)
	}
	return nil
}

func (s *attendanceService) Delete(ctx context.Context, id uint) error {
	return translateDBError("delete attendance", s.repo.Delete(ctx, id))
}

func (s *attendanceService) Grid(ctx context.Context, trainingID, courseID, companyID uint) ([]model.AttendanceRow, error) {
	rows, err := s.repo.Grid(ctx, trainingID, courseID, companyID)
	if err != nil {
		return nil, translateDBError("attendance grid", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}
