package service

import (
	"testing"
	"time"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC) }

func TestAttendanceSubmit_UpsertsInPlace(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	bob := f.addStudent(t, db, "bob")
	svc := newAttendanceService(repository.NewAttendanceRepository(db), db, 5, fixedNow)

	record := func(studentID uint, status string) dto.AttendanceRecordRequest {
		return dto.AttendanceRecordRequest{
			StudentID: studentID, CourseID: f.course.ID, TrainingID: f.training.ID,
			AttendanceDate: "2024-03-14", Status: status,
		}
	}

	n, err := svc.Submit(ctx, []dto.AttendanceRecordRequest{record(alice.ID, "present"), record(bob.ID, "absent")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.Submit(ctx, []dto.AttendanceRecordRequest{record(alice.ID, "absent")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	byStudent := map[uint]string{}
	for _, a := range all {
		byStudent[a.StudentID] = a.Status
	}
	assert.Equal(t, "absent", byStudent[alice.ID])
	assert.Equal(t, "absent", byStudent[bob.ID])

	grid, err := svc.Grid(ctx, f.training.ID, f.course.ID, f.company.ID)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, "alice", grid[0].StudentName)
}

func TestAttendanceSubmit_DuplicateKeysInBatchLastWins(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	svc := newAttendanceService(repository.NewAttendanceRepository(db), db, 5, fixedNow)

	rec := dto.AttendanceRecordRequest{StudentID: alice.ID, CourseID: f.course.ID, TrainingID: f.training.ID, AttendanceDate: "2024-03-15", Status: "present"}
	again := rec
	again.Status = "absent"

	n, err := svc.Submit(ctx, []dto.AttendanceRecordRequest{rec, again})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var rows []model.Attendance
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "absent", rows[0].Status)
}

func TestAttendanceSubmit_Window(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	svc := newAttendanceService(repository.NewAttendanceRepository(db), db, 5, fixedNow)

	tests := []struct {
		name  string
		date  string
		field string
	}{
		{"today", "2024-03-15", ""},
		{"oldest allowed", "2024-03-10", ""},
		{"tomorrow", "2024-03-16", "records[0].attendance_date"},
		{"too old", "2024-03-09", "records[0].attendance_date"},
		{"malformed", "15/03/2024", "records[0].attendance_date"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, []dto.AttendanceRecordRequest{{
				StudentID: alice.ID, CourseID: f.course.ID, TrainingID: f.training.ID,
				AttendanceDate: tc.date, Status: "present",
			}})
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tc.field)
		})
	}
}

func TestAttendanceSubmit_RejectsWholeBatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	svc := newAttendanceService(repository.NewAttendanceRepository(db), db, 5, fixedNow)

	_, err := svc.Submit(ctx, []dto.AttendanceRecordRequest{
		{StudentID: alice.ID, CourseID: f.course.ID, TrainingID: f.training.ID, AttendanceDate: "2024-03-15", Status: "present"},
		{StudentID: alice.ID, CourseID: f.course.ID, TrainingID: f.training.ID, AttendanceDate: "2024-03-14", Status: "late"},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "records[1].status")

	var count int64
	require.NoError(t, db.Model(&model.Attendance{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = svc.Submit(ctx, nil)
	assert.ErrorAs(t, err, &vErr)
}

func TestAttendanceUpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	svc := newAttendanceService(repository.NewAttendanceRepository(db), db, 5, fixedNow)

	base := dto.AttendanceRecordRequest{StudentID: alice.ID, CourseID: f.course.ID, TrainingID: f.training.ID, AttendanceDate: "2024-03-15", Status: "present"}
	_, err := svc.Submit(ctx, []dto.AttendanceRecordRequest{base})
	require.NoError(t, err)
	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	id := all[0].ID

	changed := base
	changed.Status = "absent"
	require.NoError(t, svc.UpdateBatch(ctx, []dto.AttendanceUpdateRequest{{ID: id, AttendanceRecordRequest: changed}}))
	got, err := svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "absent", got.Status)

	err = svc.UpdateBatch(ctx, []dto.AttendanceUpdateRequest{{ID: id + 100, AttendanceRecordRequest: changed}})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
	_, err = svc.Grid(ctx, f.training.ID, f.course.ID, f.company.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
