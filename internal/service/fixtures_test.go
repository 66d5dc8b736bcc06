package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/lms/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// fixture is the minimal world most service tests start from: one company
// with a course, a faculty member and an active training.
type fixture struct {
	company  model.Company
	course   model.Course
	faculty  model.User
	training model.TrainingDetail
}

func newFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{company: model.Company{Name: "Acme"}}
	require.NoError(t, db.Create(&f.company).Error)

	f.course = model.Course{Name: "JS101", CompanyID: f.company.ID, Status: model.StatusActive}
	require.NoError(t, db.Create(&f.course).Error)

	f.faculty = model.User{Email: "faculty@acme.test", Username: "faculty", Password: "x", RoleID: model.RoleFaculty, CompanyID: f.company.ID, IsActive: true}
	require.NoError(t, db.Create(&f.faculty).Error)

	day := datatypes.Date(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	f.training = model.TrainingDetail{
		TrainingName: "JS basics",
		CourseID:     f.course.ID,
		FromDate:     day,
		ToDate:       day,
		TrainingType: "Online",
		FacultyID:    f.faculty.ID,
		CompanyID:    f.company.ID,
		Status:       model.StatusActive,
	}
	require.NoError(t, db.Create(&f.training).Error)
	return f
}

func (f fixture) addStudent(t *testing.T, db *gorm.DB, username string) model.User {
	t.Helper()
	u := model.User{
		Email:     username + "@acme.test",
		Username:  username,
		Password:  "x",
		RoleID:    model.RoleStudent,
		CompanyID: f.company.ID,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

var ctx = context.Background()
