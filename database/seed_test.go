package database_test

import (
	"testing"

	"github.com/lshigami/lms/config"
	"github.com/lshigami/lms/database"
	"github.com/lshigami/lms/internal/auth"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminConfig(email, password string) *config.Config {
	return &config.Config{Auth: config.Auth{AdminEmail: email, AdminUsername: "root", AdminPassword: password}}
}

func TestSeedAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, database.SeedAdmin(db, adminConfig(" Root@LMS.test ", "change-me")))

	var admin model.User
	require.NoError(t, db.Where("role_id = ?", model.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "root@lms.test", admin.Email)
	assert.True(t, admin.IsActive)
	assert.True(t, auth.CheckPassword(admin.Password, "change-me"))

	// A second start does not add another admin.
	require.NoError(t, database.SeedAdmin(db, adminConfig("other@lms.test", "change-me")))
	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("role_id = ?", model.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedAdminWithoutSettings(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, database.SeedAdmin(db, adminConfig("", "")))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSeedAdminShortPassword(t *testing.T) {
	db := testutil.NewTestDB(t)
	assert.ErrorIs(t, database.SeedAdmin(db, adminConfig("root@lms.test", "abc")), database.ErrAdminPasswordTooShort)
}
