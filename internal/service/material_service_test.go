package service

import (
	"io"
	"strings"
	"testing"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/storage"
	"github.com/lshigami/lms/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterial_UploadDownloadDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	fs := afero.NewMemMapFs()
	svc := NewMaterialService(repository.NewMaterialRepository(db), storage.NewFromFs(fs))

	req := dto.MaterialUploadRequest{TrainingID: f.training.ID, FacultyID: f.faculty.ID, MaterialName: "Week 1", TrainingDate: "2024-01-10"}
	materials, err := svc.Upload(ctx, req, []FileUpload{
		{Filename: "slides.pdf", Content: strings.NewReader("slides")},
		{Filename: "notes.txt", Content: strings.NewReader("notes")},
	})
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, "Week 1 (slides.pdf)", materials[0].MaterialName)

	rows, err := svc.FindByTraining(ctx, f.training.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "faculty", rows[0].FacultyName)
	assert.Equal(t, "JS101", rows[0].CourseName)

	file, name, err := svc.Open(ctx, materials[0].ID)
	require.NoError(t, err)
	body, err := io.ReadAll(file)
	require.NoError(t, file.Close())
	require.NoError(t, err)
	assert.Equal(t, "slides", string(body))
	assert.Equal(t, "slides.pdf", name)

	require.NoError(t, svc.Delete(ctx, materials[0].ID))
	exists, err := afero.Exists(fs, materials[0].FilePath)
	require.NoError(t, err)
	assert.False(t, exists)
	_, _, err = svc.Open(ctx, materials[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMaterial_UploadLimits(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	svc := NewMaterialService(repository.NewMaterialRepository(db), storage.NewFromFs(afero.NewMemMapFs()))
	req := dto.MaterialUploadRequest{TrainingID: f.training.ID, FacultyID: f.faculty.ID, MaterialName: "Week 1", TrainingDate: "2024-01-10"}

	var vErr *ValidationError
	_, err := svc.Upload(ctx, req, nil)
	assert.ErrorAs(t, err, &vErr)

	files := make([]FileUpload, MaxMaterialFiles+1)
	for i := range files {
		files[i] = FileUpload{Filename: "f.txt", Content: strings.NewReader("x")}
	}
	_, err = svc.Upload(ctx, req, files)
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.FindForStudent(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentMaterials_FollowMapping(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	materials := NewMaterialService(repository.NewMaterialRepository(db), storage.NewFromFs(afero.NewMemMapFs()))
	mapping := NewMappingService(repository.NewStudentTrainingRepository(db), repository.NewTrainingRepository(db), db)

	_, err := materials.Upload(ctx, dto.MaterialUploadRequest{
		TrainingID: f.training.ID, FacultyID: f.faculty.ID, MaterialName: "Intro", TrainingDate: "2024-01-10",
	}, []FileUpload{{Filename: "intro.pdf", Content: strings.NewReader("intro")}})
	require.NoError(t, err)

	_, err = materials.FindForStudent(ctx, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mapping.Map(ctx, f.training.ID, []uint{alice.ID}))
	rows, err := materials.FindForStudent(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Intro", rows[0].MaterialName)
}
