package service

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/storage"
	"github.com/lshigami/lms/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentDocument_OwnerOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	bob := f.addStudent(t, db, "bob")
	svc := NewStudentDocumentService(repository.NewStudentDocumentRepository(db), storage.NewFromFs(afero.NewMemMapFs()))

	asAlice := Actor{ID: alice.ID, RoleID: model.RoleStudent}
	asBob := Actor{ID: bob.ID, RoleID: model.RoleStudent}
	asFaculty := Actor{ID: f.faculty.ID, RoleID: model.RoleFaculty}

	req := dto.StudentDocumentUploadRequest{StudentID: alice.ID, CourseID: f.course.ID, ProjectType: "capstone"}
	_, err := svc.Upload(ctx, asBob, req, []FileUpload{{Filename: "forged.txt", Content: strings.NewReader("x")}})
	assert.ErrorIs(t, err, ErrForbidden)

	docs, err := svc.Upload(ctx, asAlice, req, []FileUpload{{Filename: "report.txt", Content: strings.NewReader("alice only")}})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	id := docs[0].ID

	_, _, err = svc.Open(ctx, asBob, id)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Update(ctx, asBob, id, dto.StudentDocumentUpdateRequest{StudentID: bob.ID, CourseID: f.course.ID, DocumentName: "mine.txt"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, asBob, id), ErrForbidden)

	// A student cannot hand a document over to someone else either.
	_, err = svc.Update(ctx, asAlice, id, dto.StudentDocumentUpdateRequest{StudentID: bob.ID, CourseID: f.course.ID, DocumentName: "gift.txt"})
	assert.ErrorIs(t, err, ErrForbidden)

	mine, err := svc.FindAll(ctx, asBob)
	require.NoError(t, err)
	assert.Empty(t, mine)
	all, err := svc.FindAll(ctx, asFaculty)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	file, name, err := svc.Open(ctx, asFaculty, id)
	require.NoError(t, err)
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	file.Close()
	assert.Equal(t, "alice only", string(body))
	assert.Equal(t, "report.txt", name)

	renamed, err := svc.Update(ctx, asAlice, id, dto.StudentDocumentUpdateRequest{StudentID: alice.ID, CourseID: f.course.ID, DocumentName: "final.txt"})
	require.NoError(t, err)
	assert.Equal(t, "final.txt", renamed.DocumentName)
	assert.Equal(t, docs[0].FilePath, renamed.FilePath)

	require.NoError(t, svc.Delete(ctx, asAlice, id))
	_, err = svc.FindByID(ctx, asFaculty, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentDocument_UploadIsAllOrNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	f := newFixture(t, db)
	alice := f.addStudent(t, db, "alice")
	fs := afero.NewMemMapFs()
	svc := NewStudentDocumentService(repository.NewStudentDocumentRepository(db), storage.NewFromFs(fs))
	asAlice := Actor{ID: alice.ID, RoleID: model.RoleStudent}
	req := dto.StudentDocumentUploadRequest{StudentID: alice.ID, CourseID: f.course.ID}

	_, err := svc.Upload(ctx, asAlice, req, []FileUpload{
		{Filename: "one.txt", Content: strings.NewReader("first")},
		{Filename: "two.txt", Content: iotest.ErrReader(errors.New("connection reset"))},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.StudentDocument{}).Count(&count).Error)
	assert.Zero(t, count)
	left, err := afero.ReadDir(fs, storage.DirStudentDocuments)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = svc.Upload(ctx, asAlice, req, nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "documents")
}
