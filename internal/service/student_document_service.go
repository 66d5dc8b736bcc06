package service

import (
	"context"
	"fmt"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const MaxDocumentFiles = 10

// StudentDocumentService keeps the files students hand in. A student only
// ever sees and changes their own documents.
type StudentDocumentService interface {
	Upload(ctx context.Context, actor Actor, req dto.StudentDocumentUploadRequest, files []FileUpload) ([]model.StudentDocument, error)
	FindAll(ctx context.Context, actor Actor) ([]model.StudentDocument, error)
	FindByID(ctx context.Context, actor Actor, id uint) (*model.StudentDocument, error)
	Open(ctx context.Context, actor Actor, id uint) (afero.File, string, error)
	Update(ctx context.Context, actor Actor, id uint, req dto.StudentDocumentUpdateRequest) (*model.StudentDocument, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type studentDocumentService struct {
	repo  repository.StudentDocumentRepository
	files storage.Storage
}

func NewStudentDocumentService(repo repository.StudentDocumentRepository, files storage.Storage) StudentDocumentService {
	return &studentDocumentService{repo: repo, files: files}
}

func (s *studentDocumentService) Upload(ctx context.Context, actor Actor, req dto.StudentDocumentUploadRequest, files []FileUpload) ([]model.StudentDocument, error) {
	if !actor.ActsFor(req.StudentID) {
		log.Warn().Uint("actorID", actor.ID).Uint("studentID", req.StudentID).Msg("Upload: student uploading for someone else")
		return nil, ErrForbidden
	}
	if len(files) == 0 {
		return nil, invalid("documents", "at least one file is required")
	}
	if len(files) > MaxDocumentFiles {
		return nil, invalid("documents", fmt.Sprintf("at most %d files per upload", MaxDocumentFiles))
	}

	docs := make([]model.StudentDocument, 0, len(files))
	for _, f := range files {
		path, err := s.files.Save(ctx, storage.DirStudentDocuments, f.Filename, f.Content)
		if err != nil {
			s.discard(docs)
			return nil, fmt.Errorf("store document %s: %w", f.Filename, err)
		}
		docs = append(docs, model.StudentDocument{
			StudentID:    req.StudentID,
			CourseID:     req.CourseID,
			DocumentName: f.Filename,
			FilePath:     path,
			ProjectType:  req.ProjectType,
		})
	}

	if err := s.repo.CreateBatch(ctx, docs); err != nil {
		s.discard(docs)
		log.Error().Err(err).Uint("studentID", req.StudentID).Msg("Failed to record student documents")
		return nil, translateDBError("create student documents", err)
	}
	log.Info().Uint("studentID", req.StudentID).Int("files", len(docs)).Msg("Student documents uploaded")
	return docs, nil
}

// discard removes files whose rows were never written.
func (s *studentDocumentService) discard(docs []model.StudentDocument) {
	for _, d := range docs {
		if err := s.files.Remove(d.FilePath); err != nil {
			log.Warn().Err(err).Str("path", d.FilePath).Msg("Could not remove orphaned student document")
		}
	}
}

func (s *studentDocumentService) FindAll(ctx context.Context, actor Actor) ([]model.StudentDocument, error) {
	var studentID *uint
	if actor.RoleID == model.RoleStudent {
		studentID = &actor.ID
	}
	docs, err := s.repo.FindAll(ctx, studentID)
	return docs, translateDBError("list student documents", err)
}

func (s *studentDocumentService) FindByID(ctx context.Context, actor Actor, id uint) (*model.StudentDocument, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateDBError("find student document", err)
	}
	if !actor.ActsFor(doc.StudentID) {
		return nil, ErrForbidden
	}
	return doc, nil
}

func (s *studentDocumentService) Open(ctx context.Context, actor Actor, id uint) (afero.File, string, error) {
	doc, err := s.FindByID(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}
	f, err := s.files.Open(doc.FilePath)
	if err != nil {
		log.Error().Err(err).Uint("documentID", id).Str("path", doc.FilePath).Msg("Student document file missing")
		return nil, "", fmt.Errorf("open student document %d: %w", id, ErrNotFound)
	}
	return f, doc.DocumentName, nil
}

func (s *studentDocumentService) Update(ctx context.Context, actor Actor, id uint, req dto.StudentDocumentUpdateRequest) (*model.StudentDocument, error) {
	if _, err := s.FindByID(ctx, actor, id); err != nil {
		return nil, err
	}
	if !actor.ActsFor(req.StudentID) {
		return nil, ErrForbidden
	}
	doc := model.StudentDocument{
		ID:           id,
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		DocumentName: req.DocumentName,
	}
	if err := s.repo.Update(ctx, &doc); err != nil {
		return nil, translateDBError("update student document", err)
	}
	return s.FindByID(ctx, actor, id)
}

func (s *studentDocumentService) Delete(ctx context.Context, actor Actor, id uint) error {
	doc, err := s.FindByID(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateDBError("delete student document", err)
	}
	if err := s.files.Remove(doc.FilePath); err != nil {
		log.Warn().Err(err).Str("path", doc.FilePath).Msg("Could not remove student document file")
	}
	return nil
}
