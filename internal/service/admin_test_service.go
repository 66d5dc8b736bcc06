package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/importer"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
	"github.com/lshigami/lms/internal/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxImportBytes caps the size of an uploaded question file.
const maxImportBytes = 10 << 20

type AdminTestService interface {
	// CreateTest stores the test and its questions atomically. When file is
	// not nil its questions replace req.Questions.
	CreateTest(ctx context.Context, req dto.TestCreateDTO, file *FileUpload) (*dto.TestCreatedDTO, error)
	UpdateTest(ctx context.Context, testID uint, req dto.TestUpdateDTO) (*model.TestMaster, error)
}

type adminTestService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	trainingRepo repository.TrainingRepository
	importers    *importer.Registry
	files        storage.Storage
	db           *gorm.DB
}

func NewAdminTestService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	trainingRepo repository.TrainingRepository,
	importers *importer.Registry,
	files storage.Storage,
	db *gorm.DB,
) AdminTestService {
	return &adminTestService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		trainingRepo: trainingRepo,
		importers:    importers,
		files:        files,
		db:           db,
	}
}

func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO, file *FileUpload) (*dto.TestCreatedDTO, error) {
	inputs := req.Questions
	if file != nil {
		imported, err := s.importFile(ctx, file)
		if err != nil {
			return nil, err
		}
		inputs = imported
	}
	if len(inputs) == 0 {
		return nil, invalid("questions", "at least one question is required")
	}

	test := model.TestMaster{TrainingID: req.TrainingID, TestName: strings.TrimSpace(req.TestName), Duration: req.Duration}
	var err error
	if test.FromDate, test.ToDate, err = scheduleWindow(req.FromDate, req.ToDate); err != nil {
		return nil, err
	}

	questions := make([]model.McqQuestion, 0, len(inputs))
	fields := map[string]string{}
	for i, in := range inputs {
		q := model.McqQuestion{
			TrainingID:   req.TrainingID,
			QuestionText: strings.TrimSpace(in.QuestionText),
			Option1:      strings.TrimSpace(in.Option1),
			Option2:      strings.TrimSpace(in.Option2),
			Option3:      strings.TrimSpace(in.Option3),
			Option4:      strings.TrimSpace(in.Option4),
		}
		if missing := blankQuestionFields(q); len(missing) > 0 {
			for _, name := range missing {
				fields[fmt.Sprintf("questions[%d].%s", i, name)] = "is required"
			}
			continue
		}
		answer, ok := CanonicalAnswer(in.CorrectAnswer, q.Options())
		if !ok {
			fields[fmt.Sprintf("questions[%d].correct_answer", i)] = "must be A-D, 1-4 or the text of one of the options"
			continue
		}
		q.CorrectAnswer = answer
		questions = append(questions, q)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.checkTraining(ctx, req.TrainingID); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.testRepo.WithTx(tx).Create(ctx, &test); err != nil {
			return fmt.Errorf("create test: %w", err)
		}
		for i := range questions {
			questions[i].TestID = test.TestID
		}
		if err := s.questionRepo.WithTx(tx).CreateBatch(ctx, questions); err != nil {
			return fmt.Errorf("create questions: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("trainingID", req.TrainingID).Str("testName", req.TestName).Msg("Failed to create test")
		return nil, translateDBError("create test", err)
	}

	log.Info().Uint("testID", test.TestID).Int("questions", len(questions)).Msg("Test created")
	return &dto.TestCreatedDTO{
		Message:       "Test created successfully",
		TestID:        test.TestID,
		QuestionCount: len(questions),
	}, nil
}

// blankQuestionFields names the required parts of q that are empty. File and
// form input never passes through binding, so this is the one check all
// paths share.
func blankQuestionFields(q model.McqQuestion) []string {
	var missing []string
	if q.QuestionText == "" {
		missing = append(missing, "question_text")
	}
	for i, opt := range q.Options() {
		if opt == "" {
			missing = append(missing, fmt.Sprintf("option_%d", i+1))
		}
	}
	return missing
}

func (s *adminTestService) checkTraining(ctx context.Context, trainingID uint) error {
	if _, err := s.trainingRepo.FindActiveByID(ctx, trainingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalid("training_id", "training does not exist")
		}
		return translateDBError("find training", err)
	}
	return nil
}

func (s *adminTestService) importFile(ctx context.Context, file *FileUpload) ([]dto.QuestionInputDTO, error) {
	data, err := io.ReadAll(io.LimitReader(file.Content, maxImportBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxImportBytes {
		return nil, invalid("file", fmt.Sprintf("must not exceed %d bytes", maxImportBytes))
	}

	parsed, err := s.importers.Import(ctx, file.Filename, data)
	switch {
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return nil, invalid("file", "unsupported file type, use csv, xlsx, pdf or docx")
	case errors.Is(err, importer.ErrEmptyFile):
		return nil, invalid("file", "file is empty")
	case err != nil:
		log.Warn().Err(err).Str("file", file.Filename).Msg("Question import failed")
		return nil, invalid("file", "could not read questions from file")
	}
	if len(parsed) == 0 {
		return nil, invalid("file", "no questions found in file")
	}

	if s.files != nil {
		if path, err := s.files.Save(ctx, storage.DirTests, file.Filename, bytes.NewReader(data)); err != nil {
			log.Warn().Err(err).Str("file", file.Filename).Msg("Could not keep a copy of the question file")
		} else {
			log.Info().Str("path", path).Int("questions", len(parsed)).Msg("Question file imported")
		}
	}

	out := make([]dto.QuestionInputDTO, 0, len(parsed))
	for _, q := range parsed {
		out = append(out, dto.QuestionInputDTO{
			QuestionText:  q.Text,
			Option1:       q.Options[0],
			Option2:       q.Options[1],
			Option3:       q.Options[2],
			Option4:       q.Options[3],
			CorrectAnswer: q.Answer,
		})
	}
	return out, nil
}

func scheduleWindow(fromRaw, toRaw string) (*datatypes.Date, *datatypes.Date, error) {
	var from, to *datatypes.Date
	if fromRaw != "" {
		d, err := parseDate("from_date", fromRaw)
		if err != nil {
			return nil, nil, err
		}
		from = &d
	}
	if toRaw != "" {
		d, err := parseDate("to_date", toRaw)
		if err != nil {
			return nil, nil, err
		}
		to = &d
	}
	if from != nil && to != nil && time.Time(*to).Before(time.Time(*from)) {
		return nil, nil, invalid("to_date", "must not be before from_date")
	}
	return from, to, nil
}

func (s *adminTestService) UpdateTest(ctx context.Context, testID uint, req dto.TestUpdateDTO) (*model.TestMaster, error) {
	fields := map[string]interface{}{}
	if req.TrainingID != nil {
		fields["training_id"] = *req.TrainingID
	}
	if req.TestName != nil {
		fields["test_name"] = strings.TrimSpace(*req.TestName)
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if len(fields) == 0 && req.FromDate == nil && req.ToDate == nil {
		return nil, invalid("body", "no fields to update")
	}

	current, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, translateDBError("find test", err)
	}

	from, to := current.FromDate, current.ToDate
	if req.FromDate != nil {
		d, err := parseDate("from_date", *req.FromDate)
		if err != nil {
			return nil, err
		}
		from = &d
		fields["from_date"] = d
	}
	if req.ToDate != nil {
		d, err := parseDate("to_date", *req.ToDate)
		if err != nil {
			return nil, err
		}
		to = &d
		fields["to_date"] = d
	}
	if from != nil && to != nil && time.Time(*to).Before(time.Time(*from)) {
		return nil, invalid("to_date", "must not be before from_date")
	}

	moved := req.TrainingID != nil && *req.TrainingID != current.TrainingID
	if moved {
		if err := s.checkTraining(ctx, *req.TrainingID); err != nil {
			return nil, err
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.testRepo.WithTx(tx).Update(ctx, testID, fields); err != nil {
			return err
		}
		if moved {
			return s.questionRepo.WithTx(tx).MoveToTraining(ctx, testID, *req.TrainingID)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to update test")
		return nil, translateDBError("update test", err)
	}
	updated, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, translateDBError("reload test", err)
	}
	return updated, nil
}
