package service

import (
	"context"

	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/model"
	"github.com/lshigami/lms/internal/repository"
)

type ReportService interface {
	Generate(ctx context.Context, req dto.ReportRequest) ([]model.ReportRow, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) Generate(ctx context.Context, req dto.ReportRequest) ([]model.ReportRow, error) {
	switch req.Type {
	case model.ReportStudent, model.ReportTraining, model.ReportCourse, model.ReportCompany:
	default:
		return nil, invalid("type", "must be one of student, training, course, company")
	}
	rows, err := s.repo.Scores(ctx, req.Type, req.ID)
	return nonEmpty("report", rows, err)
}
