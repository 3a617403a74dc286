package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/clubstem/registration-service/internal/models"
	"github.com/clubstem/registration-service/internal/query"
	"github.com/clubstem/registration-service/internal/repositories"
)

const rosterSheet = "Participantes"

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// WriteRoster streams the active roster as a spreadsheet. Rows carry the
// public projection only; emails never leave the system.
func (s *exportService) WriteRoster(ctx context.Context, w io.Writer) error {
	ids, err := s.repo.Participant().ListIDs(ctx, 0, -1)
	if err != nil {
		return err
	}

	participants := make([]*models.Participant, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.Participant().GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("skipping unreadable participant in export", "participant_id", id, "error", err)
			continue
		}
		if p != nil {
			participants = append(participants, p)
		}
	}

	sorted, _ := query.Apply(participants, query.Options{
		SortBy: query.SortRecent,
		Limit:  len(participants) + 1,
	})

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"ID", "Nombre", "Edad", "Grado", "Escuela", "Categoría", "Experiencia", "Rol", "Fecha de registro"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(rosterSheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range sorted {
		view := p.PublicView()
		values := []any{
			view.ID,
			view.FullName,
			view.Age,
			view.Grade,
			view.School,
			view.Category,
			view.Experience,
			string(view.Role),
			view.RegistrationDate.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(rosterSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}
	return nil
}
