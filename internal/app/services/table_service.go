package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campustools/gradepoint/internal/app/gpa"
	"github.com/campustools/gradepoint/internal/app/models"
	"github.com/campustools/gradepoint/internal/app/repositories"
)

// TableService owns the course-table lifecycle: creation, the four row
// mutations, and summary recomputation. Each table belongs to one page
// session; the service assumes a single logical actor per table, so row
// mutations are plain sequential updates.
type TableService struct {
	tableRepo      *repositories.TableRepository
	scale          gpa.Scale
	defaultRows    int
	defaultCredits string
	logger         zerolog.Logger
}

// NewTableService creates a new table service instance
func NewTableService(tableRepo *repositories.TableRepository, scale gpa.Scale, defaultRows int, defaultCredits string, logger zerolog.Logger) *TableService {
	return &TableService{
		tableRepo:      tableRepo,
		scale:          scale,
		defaultRows:    defaultRows,
		defaultCredits: defaultCredits,
		logger:         logger,
	}
}

// newRow builds a fresh default row: unique id, empty course name, default
// credits text, top grade.
func (s *TableService) newRow() models.CourseRow {
	return models.CourseRow{
		ID:      uuid.NewString(),
		Credits: s.defaultCredits,
		Grade:   models.DefaultGrade,
	}
}

// defaultTableRows builds the default row set a fresh or reset table holds.
func (s *TableService) defaultTableRows() []models.CourseRow {
	rows := make([]models.CourseRow, 0, s.defaultRows)
	for i := 0; i < s.defaultRows; i++ {
		rows = append(rows, s.newRow())
	}
	return rows
}

// CreateTable creates a new course table populated with the default rows.
func (s *TableService) CreateTable(ctx context.Context) (*models.CourseTable, error) {
	now := time.Now().UTC()
	table := &models.CourseTable{
		ID:        uuid.NewString(),
		Rows:      s.defaultTableRows(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.tableRepo.Save(ctx, table)
	s.logger.Debug().Str("tableId", table.ID).Int("rows", len(table.Rows)).Msg("Course table created")
	return table, nil
}

// GetTable retrieves a table by ID.
func (s *TableService) GetTable(ctx context.Context, tableID string) (*models.CourseTable, error) {
	return s.tableRepo.Get(ctx, tableID)
}

// AddRow appends one fresh default row to the end of the table.
func (s *TableService) AddRow(ctx context.Context, tableID string) (*models.CourseTable, error) {
	table, err := s.tableRepo.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	table.Rows = append(table.Rows, s.newRow())
	table.UpdatedAt = time.Now().UTC()
	s.tableRepo.Save(ctx, table)
	return table, nil
}

// UpdateRow applies a partial change to the row matching rowID. Fields not
// set in the patch are left untouched. An unknown rowID is a no-op: the
// table is returned unchanged, not an error.
func (s *TableService) UpdateRow(ctx context.Context, tableID, rowID string, patch models.RowPatch) (*models.CourseTable, error) {
	table, err := s.tableRepo.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	i := table.FindRow(rowID)
	if i < 0 {
		s.logger.Debug().Str("tableId", tableID).Str("rowId", rowID).Msg("Update for unknown row ignored")
		return table, nil
	}

	row := &table.Rows[i]
	if patch.CourseName != nil {
		row.CourseName = *patch.CourseName
	}
	if patch.Credits != nil {
		row.Credits = *patch.Credits
	}
	if patch.Grade != nil {
		row.Grade = *patch.Grade
	}

	table.UpdatedAt = time.Now().UTC()
	s.tableRepo.Save(ctx, table)
	return table, nil
}

// RemoveRow removes the row matching rowID. An unknown rowID is a no-op.
// The table may become empty; an empty table summarizes to all zeros.
func (s *TableService) RemoveRow(ctx context.Context, tableID, rowID string) (*models.CourseTable, error) {
	table, err := s.tableRepo.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	i := table.FindRow(rowID)
	if i < 0 {
		s.logger.Debug().Str("tableId", tableID).Str("rowId", rowID).Msg("Remove for unknown row ignored")
		return table, nil
	}

	table.Rows = append(table.Rows[:i], table.Rows[i+1:]...)
	table.UpdatedAt = time.Now().UTC()
	s.tableRepo.Save(ctx, table)
	return table, nil
}

// ResetTable replaces the table's rows with the default row set.
func (s *TableService) ResetTable(ctx context.Context, tableID string) (*models.CourseTable, error) {
	table, err := s.tableRepo.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}

	table.Rows = s.defaultTableRows()
	table.UpdatedAt = time.Now().UTC()
	s.tableRepo.Save(ctx, table)
	return table, nil
}

// Summarize computes the current GPA summary for the table's rows.
func (s *TableService) Summarize(table *models.CourseTable) gpa.Summary {
	return gpa.ComputeSummary(table.Rows, s.scale)
}

// Scale exposes the service's grade scale for display purposes.
func (s *TableService) Scale() gpa.Scale {
	return s.scale
}
