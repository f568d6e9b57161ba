package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/maplewood/student-portal/internal/models"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
	"github.com/maplewood/student-portal/pkg/export"
)

type transcriptSource interface {
	CourseHistory(ctx context.Context) ([]models.CourseHistoryEntry, bool, error)
	StudentInfo(ctx context.Context) (*models.StudentInfo, bool, error)
}

// TranscriptExport is a rendered transcript document.
type TranscriptExport struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the student's course history as a downloadable
// transcript.
type ExportService struct {
	source  transcriptSource
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
	enabled bool
}

// NewExportService constructs an ExportService.
func NewExportService(source transcriptSource, logger *zap.Logger, enabled bool) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		source:  source,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
		enabled: enabled,
	}
}

// Enabled indicates whether transcript exports are switched on.
func (s *ExportService) Enabled() bool {
	return s != nil && s.enabled
}

// Transcript renders the course history in the requested format ("csv" or
// "pdf").
func (s *ExportService) Transcript(ctx context.Context, format string) (*TranscriptExport, error) {
	if !s.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "transcript exports are disabled")
	}

	info, _, err := s.source.StudentInfo(ctx)
	if err != nil {
		return nil, err
	}
	history, _, err := s.source.CourseHistory(ctx)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Title:   fmt.Sprintf("Transcript for %s %s", info.FirstName, info.LastName),
		Columns: []string{"Course", "Credits", "Status"},
		Rows:    make([][]string, 0, len(history)),
	}
	for _, entry := range history {
		dataset.Rows = append(dataset.Rows, []string{entry.CourseName, entry.Credits, entry.Status})
	}

	switch strings.ToLower(format) {
	case "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, fmt.Errorf("render transcript csv: %w", err)
		}
		return &TranscriptExport{Content: content, ContentType: "text/csv", Filename: "transcript.csv"}, nil
	case "pdf":
		content, err := s.pdf.Render(dataset)
		if err != nil {
			return nil, fmt.Errorf("render transcript pdf: %w", err)
		}
		return &TranscriptExport{Content: content, ContentType: "application/pdf", Filename: "transcript.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
