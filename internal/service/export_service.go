package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
	"github.com/openclass/lms-api/pkg/export"
)

// ExportFile is a rendered export ready to stream to the client.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

type exportAssignmentReader interface {
	FindByID(ctx context.Context, id int) (*models.Assignment, error)
}

type exportSubmissionReader interface {
	ListByAssignment(ctx context.Context, assignmentID int) ([]models.Submission, error)
}

// ExportService renders an assignment's submissions as CSV or PDF.
type ExportService struct {
	assignments exportAssignmentReader
	submissions exportSubmissionReader
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
}

// NewExportService constructs ExportService.
func NewExportService(assignments exportAssignmentReader, submissions exportSubmissionReader) *ExportService {
	return &ExportService{
		assignments: assignments,
		submissions: submissions,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
	}
}

// Submissions builds the export for the assignment in the given format
// ("csv" or "pdf").
func (s *ExportService) Submissions(ctx context.Context, assignmentID int, format string) (*ExportFile, error) {
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Invalid("format", "format must be csv or pdf")
	}

	assignment, err := s.assignments.FindByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	submissions, err := s.submissions.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}

	dataset := export.Dataset{
		Headers: []string{"ID", "Student", "Content", "Grade", "Feedback", "Submitted At"},
	}
	for _, sub := range submissions {
		grade := ""
		if sub.Grade != nil {
			grade = strconv.Itoa(*sub.Grade)
		}
		feedback := ""
		if sub.Feedback != nil {
			feedback = *sub.Feedback
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":           strconv.Itoa(sub.ID),
			"Student":      sub.StudentID,
			"Content":      sub.Content,
			"Grade":        grade,
			"Feedback":     feedback,
			"Submitted At": sub.SubmittedAt.Format("2006-01-02 15:04"),
		})
	}

	switch format {
	case "csv":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
		}
		return &ExportFile{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("assignment-%d-submissions.csv", assignment.ID),
		}, nil
	default:
		content, err := s.pdf.Render(dataset, assignment.Title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
		}
		return &ExportFile{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("assignment-%d-submissions.pdf", assignment.ID),
		}, nil
	}
}
