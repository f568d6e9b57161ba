package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maplewood/student-portal/internal/models"
)

type fakeTranscriptSource struct {
	history []models.CourseHistoryEntry
	info    *models.StudentInfo
	err     error
}

func (f *fakeTranscriptSource) CourseHistory(context.Context) ([]models.CourseHistoryEntry, bool, error) {
	return f.history, false, f.err
}

func (f *fakeTranscriptSource) StudentInfo(context.Context) (*models.StudentInfo, bool, error) {
	return f.info, false, f.err
}

func transcriptFixture() *fakeTranscriptSource {
	return &fakeTranscriptSource{
		history: []models.CourseHistoryEntry{
			{CourseName: "Biology", Credits: "4.0", Status: "PASSED"},
			{CourseName: "History", Credits: "2.5", Status: "ENROLLED"},
		},
		info: &models.StudentInfo{FirstName: "Ava", LastName: "Nguyen"},
	}
}

func TestTranscriptCSV(t *testing.T) {
	svc := NewExportService(transcriptFixture(), nil, true)

	doc, err := svc.Transcript(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", doc.ContentType)
	assert.Equal(t, "transcript.csv", doc.Filename)

	content := string(doc.Content)
	assert.True(t, strings.HasPrefix(content, "Course,Credits,Status\n"))
	assert.Contains(t, content, "Biology,4.0,PASSED")
	assert.Contains(t, content, "History,2.5,ENROLLED")
}

func TestTranscriptPDF(t *testing.T) {
	svc := NewExportService(transcriptFixture(), nil, true)

	doc, err := svc.Transcript(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "transcript.pdf", doc.Filename)
	assert.True(t, strings.HasPrefix(string(doc.Content), "%PDF"))
}

func TestTranscriptRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(transcriptFixture(), nil, true)

	_, err := svc.Transcript(context.Background(), "xlsx")
	assert.Error(t, err)
}

func TestTranscriptDisabled(t *testing.T) {
	svc := NewExportService(transcriptFixture(), nil, false)

	_, err := svc.Transcript(context.Background(), "csv")
	assert.Error(t, err)
}

func TestTranscriptPropagatesSourceError(t *testing.T) {
	source := transcriptFixture()
	source.err = errors.New("Failed to fetch course history: 500")
	svc := NewExportService(source, nil, true)

	_, err := svc.Transcript(context.Background(), "csv")
	assert.Error(t, err)
}
