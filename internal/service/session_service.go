package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"recapd/internal/config"
	"recapd/internal/domain"
	"recapd/internal/port"
	"recapd/internal/summarizer"
)

// failSoftPrefix marks a stored summary that carries an error message
// instead of model output. The UI always receives a displayable string;
// generation failures never abort the interaction.
const failSoftPrefix = "Error generating summary: "

const (
	downloadBaseName = "meeting_summary"
	docxContentType  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	exportTitle      = "Meeting Summary"
)

// UploadTranscriptInput is the DTO for transcript upload requests.
type UploadTranscriptInput struct {
	SessionID uuid.UUID
	File      multipart.File
	Header    *multipart.FileHeader
}

// GenerateSummaryInput is the DTO for generate/regenerate requests.
type GenerateSummaryInput struct {
	SessionID    uuid.UUID
	CustomPrompt string
}

// ExportResult carries a rendered download.
type ExportResult struct {
	FileName    string
	ContentType string
	Data        []byte
}

// SessionService drives the interactive summarization workflow.
type SessionService interface {
	Create(ctx context.Context) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	UploadTranscript(ctx context.Context, input UploadTranscriptInput) (*domain.Session, error)
	GenerateSummary(ctx context.Context, input GenerateSummaryInput) (*domain.Session, error)
	ExportSummary(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (*ExportResult, error)
	StartSessionCleaner(ctx context.Context, interval, ttl time.Duration)
}

type sessionService struct {
	store     port.SessionStore
	reader    port.DocumentReader
	generator port.SummaryGenerator
	exporter  port.SummaryExporter
	cfg       *config.UploadConfig
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(
	store port.SessionStore,
	reader port.DocumentReader,
	generator port.SummaryGenerator,
	exporter port.SummaryExporter,
	cfg *config.UploadConfig,
) SessionService {
	return &sessionService{
		store:     store,
		reader:    reader,
		generator: generator,
		exporter:  exporter,
		cfg:       cfg,
	}
}

func (s *sessionService) Create(ctx context.Context) (*domain.Session, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.New(),
		State:     domain.SessionStateEmpty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.store.Get(ctx, id)
}

// UploadTranscript extracts text from the uploaded file and replaces the
// session's transcript. Any previous summary is discarded; on extraction
// failure the session is left untouched.
func (s *sessionService) UploadTranscript(ctx context.Context, input UploadTranscriptInput) (*domain.Session, error) {
	session, err := s.store.Get(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	// Validate file extension at the boundary
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	text, err := s.reader.Extract(port.ExtractInput{FileBytes: data, FileType: fileType})
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, domain.ErrEmptyDocument
	}

	session.Document = &domain.UploadedDocument{
		FileName:    input.Header.Filename,
		FileType:    fileType,
		ContentType: input.Header.Header.Get("Content-Type"),
		SizeBytes:   input.Header.Size,
	}
	session.Transcript = text
	session.Summary = nil
	session.State = domain.SessionStateFileLoaded
	session.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("storing transcript: %w", err)
	}
	return session, nil
}

// GenerateSummary runs one synchronous generation action against the
// stored transcript. The previous summary is always replaced, whether
// the new result is model output or the fail-soft error string.
func (s *sessionService) GenerateSummary(ctx context.Context, input GenerateSummaryInput) (*domain.Session, error) {
	session, err := s.store.Get(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Transcript == "" {
		return nil, domain.ErrNoTranscript
	}

	prompt := summarizer.BuildPrompt(session.Transcript, input.CustomPrompt)

	summary := &domain.Summary{GeneratedAt: time.Now()}
	out, genErr := s.generator.Generate(ctx, port.SummaryInput{Prompt: prompt})
	if genErr != nil {
		log.Printf("sessionService.GenerateSummary: generation failed for session %s: %v", session.ID, genErr)
		summary.Text = failSoftPrefix + genErr.Error()
		summary.Failed = true
	} else {
		summary.Text = out.Text
		summary.ModelUsed = out.ModelUsed
	}

	session.Summary = summary
	session.State = domain.SessionStateSummaryReady
	session.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("storing summary: %w", err)
	}
	return session, nil
}

// ExportSummary renders the current summary for download under a fixed
// filename.
func (s *sessionService) ExportSummary(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (*ExportResult, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Summary == nil {
		return nil, domain.ErrNoSummary
	}

	switch format {
	case domain.ExportFormatTXT:
		return &ExportResult{
			FileName:    downloadBaseName + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte(session.Summary.Text),
		}, nil
	case domain.ExportFormatDOCX:
		data, err := s.exporter.Export(exportTitle, session.Summary.Text)
		if err != nil {
			return nil, fmt.Errorf("exporting summary: %w", err)
		}
		return &ExportResult{
			FileName:    downloadBaseName + ".docx",
			ContentType: docxContentType,
			Data:        data,
		}, nil
	default:
		return nil, domain.ErrUnsupportedExportFormat
	}
}

// StartSessionCleaner evicts idle sessions on a fixed interval until the
// context is cancelled.
func (s *sessionService) StartSessionCleaner(ctx context.Context, interval, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if purged := s.store.PurgeExpired(ctx, time.Now().Add(-ttl)); purged > 0 {
					log.Printf("sessionService: purged %d idle sessions", purged)
				}
			}
		}
	}()
}
