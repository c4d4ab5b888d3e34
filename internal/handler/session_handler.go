package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recapd/internal/domain"
	"recapd/internal/service"
)

// SessionHandler handles the interactive summarization endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// GenerateRequest is the JSON body for summary generation.
type GenerateRequest struct {
	CustomPrompt string `json:"custom_prompt"`
}

// Create handles POST /api/v1/sessions
// @Summary Create a session
// @Description Start a new interactive summarization session
// @Tags sessions
// @Produce json
// @Success 201 {object} APIResponse{data=domain.Session} "Session created"
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	session, err := h.sessionService.Create(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// Get handles GET /api/v1/sessions/:id
// @Summary Get session state
// @Description Get the session state and uploaded file details
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.Session} "Session state"
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Session not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// UploadTranscript handles POST /api/v1/sessions/:id/transcript
// @Summary Upload a transcript
// @Description Upload a meeting transcript (txt, docx, or doc). Replaces any previous transcript and clears the summary.
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param file formData file true "Transcript file (txt, docx, or doc)"
// @Success 200 {object} APIResponse{data=domain.Session} "Transcript stored"
// @Failure 400 {object} APIResponse "Missing file, unsupported type, or unreadable content"
// @Failure 404 {object} APIResponse "Session not found"
// @Failure 413 {object} APIResponse "File too large"
// @Router /sessions/{id}/transcript [post]
func (h *SessionHandler) UploadTranscript(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	session, err := h.sessionService.UploadTranscript(c.Request.Context(), service.UploadTranscriptInput{
		SessionID: sessionID,
		File:      file,
		Header:    header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"session":    session,
		"transcript": session.Transcript,
	})
}

// GetTranscript handles GET /api/v1/sessions/:id/transcript
// @Summary View the original transcript
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} APIResponse "Transcript text"
// @Failure 400 {object} APIResponse "No transcript uploaded"
// @Failure 404 {object} APIResponse "Session not found"
// @Router /sessions/{id}/transcript [get]
func (h *SessionHandler) GetTranscript(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if session.Transcript == "" {
		HandleError(c, domain.ErrNoTranscript)
		return
	}

	RespondOK(c, gin.H{
		"document":   session.Document,
		"transcript": session.Transcript,
	})
}

// GenerateSummary handles POST /api/v1/sessions/:id/summary
// @Summary Generate or regenerate the summary
// @Description Synchronously calls the generative service and replaces the stored summary. Service failures are returned as a displayable summary string, not an HTTP error.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body GenerateRequest false "Optional custom instruction"
// @Success 200 {object} APIResponse{data=domain.Session} "Summary stored"
// @Failure 400 {object} APIResponse "No transcript uploaded"
// @Failure 404 {object} APIResponse "Session not found"
// @Router /sessions/{id}/summary [post]
func (h *SessionHandler) GenerateSummary(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req GenerateRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
			return
		}
	}

	session, err := h.sessionService.GenerateSummary(c.Request.Context(), service.GenerateSummaryInput{
		SessionID:    sessionID,
		CustomPrompt: req.CustomPrompt,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// GetSummary handles GET /api/v1/sessions/:id/summary
// @Summary Get the current summary
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} APIResponse{data=domain.Summary} "Current summary"
// @Failure 404 {object} APIResponse "Session or summary not found"
// @Router /sessions/{id}/summary [get]
func (h *SessionHandler) GetSummary(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), sessionID)
	if err != nil {
		HandleError(c, err)
		return
	}
	if session.Summary == nil {
		HandleError(c, domain.ErrNoSummary)
		return
	}
	RespondOK(c, session.Summary)
}

// DownloadSummary handles GET /api/v1/sessions/:id/summary/download
// @Summary Download the current summary
// @Description Download the summary as meeting_summary.txt (default) or meeting_summary.docx
// @Tags sessions
// @Produce plain
// @Param id path string true "Session ID (UUID)"
// @Param format query string false "Download format: txt or docx" default(txt)
// @Success 200 {string} string "Summary file"
// @Failure 400 {object} APIResponse "Unsupported format"
// @Failure 404 {object} APIResponse "Session or summary not found"
// @Router /sessions/{id}/summary/download [get]
func (h *SessionHandler) DownloadSummary(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportFormatTXT)))

	result, err := h.sessionService.ExportSummary(c.Request.Context(), sessionID, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// sessionID parses the :id path parameter, writing a 400 on failure.
func (h *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
