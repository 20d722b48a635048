package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-transmuter/internal/converter"
	"audio-transmuter/internal/job"
)

// convert godoc
// @Summary Convert a video URL to an audio file
// @Description Downloads the given URL, extracts its audio and returns a download link for the produced file.
// @Tags Conversion
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion parameters"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/convert [post]
func (s *Server) convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "URL not provided"})
		return
	}

	j := job.New(req.URL)
	slog.Info("Conversion requested", "jobId", j.ID, "url", req.URL)

	cookieFile, cleanup, err := s.cookies.Resolve(req.CookieContent)
	if err != nil {
		slog.Error("Failed to resolve cookies", "jobId", j.ID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: unexpectedMessage(err)})
		return
	}
	defer cleanup()

	outputPath := s.store.OutputPath(j.ID, s.cfg.AudioFormat)
	opts := converter.Options{
		OutputTemplate: s.store.OutputTemplate(j.ID),
		OutputPath:     outputPath,
		AudioFormat:    s.cfg.AudioFormat,
		CookieFile:     cookieFile,
	}

	result, err := s.converter.Convert(c.Request.Context(), req.URL, opts)
	if err != nil {
		s.respondConversionError(c, j.ID, err)
		return
	}

	if !s.store.Exists(outputPath) {
		s.respondConversionError(c, j.ID, converter.ErrOutputMissing)
		return
	}

	if result.Title != "" {
		j.Title = result.Title
	}

	slog.Info("Conversion completed", "jobId", j.ID, "title", j.Title)
	c.JSON(http.StatusOK, ConvertResponse{
		Message:     "Transmutation Complete",
		DownloadURL: "/download/" + j.OutputName(s.cfg.AudioFormat),
		Title:       j.Title,
	})
}

// respondConversionError maps converter failures to HTTP status codes.
func (s *Server) respondConversionError(c *gin.Context, jobID string, err error) {
	var extractionErr *converter.ExtractionError

	switch {
	case errors.Is(err, converter.ErrRateLimited):
		slog.Warn("Upstream rate limit hit", "jobId", jobID)
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "YouTube rate limit exceeded."})
	case errors.As(err, &extractionErr):
		slog.Error("Extraction failed", "jobId", jobID, "reason", extractionErr.Reason)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: extractionErr.Reason})
	default:
		slog.Error("Conversion failed", "jobId", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: unexpectedMessage(err)})
	}
}

func unexpectedMessage(err error) string {
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}

// uploadCookies godoc
// @Summary Persist cookies for future conversions
// @Description Replaces the persisted cookies file used when a conversion carries no inline cookie content.
// @Tags Cookies
// @Accept json
// @Produce json
// @Param request body UploadCookiesRequest true "Cookie content"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/upload-cookies [post]
func (s *Server) uploadCookies(c *gin.Context) {
	var req UploadCookiesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CookieContent == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cookie content not provided"})
		return
	}

	if err := s.cookies.Save(req.CookieContent); err != nil {
		slog.Error("Failed to save cookies", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("Failed to save cookies: %v", err)})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Cookies uploaded successfully"})
}
