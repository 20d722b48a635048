package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"audio-transmuter/internal/storage"
)

// download godoc
// @Summary Download a produced audio file
// @Description Streams a previously produced audio file as an attachment.
// @Tags Downloads
// @Produce audio/mpeg,audio/wav
// @Param filename path string true "File name returned by a conversion"
// @Success 200 {file} audio/* "Audio file"
// @Failure 400 {object} ErrorResponse "Invalid filename"
// @Failure 404 {object} ErrorResponse "File not found"
// @Router /download/{filename} [get]
func (s *Server) download(c *gin.Context) {
	filename := c.Param("filename")

	// The filename is client-controlled input reflected into a
	// filesystem path; traversal sequences are rejected outright.
	path, err := s.store.Resolve(filename)
	if err != nil {
		if errors.Is(err, storage.ErrUnsafeFilename) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filename"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if !s.store.Exists(path) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "File not found"})
		return
	}

	c.FileAttachment(path, filename)
}
