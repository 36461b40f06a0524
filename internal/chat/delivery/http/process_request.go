package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"multimodal-chat/internal/chat"
	pkgErrors "multimodal-chat/pkg/errors"
)

// processMessageReq binds and validates the chat message request body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, req.validate()
}

// processTranscribeReq extracts the uploaded audio file from the multipart form.
func (h *handler) processTranscribeReq(c *gin.Context) (chat.TranscribeInput, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return chat.TranscribeInput{}, nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "audio file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return chat.TranscribeInput{}, nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "could not read audio file")
	}

	input := chat.TranscribeInput{
		Filename: fileHeader.Filename,
		Reader:   file,
	}
	return input, func() { file.Close() }, nil
}
