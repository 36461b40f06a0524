package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"multimodal-chat/pkg/response"
)

// Message godoc
// @Summary     Send a chat message
// @Description Routes the message to text, image, or video generation and returns the result.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message payload"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Generation failed"
// @Failure     504 {object} response.Resp "Video generation timed out"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Message(c *gin.Context) {
	// Detached from the request context: a dropped client connection must not
	// abort an in-flight generation or video poll.
	ctx := context.WithoutCancel(c.Request.Context())

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Message(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Message: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMessageResp(output))
}

// Transcribe godoc
// @Summary     Transcribe audio
// @Description Accepts an uploaded audio file and returns its transcript.
// @Tags        Chat
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Audio file"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Transcription failed"
// @Router      /api/v1/chat/transcriptions [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())

	input, closeFile, err := h.processTranscribeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFile()

	output, err := h.uc.Transcribe(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, transcribeResp{Text: output.Text})
}
