package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	apperrors "audiocheck/internal/errors"
	"audiocheck/internal/models"
	"audiocheck/internal/repository"
	"audiocheck/pkg/response"

	"github.com/gin-gonic/gin"
)

// storedFormat is the extension every upload is stored under.
const storedFormat = "m4a"

// SupportedFormats lists the download formats the service converts to.
var SupportedFormats = map[string]bool{
	"mp3":  true,
	"m4a":  true,
	"wav":  true,
	"flac": true,
	"opus": true,
}

// audioURI binds the identifier pair from the path.
type audioURI struct {
	UserID   string `uri:"user_id" binding:"required,identifier"`
	PhraseID string `uri:"phrase_id" binding:"required,identifier"`
}

// AudioHandler serves the upload and download endpoints.
// It stores uploads as-is and does not transcode.
type AudioHandler struct {
	repo repository.AudioRepository
}

// NewAudioHandler creates a new AudioHandler.
func NewAudioHandler(repo repository.AudioRepository) *AudioHandler {
	return &AudioHandler{repo: repo}
}

// ObjectName returns the stored object name for a pair.
func ObjectName(userID, phraseID string) string {
	return fmt.Sprintf("%s_%s.%s", userID, phraseID, storedFormat)
}

// Upload godoc
// @Summary      Upload audio for a phrase
// @Accept       multipart/form-data
// @Produce      json
// @Param        user_id    path      string  true  "User ID"
// @Param        phrase_id  path      string  true  "Phrase ID"
// @Param        audio      formData  file    true  "Audio file"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /audio/user/{user_id}/phrase/{phrase_id} [post]
func (h *AudioHandler) Upload(c *gin.Context) {
	var uri audioURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid user or phrase id")
		return
	}
	userID, phraseID := uri.UserID, uri.PhraseID

	file, err := c.FormFile("audio")
	if err != nil {
		response.BadRequest(c, "No audio file provided")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c, "Failed to save temp file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.InternalError(c, "Failed to save temp file")
		return
	}

	mapping := &models.AudioMapping{
		UserID:     userID,
		PhraseID:   phraseID,
		ObjectName: ObjectName(userID, phraseID),
		Data:       data,
	}
	if err := h.repo.Save(c.Request.Context(), mapping); err != nil {
		log.Printf("Failed to save mapping for %s: %v", mapping.ObjectName, err)
		response.InternalError(c, "Failed to save metadata")
		return
	}

	response.Uploaded(c, mapping.ObjectName)
}

// Download godoc
// @Summary      Download audio in a format
// @Produce      octet-stream
// @Param        user_id       path  string  true  "User ID"
// @Param        phrase_id     path  string  true  "Phrase ID"
// @Param        audio_format  path  string  true  "mp3, m4a, wav, flac or opus"
// @Success      200
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /audio/user/{user_id}/phrase/{phrase_id}/{audio_format} [get]
func (h *AudioHandler) Download(c *gin.Context) {
	var uri audioURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid user or phrase id")
		return
	}
	userID, phraseID := uri.UserID, uri.PhraseID
	format := c.Param("audio_format")

	// The mapping is looked up before the format is checked, so an
	// unknown pair is 404 whatever the format.
	mapping, err := h.repo.FindByPair(c.Request.Context(), userID, phraseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAudioNotFound) {
			response.NotFound(c, "File mapping not found")
			return
		}
		response.InternalError(c, "Failed to read metadata")
		return
	}

	if !SupportedFormats[format] {
		response.BadRequest(c, "Failed to convert audio format")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+phraseID+"."+format)
	c.Data(http.StatusOK, "audio/"+format, mapping.Data)
}
