// internal/api/handlers/uploads.go
package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"candidate-intake-api/internal/storage/objects"
	"candidate-intake-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

const (
	maxHeadshotBytes = 5 << 20
	maxResumeBytes   = 10 << 20
	maxVideoBytes    = 40 << 20
)

var (
	headshotTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	}
	resumeTypes = map[string]string{
		"application/pdf":    ".pdf",
		"application/msword": ".doc",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	}
	videoTypes = map[string]string{
		"video/webm":      ".webm",
		"video/mp4":       ".mp4",
		"video/quicktime": ".mov",
	}
)

// UploadHandler stores candidate assets before the candidate row exists. The
// session id in each object name ties the asset back to the submission.
type UploadHandler struct {
	store          objects.Store
	headshotBucket string
	resumeBucket   string
	videoBucket    string
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store objects.Store, headshotBucket, resumeBucket, videoBucket string) *UploadHandler {
	return &UploadHandler{
		store:          store,
		headshotBucket: headshotBucket,
		resumeBucket:   resumeBucket,
		videoBucket:    videoBucket,
	}
}

// UploadHeadshot godoc
// @Summary      Upload a headshot
// @Description  Accepts a JPEG, PNG, or WebP image up to 5 MiB as multipart form data.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image file"
// @Param        session_id formData string true "Questionnaire session ID"
// @Success      201 {object}  dto.UploadResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      413 {object}  map[string]string "File too large"
// @Failure      415 {object}  map[string]string "Unsupported media type"
// @Failure      502 {object}  map[string]string "Storage error"
// @Router       /uploads/headshots [post]
func (h *UploadHandler) UploadHeadshot(c *gin.Context) {
	h.upload(c, h.headshotBucket, headshotTypes, maxHeadshotBytes)
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  Accepts a PDF or Word document up to 10 MiB as multipart form data.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Document file"
// @Param        session_id formData string true "Questionnaire session ID"
// @Success      201 {object}  dto.UploadResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      413 {object}  map[string]string "File too large"
// @Failure      415 {object}  map[string]string "Unsupported media type"
// @Failure      502 {object}  map[string]string "Storage error"
// @Router       /uploads/resumes [post]
func (h *UploadHandler) UploadResume(c *gin.Context) {
	h.upload(c, h.resumeBucket, resumeTypes, maxResumeBytes)
}

// UploadVideo godoc
// @Summary      Upload an intro video
// @Description  Accepts a WebM, MP4, or QuickTime recording up to 40 MiB as multipart form data. Recording length is capped client-side; the byte cap bounds it here.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Video file"
// @Param        session_id formData string true "Questionnaire session ID"
// @Success      201 {object}  dto.UploadResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      413 {object}  map[string]string "File too large"
// @Failure      415 {object}  map[string]string "Unsupported media type"
// @Failure      502 {object}  map[string]string "Storage error"
// @Router       /uploads/videos [post]
func (h *UploadHandler) UploadVideo(c *gin.Context) {
	h.upload(c, h.videoBucket, videoTypes, maxVideoBytes)
}

// RemoveHeadshot godoc
// @Summary      Remove a headshot
// @Description  Deletes a previously uploaded headshot so a replacement can take its place. Missing objects are ignored.
// @Tags         uploads
// @Produce      json
// @Param        name path string true "Object name"
// @Success      204 "Object removed"
// @Failure      502 {object}  map[string]string "Storage error"
// @Router       /uploads/headshots/{name} [delete]
func (h *UploadHandler) RemoveHeadshot(c *gin.Context) {
	h.remove(c, h.headshotBucket)
}

// RemoveResume godoc
// @Summary      Remove a resume
// @Description  Deletes a previously uploaded resume so a replacement can take its place. Missing objects are ignored.
// @Tags         uploads
// @Produce      json
// @Param        name path string true "Object name"
// @Success      204 "Object removed"
// @Failure      502 {object}  map[string]string "Storage error"
// @Router       /uploads/resumes/{name} [delete]
func (h *UploadHandler) RemoveResume(c *gin.Context) {
	h.remove(c, h.resumeBucket)
}

// RemoveVideo godoc
// @Summary      Remove an intro video
// @Description  Deletes a previously uploaded recording so a re-take can replace it. Missing objects are ignored.
// @Tags         uploads
// @Produce      json
// @Param        name path string true "Object name"
// @Success      204 "Object removed"
// @Failure      502 {object}  map[string]string "Storage error"
// @Router       /uploads/videos/{name} [delete]
func (h *UploadHandler) RemoveVideo(c *gin.Context) {
	h.remove(c, h.videoBucket)
}

func (h *UploadHandler) upload(c *gin.Context, bucket string, allowed map[string]string, maxBytes int64) {
	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Form field 'session_id' is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Form field 'file' is required"})
		return
	}
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File exceeds the %d MiB limit", maxBytes>>20),
		})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := allowed[contentType]
	if !ok {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Unsupported file type: " + contentType})
		return
	}
	// Prefer the client's extension when it matches the declared type family.
	if origExt := strings.ToLower(filepath.Ext(fileHeader.Filename)); origExt != "" && extMatches(origExt, allowed) {
		ext = origExt
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	name := objectName(sessionID, ext)
	url, err := h.store.Upload(c.Request.Context(), bucket, name, contentType, file)
	if err != nil {
		log.Printf("Error storing %s/%s: %v", bucket, name, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store upload"})
		return
	}
	c.JSON(http.StatusCreated, dto.UploadResponse{Name: name, URL: url})
}

func (h *UploadHandler) remove(c *gin.Context, bucket string) {
	name := c.Param("name")
	if err := h.store.Remove(c.Request.Context(), bucket, name); err != nil {
		log.Printf("Error removing %s/%s: %v", bucket, name, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to remove upload"})
		return
	}
	c.Status(http.StatusNoContent)
}

// objectName builds "<sessionID>-<unix ms>.<ext>"; the timestamp keeps
// re-uploads within one session from overwriting each other.
func objectName(sessionID, ext string) string {
	return fmt.Sprintf("%s-%d%s", sessionID, time.Now().UnixMilli(), ext)
}

func extMatches(ext string, allowed map[string]string) bool {
	for _, e := range allowed {
		if e == ext {
			return true
		}
	}
	// .jpeg maps to the same family as .jpg
	return ext == ".jpeg" && allowed["image/jpeg"] != ""
}
