package controllers

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadController stores card and ad images on local disk and reports the
// metadata image-card creation writes verbatim into imageMeta.
type UploadController struct {
	dir      string
	maxBytes int64
}

// UploadResult mirrors the upload collaborator contract: url plus the image
// metadata fields consumed by image-card creation.
type UploadResult struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
	Mime   string `json:"mime"`
}

func NewUploadController(dir string, maxSizeMB int64) *UploadController {
	return &UploadController{dir: dir, maxBytes: maxSizeMB << 20}
}

// UploadCardImage handles card image uploads under uploads/cards.
func (uc *UploadController) UploadCardImage(c *gin.Context) {
	uc.upload(c, "cards", "card")
}

// UploadAdImage handles ad banner uploads under uploads/ads.
func (uc *UploadController) UploadAdImage(c *gin.Context) {
	uc.upload(c, "ads", "ad")
}

func (uc *UploadController) upload(c *gin.Context, subdir, prefix string) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > uc.maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	filename := uploadFilename(prefix, file.Filename)
	destDir := filepath.Join(uc.dir, subdir)
	destPath := filepath.Join(destDir, filename)

	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file", "message": err.Error()})
		return
	}
	if err := c.SaveUploadedFile(file, destPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file", "message": err.Error()})
		return
	}

	mime, err := mimetype.DetectFile(destPath)
	if err != nil || !strings.HasPrefix(mime.String(), "image/") {
		os.Remove(destPath)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
		return
	}

	width, height := imageDimensions(destPath)

	c.JSON(http.StatusCreated, UploadResult{
		URL:    fmt.Sprintf("/uploads/%s/%s", subdir, filename),
		Width:  width,
		Height: height,
		Size:   file.Size,
		Mime:   mime.String(),
	})
}

// uploadFilename keeps the original extension but replaces the name with a
// generated one so uploads never collide or leak client filenames.
func uploadFilename(prefix, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext)
}

// imageDimensions returns 0,0 for formats the decoder does not know; the
// metadata is informational, not required.
func imageDimensions(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
