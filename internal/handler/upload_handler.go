package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// maxUploadSize is the ceiling for article images.
const maxUploadSize = 2 << 20 // 2 MiB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadHandler stores article images on local disk and serves them back
// under /uploads.
type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// UploadImage accepts a multipart "file" field, enforces type and size, and
// returns the public URL.
// POST /api/v1/uploads
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing file field"})
	}

	if file.Size > maxUploadSize {
		return c.Status(400).JSON(fiber.Map{"error": "File exceeds the 2 MiB limit"})
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Only JPEG, PNG, GIF and WEBP images are accepted"})
	}

	orgDir := filepath.Join(h.dir, getOrgID(c).String())
	if err := os.MkdirAll(orgDir, 0o755); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(orgDir, name)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store file"})
	}

	url := fmt.Sprintf("/uploads/%s/%s", getOrgID(c).String(), name)
	return c.Status(201).JSON(fiber.Map{"message": "File uploaded", "url": url})
}
