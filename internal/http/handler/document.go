package handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"riskmai/internal/service"
)

// UploadDocument accepts a .pdf or .eml file in the "file" multipart field.
//
// @Summary Upload document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Company ID"
// @Param file formData file true "PDF or EML file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /companies/{id}/documents [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "No file part")
		}
		if fh.Filename == "" {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "No selected file")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		doc, err := svc.Upload(c.UserContext(), service.UploadInput{
			CompanyID:   c.Params("id"),
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":     "File uploaded and processed successfully",
			"document_id": doc.ID,
			"file_type":   doc.FileType,
		})
	}
}

// DownloadDocument streams the original uploaded bytes.
//
// @Summary Download document
// @Tags documents
// @Produce octet-stream
// @Param id path string true "Company ID"
// @Param document_id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /companies/{id}/documents/{document_id}/file [get]
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, doc, err := svc.OpenFile(c.UserContext(), c.Params("id"), c.Params("document_id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, doc.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.FileName))
		size := -1
		if doc.Size > 0 {
			size = int(doc.Size)
		}
		return c.SendStream(rc, size)
	}
}
