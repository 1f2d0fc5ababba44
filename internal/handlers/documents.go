package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"garage-desk/internal/models"
	"garage-desk/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	maxUploadFiles = 10
	maxFileSize    = 10 << 20 // 10MB
)

// images and common paperwork only, same set the upload form advertises
var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".txt": true,
}

// UploadDocuments stores each file and inserts its metadata row. Files are
// attempted independently: one bad file does not abort the rest, and a row
// insert failure removes the just-stored bytes so nothing is orphaned.
func (a *API) UploadDocuments(c *gin.Context) {
	ctx := c.Request.Context()

	rawVehicleID := c.PostForm("vehicle_id")
	if rawVehicleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vehicle ID is required"})
		return
	}
	vehicleID, err := strconv.ParseUint(rawVehicleID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vehicle ID must be a number"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["documents"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}
	if len(files) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Too many files. Maximum is %d per upload", maxUploadFiles)})
		return
	}
	for _, fh := range files {
		if fh.Size > maxFileSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large. Maximum size is 10MB"})
			return
		}
		if !allowedExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only images and documents are allowed"})
			return
		}
	}

	if _, err := a.vehicles.Get(ctx, uint(vehicleID)); err != nil {
		a.respondError(c, err)
		return
	}

	created := []models.Document{}
	var lastErr error
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			lastErr = err
			continue
		}

		key := storage.NewKey(fh.Filename)
		err = a.files.Save(ctx, key, src)
		src.Close()
		if err != nil {
			a.log.WithError(err).WithField("filename", fh.Filename).Error("failed to store document bytes")
			lastErr = err
			continue
		}

		doc := models.Document{
			VehicleID:        uint(vehicleID),
			StorageKey:       key,
			OriginalFilename: fh.Filename,
			FileSize:         fh.Size,
		}
		if err := a.documents.Create(ctx, &doc); err != nil {
			// roll the bytes back so storage holds nothing without a row
			if derr := a.files.Delete(ctx, key); derr != nil && derr != storage.ErrNotExist {
				a.log.WithError(derr).WithField("storage_key", key).
					Warn("failed to clean up bytes after insert failure, object may be orphaned")
			}
			lastErr = err
			continue
		}

		doc.URL = a.files.URL(key)
		created = append(created, doc)
	}

	if len(created) == 0 && lastErr != nil {
		a.internalError(c, lastErr)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (a *API) ListDocuments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	docs, err := a.documents.ListForVehicle(c.Request.Context(), id)
	if err != nil {
		a.respondError(c, err)
		return
	}
	for i := range docs {
		docs[i].URL = a.files.URL(docs[i].StorageKey)
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) DownloadDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	doc, err := a.documents.Get(ctx, id)
	if err != nil {
		a.respondError(c, err)
		return
	}

	rc, err := a.files.Open(ctx, doc.StorageKey)
	if err == storage.ErrNotExist {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found on server"})
		return
	}
	if err != nil {
		a.internalError(c, err)
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", doc.OriginalFilename),
	}
	c.DataFromReader(http.StatusOK, doc.FileSize, "application/octet-stream", rc, headers)
}

// DeleteDocument removes the bytes then the row. A missing object is only a
// warning; any other storage failure still lets the row go but says so.
func (a *API) DeleteDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	doc, err := a.documents.Get(ctx, id)
	if err != nil {
		a.respondError(c, err)
		return
	}

	var warning string
	if err := a.files.Delete(ctx, doc.StorageKey); err != nil {
		if err == storage.ErrNotExist {
			a.log.WithField("storage_key", doc.StorageKey).Warn("document bytes already missing from storage")
		} else {
			a.log.WithError(err).WithField("storage_key", doc.StorageKey).
				Warn("failed to delete document bytes, object may be orphaned")
			warning = "Stored file could not be deleted and may be orphaned"
		}
	}

	if err := a.documents.Delete(ctx, id); err != nil {
		a.respondError(c, err)
		return
	}

	resp := gin.H{"message": "Document deleted successfully"}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}
