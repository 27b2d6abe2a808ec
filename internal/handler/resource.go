package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"CampusVault/internal/dto"
	"CampusVault/internal/service"
	"CampusVault/model"
	"CampusVault/utils"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves resource uploads, metadata and downloads.
type ResourceHandler struct {
	resources *service.ResourceService
}

// NewResourceHandler creates a resource handler.
func NewResourceHandler(resources *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

func toResourceResponse(r *model.Resource) dto.ResourceResponse {
	return dto.ResourceResponse{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		FileName:      r.FileName,
		StoredName:    r.FilePath,
		FileSize:      r.FileSize,
		DownloadCount: r.DownloadCount,
		UploaderID:    r.UserID,
		Uploader:      r.Uploader.UserName,
		CreatedAt:     r.CreatedAt,
	}
}

// List returns all resources.
func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.resources.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.ResourceResponse, 0, len(resources))
	for i := range resources {
		out = append(out, toResourceResponse(&resources[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Upload ingests a multipart file upload.
func (h *ResourceHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}
	defer src.Close()

	resource, err := h.resources.Ingest(c.Request.Context(), &service.IngestInput{
		FileName:    fileHeader.Filename,
		Size:        fileHeader.Size,
		Reader:      src,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		UserID:      actorID(c),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Resource uploaded successfully",
		"resource": gin.H{
			"id":          resource.ID,
			"title":       resource.Title,
			"file_name":   resource.FileName,
			"stored_name": resource.FilePath,
		},
	})
}

// Get returns one resource and counts the fetch as a download.
func (h *ResourceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}
	resource, err := h.resources.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResourceResponse(resource))
}

// Update mutates resource metadata. Uploader only.
func (h *ResourceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}
	var req dto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	resource, err := h.resources.Update(c.Request.Context(), id, actorID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Resource updated",
		"resource": gin.H{
			"id":    resource.ID,
			"title": resource.Title,
		},
	})
}

// Delete removes a resource. Uploader only.
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}
	if err := h.resources.Delete(c.Request.Context(), id, actorID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted"})
}

// Download streams stored bytes as an attachment.
func (h *ResourceHandler) Download(c *gin.Context) {
	storedName := c.Param("filename")
	reader, fileName, size, err := h.resources.OpenStored(c.Request.Context(), storedName)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer reader.Close()

	disposition := fmt.Sprintf("attachment; filename=\"%s\"", utils.SanitizeHeaderFilename(fileName))
	c.DataFromReader(http.StatusOK, size, "application/octet-stream", reader, map[string]string{
		"Content-Disposition": disposition,
	})
}
