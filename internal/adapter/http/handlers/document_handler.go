package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"permit_tracker/internal/adapter/http/middleware"
	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase"
	"permit_tracker/pkg"
)

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// AttachDocument godoc
// @Summary      Upload a document for an application
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        number      path     string true  "Application number"
// @Param        file        formData file   true  "Document file"
// @Param        name        formData string true  "Display name"
// @Param        category    formData string true  "Document category"
// @Param        is_required formData bool   false "Required by the permit type"
// @Success      201 {object} entities.Document
// @Failure      413 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /applications/{number}/documents [post]
func (h *DocumentHandler) AttachDocument(c *gin.Context) {
	number := c.Param("number")
	up, closeFile, ok := readUpload(c)
	if !ok {
		return
	}
	defer closeFile()

	d, err := h.usecase.Attach(c.Request.Context(), number, up, middleware.ActorFrom(c))
	if err != nil {
		log.Warn().Err(err).Str("application_number", number).Msg("[document][handler] attach failed")
		respondError(c, mapDocumentError(err))
		return
	}
	log.Info().Str("application_number", number).Str("document_id", d.ID).Msg("[document][handler] attach success")
	c.JSON(http.StatusCreated, d)
}

// ReplaceDocument godoc
// @Summary      Upload a new file for an existing document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        number path     string true "Application number"
// @Param        id     path     string true "Document ID"
// @Param        file   formData file   true "Document file"
// @Success      200 {object} entities.Document
// @Router       /applications/{number}/documents/{id} [put]
func (h *DocumentHandler) ReplaceDocument(c *gin.Context) {
	number, id := c.Param("number"), c.Param("id")
	up, closeFile, ok := readUpload(c)
	if !ok {
		return
	}
	defer closeFile()

	d, err := h.usecase.Replace(c.Request.Context(), number, id, up, middleware.ActorFrom(c))
	if err != nil {
		log.Warn().Err(err).Str("application_number", number).Str("document_id", id).Msg("[document][handler] replace failed")
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListDocuments godoc
// @Summary      List documents of an application
// @Tags         documents
// @Produce      json
// @Param        number path string true "Application number"
// @Success      200 {array} entities.Document
// @Router       /applications/{number}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	if list == nil {
		list = []entities.Document{}
	}
	c.JSON(http.StatusOK, list)
}

// GetDocument godoc
// @Summary      Get document metadata
// @Tags         documents
// @Produce      json
// @Param        number path string true "Application number"
// @Param        id     path string true "Document ID"
// @Success      200 {object} entities.Document
// @Router       /applications/{number}/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	d, err := h.usecase.Get(c.Request.Context(), c.Param("number"), c.Param("id"))
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDocument godoc
// @Summary      Delete a document and its stored file
// @Tags         documents
// @Param        number path string true "Application number"
// @Param        id     path string true "Document ID"
// @Success      204
// @Router       /applications/{number}/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("number"), c.Param("id")); err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetDownloadURL godoc
// @Summary      Signed download URL for a document
// @Tags         documents
// @Produce      json
// @Param        number path string true "Application number"
// @Param        id     path string true "Document ID"
// @Success      200 {object} map[string]string
// @Router       /applications/{number}/documents/{id}/url [get]
func (h *DocumentHandler) GetDownloadURL(c *gin.Context) {
	url, err := h.usecase.DownloadURL(c.Request.Context(), c.Param("number"), c.Param("id"))
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// readUpload extracts the multipart file and its metadata fields. On failure it writes the
// error response and returns ok=false.
func readUpload(c *gin.Context) (usecase.DocumentUpload, func(), bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Multipart field file is required", http.StatusBadRequest))
		return usecase.DocumentUpload{}, nil, false
	}
	isRequired := false
	if raw := c.PostForm("is_required"); raw != "" {
		isRequired, err = strconv.ParseBool(raw)
		if err != nil {
			respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "is_required must be a boolean", http.StatusBadRequest))
			return usecase.DocumentUpload{}, nil, false
		}
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, pkg.NewDomainError("INVALID_REQUEST", "Could not read uploaded file", err, http.StatusBadRequest))
		return usecase.DocumentUpload{}, nil, false
	}

	up := usecase.DocumentUpload{
		Name:        c.PostForm("name"),
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Category:    entities.DocumentCategory(c.PostForm("category")),
		IsRequired:  isRequired,
		SizeBytes:   fh.Size,
		Content:     f,
	}
	return up, func() { _ = f.Close() }, true
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDocumentStorageDisabled):
		return pkg.NewDomainErrorSimple("DOCUMENT_STORAGE_DISABLED", "Document storage is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDocumentTooLarge):
		return pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "Document exceeds the maximum upload size", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
