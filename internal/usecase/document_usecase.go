package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/infrastructure/metrics"
	"permit_tracker/internal/infrastructure/storage"
	"permit_tracker/internal/usecase/interfaces"
)

var (
	ErrInvalidDocument         = categorized(ErrValidation, "invalid document")
	ErrInvalidDocumentCategory = categorized(ErrValidation, "invalid document category")
	ErrDocumentTooLarge        = categorized(ErrValidation, "document exceeds maximum upload size")
	ErrDocumentNotFound        = categorized(ErrNotFound, "document not found")

	ErrDocumentStorageDisabled = errors.New("document storage not configured")
)

// DocumentUpload describes one file attach or replace.
type DocumentUpload struct {
	Name        string
	FileName    string
	ContentType string
	Category    entities.DocumentCategory
	IsRequired  bool
	SizeBytes   int64
	Content     io.Reader
}

// DocumentOptions holds the versioning threshold and the upload ceiling.
type DocumentOptions struct {
	VersionThresholdKB float64
	MaxUploadBytes     int64
	SignedURLTTL       time.Duration
}

type IDocumentUseCase interface {
	Attach(ctx context.Context, applicationNumber string, up DocumentUpload, actor string) (entities.Document, error)
	Replace(ctx context.Context, applicationNumber, documentID string, up DocumentUpload, actor string) (entities.Document, error)
	Get(ctx context.Context, applicationNumber, documentID string) (entities.Document, error)
	List(ctx context.Context, applicationNumber string) ([]entities.Document, error)
	Delete(ctx context.Context, applicationNumber, documentID string) error
	DownloadURL(ctx context.Context, applicationNumber, documentID string) (string, error)
}

type DocumentUseCase struct {
	repo         interfaces.IDocumentRepository
	applications interfaces.IApplicationRepository
	files        interfaces.IFileStorage
	opts         DocumentOptions
	now          func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository, applications interfaces.IApplicationRepository, files interfaces.IFileStorage, opts DocumentOptions) *DocumentUseCase {
	if opts.VersionThresholdKB <= 0 {
		opts.VersionThresholdKB = entities.DefaultVersionThresholdKB
	}
	if opts.SignedURLTTL <= 0 {
		opts.SignedURLTTL = 15 * time.Minute
	}
	return &DocumentUseCase{repo: repo, applications: applications, files: files, opts: opts, now: time.Now}
}

func (u *DocumentUseCase) Attach(ctx context.Context, applicationNumber string, up DocumentUpload, actor string) (entities.Document, error) {
	if err := u.validateUpload(&up); err != nil {
		return entities.Document{}, err
	}
	a, err := u.application(ctx, applicationNumber)
	if err != nil {
		return entities.Document{}, err
	}

	d := entities.Document{
		ID:                uuid.NewString(),
		ApplicationNumber: a.ApplicationNumber,
		Name:              up.Name,
		FileName:          up.FileName,
		FileType:          up.ContentType,
		Category:          up.Category,
		IsRequired:        up.IsRequired,
		Version:           1,
		UploadedBy:        strings.TrimSpace(actor),
	}
	if err := u.store(ctx, &d, up); err != nil {
		return entities.Document{}, err
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		u.discard(ctx, d.StorageLocation)
		return entities.Document{}, err
	}
	log.Info().
		Str("application_number", a.ApplicationNumber).
		Str("document_id", created.ID).
		Int("version", created.Version).
		Float64("file_size_kb", created.FileSizeKB).
		Msg("[document][usecase] attach success")
	return created, nil
}

// Replace uploads a new file for an existing document. The version increments only when the
// new file is larger than the versioning threshold.
func (u *DocumentUseCase) Replace(ctx context.Context, applicationNumber, documentID string, up DocumentUpload, actor string) (entities.Document, error) {
	existing, err := u.Get(ctx, applicationNumber, documentID)
	if err != nil {
		return entities.Document{}, err
	}
	if up.Name == "" {
		up.Name = existing.Name
	}
	if up.Category == "" {
		up.Category = existing.Category
	}
	if err := u.validateUpload(&up); err != nil {
		return entities.Document{}, err
	}

	previous := existing.StorageLocation
	d := existing
	d.Name = up.Name
	d.FileName = up.FileName
	d.FileType = up.ContentType
	d.Category = up.Category
	d.IsRequired = up.IsRequired
	if actor = strings.TrimSpace(actor); actor != "" {
		d.UploadedBy = actor
	}
	if err := u.store(ctx, &d, up); err != nil {
		return entities.Document{}, err
	}

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		u.discard(ctx, d.StorageLocation)
		return entities.Document{}, err
	}
	if previous != "" && previous != updated.StorageLocation {
		u.discard(ctx, previous)
	}
	log.Info().
		Str("application_number", updated.ApplicationNumber).
		Str("document_id", updated.ID).
		Int("from_version", existing.Version).
		Int("version", updated.Version).
		Msg("[document][usecase] replace success")
	return updated, nil
}

// store applies the versioning rule and uploads the bytes under the resulting version.
func (u *DocumentUseCase) store(ctx context.Context, d *entities.Document, up DocumentUpload) error {
	before := d.Version
	d.ApplyUpload(up.SizeBytes, u.opts.VersionThresholdKB)
	d.UploadDate = u.now().UTC()
	metrics.RecordDocumentUpload(string(d.Category), d.Version > before && before > 0)

	if u.files == nil {
		return ErrDocumentStorageDisabled
	}
	objectPath := storage.DocumentObjectPath(d.ApplicationNumber, string(d.Category), d.ID, d.Version, d.FileName)
	location, err := u.files.Upload(ctx, objectPath, up.ContentType, up.Content)
	if err != nil {
		log.Error().Err(err).Str("document_id", d.ID).Msg("[document][usecase] upload failed")
		return err
	}
	d.StorageLocation = location
	return nil
}

func (u *DocumentUseCase) discard(ctx context.Context, location string) {
	if u.files == nil || location == "" {
		return
	}
	if err := u.files.Delete(ctx, location); err != nil {
		log.Warn().Err(err).Str("location", location).Msg("[document][usecase] stored file cleanup failed")
	}
}

func (u *DocumentUseCase) validateUpload(up *DocumentUpload) error {
	up.Name = strings.TrimSpace(up.Name)
	up.FileName = strings.TrimSpace(up.FileName)
	up.ContentType = strings.TrimSpace(up.ContentType)
	if up.Category == "" {
		up.Category = entities.DocumentCategoryOther
	}
	if up.FileName == "" || up.Content == nil || up.SizeBytes < 0 {
		return ErrInvalidDocument
	}
	if up.Name == "" {
		up.Name = up.FileName
	}
	if !up.Category.Valid() {
		return ErrInvalidDocumentCategory
	}
	if u.opts.MaxUploadBytes > 0 && up.SizeBytes > u.opts.MaxUploadBytes {
		return ErrDocumentTooLarge
	}
	return nil
}

func (u *DocumentUseCase) application(ctx context.Context, number string) (entities.Application, error) {
	return getApplication(ctx, u.applications, number)
}

func (u *DocumentUseCase) Get(ctx context.Context, applicationNumber, documentID string) (entities.Document, error) {
	a, err := u.application(ctx, applicationNumber)
	if err != nil {
		return entities.Document{}, err
	}
	d, err := u.repo.Get(ctx, a.ApplicationNumber, strings.TrimSpace(documentID))
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}

func (u *DocumentUseCase) List(ctx context.Context, applicationNumber string) ([]entities.Document, error) {
	a, err := u.application(ctx, applicationNumber)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByApplication(ctx, a.ApplicationNumber)
}

func (u *DocumentUseCase) Delete(ctx context.Context, applicationNumber, documentID string) error {
	d, err := u.Get(ctx, applicationNumber, documentID)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, d.ApplicationNumber, d.ID); err != nil {
		return err
	}
	u.discard(ctx, d.StorageLocation)
	log.Info().Str("application_number", d.ApplicationNumber).Str("document_id", d.ID).Msg("[document][usecase] delete success")
	return nil
}

func (u *DocumentUseCase) DownloadURL(ctx context.Context, applicationNumber, documentID string) (string, error) {
	d, err := u.Get(ctx, applicationNumber, documentID)
	if err != nil {
		return "", err
	}
	if u.files == nil {
		return "", ErrDocumentStorageDisabled
	}
	return u.files.SignedURL(ctx, d.StorageLocation, u.opts.SignedURLTTL)
}
