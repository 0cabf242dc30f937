package repository

import (
	"context"

	"permit_tracker/internal/domain/entities"
	"permit_tracker/internal/usecase/interfaces"
)

const (
	documentsPartitionKey = "application_number"
	documentsSortKey      = "id"
)

type documentItem struct {
	ApplicationNumber string  `dynamodbav:"application_number"`
	ID                string  `dynamodbav:"id"`
	Name              string  `dynamodbav:"document_name"`
	FileName          string  `dynamodbav:"file_name"`
	FileType          string  `dynamodbav:"file_type"`
	FileSizeKB        float64 `dynamodbav:"file_size_kb"`
	Category          string  `dynamodbav:"document_category"`
	IsRequired        bool    `dynamodbav:"is_required"`
	Version           int     `dynamodbav:"version"`
	UploadedBy        string  `dynamodbav:"uploaded_by,omitempty"`
	UploadDate        string  `dynamodbav:"upload_date"`
	StorageLocation   string  `dynamodbav:"storage_location,omitempty"`
}

// DocumentDynamoRepository persists document metadata. File bytes live in object storage.
//
// Table requirements:
//   - PK: application_number (string)
//   - SK: id (string)
type DocumentDynamoRepository struct {
	t table
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb DynamoAPI, tableName string) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	if err := r.t.create(ctx, toDocumentItem(d), documentsSortKey); err != nil {
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) Get(ctx context.Context, applicationNumber, id string) (entities.Document, error) {
	var it documentItem
	found, err := r.t.get(ctx, compositeKey(documentsPartitionKey, applicationNumber, documentsSortKey, id), &it)
	if err != nil || !found {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) ListByApplication(ctx context.Context, applicationNumber string) ([]entities.Document, error) {
	raw, err := r.t.queryPartition(ctx, documentsPartitionKey, applicationNumber)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalItems[documentItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Document, 0, len(items))
	for _, it := range items {
		out = append(out, fromDocumentItem(it))
	}
	return out, nil
}

// Update replaces the stored metadata. A missing document yields a zero Document.
func (r *DocumentDynamoRepository) Update(ctx context.Context, d entities.Document) (entities.Document, error) {
	ok, err := r.t.replace(ctx, toDocumentItem(d), documentsSortKey)
	if err != nil || !ok {
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, applicationNumber, id string) error {
	return r.t.delete(ctx, compositeKey(documentsPartitionKey, applicationNumber, documentsSortKey, id))
}

func (r *DocumentDynamoRepository) DeleteByApplication(ctx context.Context, applicationNumber string) error {
	return r.t.deletePartition(ctx, documentsPartitionKey, applicationNumber, documentsSortKey)
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ApplicationNumber: d.ApplicationNumber,
		ID:                d.ID,
		Name:              d.Name,
		FileName:          d.FileName,
		FileType:          d.FileType,
		FileSizeKB:        d.FileSizeKB,
		Category:          string(d.Category),
		IsRequired:        d.IsRequired,
		Version:           d.Version,
		UploadedBy:        d.UploadedBy,
		UploadDate:        formatTime(d.UploadDate),
		StorageLocation:   d.StorageLocation,
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	return entities.Document{
		ID:                it.ID,
		ApplicationNumber: it.ApplicationNumber,
		Name:              it.Name,
		FileName:          it.FileName,
		FileType:          it.FileType,
		FileSizeKB:        it.FileSizeKB,
		Category:          entities.DocumentCategory(it.Category),
		IsRequired:        it.IsRequired,
		Version:           it.Version,
		UploadedBy:        it.UploadedBy,
		UploadDate:        parseTime(it.UploadDate),
		StorageLocation:   it.StorageLocation,
	}
}
