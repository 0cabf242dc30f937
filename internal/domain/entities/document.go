package entities

import (
	"math"
	"time"
)

// DocumentCategory is the closed set of document kinds.
type DocumentCategory string

const (
	DocumentCategorySitePlan           DocumentCategory = "Site Plan"
	DocumentCategoryBuildingPlans      DocumentCategory = "Building Plans"
	DocumentCategoryStructuralDrawings DocumentCategory = "Structural Drawings"
	DocumentCategoryEngineeringReports DocumentCategory = "Engineering Reports"
	DocumentCategoryProofOfOwnership   DocumentCategory = "Proof of Ownership"
	DocumentCategoryOther              DocumentCategory = "Other"
)

func (c DocumentCategory) Valid() bool {
	switch c {
	case DocumentCategorySitePlan, DocumentCategoryBuildingPlans, DocumentCategoryStructuralDrawings,
		DocumentCategoryEngineeringReports, DocumentCategoryProofOfOwnership, DocumentCategoryOther:
		return true
	}
	return false
}

// DefaultVersionThresholdKB is the size above which a new upload bumps the version.
const DefaultVersionThresholdKB = 5000

// Document is a file attached to an application.
//
// Storage model (DynamoDB):
//   - PK: application_number
//   - SK: id
type Document struct {
	ID                string           `json:"id"`
	ApplicationNumber string           `json:"application_number"`
	Name              string           `json:"name"`
	FileName          string           `json:"file_name"`
	FileType          string           `json:"file_type"`
	FileSizeKB        float64          `json:"file_size_kb"`
	Category          DocumentCategory `json:"category"`
	IsRequired        bool             `json:"is_required"`
	Version           int              `json:"version"`
	UploadedBy        string           `json:"uploaded_by,omitempty"`
	UploadDate        time.Time        `json:"upload_date"`
	StorageLocation   string           `json:"storage_location"`
}

// SizeKB converts a byte count to kilobytes (1 KB = 1000 bytes) with 2 fraction digits.
func SizeKB(sizeBytes int64) float64 {
	return math.Round(float64(sizeBytes)/10) / 100
}

// ApplyUpload records a new file size and increments the version when the size exceeds thresholdKB.
func (d *Document) ApplyUpload(sizeBytes int64, thresholdKB float64) {
	if d.Version < 1 {
		d.Version = 1
	}
	d.FileSizeKB = SizeKB(sizeBytes)
	// compare the exact size; FileSizeKB is rounded for display
	if float64(sizeBytes)/1000 > thresholdKB {
		d.Version++
	}
}

func (d Document) String() string {
	return d.Name
}
