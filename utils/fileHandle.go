package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"morya/config"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const maxPhotoCount = 10

// Intake document fields, each carrying at most one file.
var carDocumentFields = map[string]bool{
	"aadhaarCard":     true,
	"panCard":         true,
	"rcBook":          true,
	"insurancePapers": true,
	"form29Front":     true,
	"form29Back":      true,
	"form28Front":     true,
	"form28Back":      true,
	"form30Front":     true,
}

// Sale document fields and their short names used in stored filenames.
var soldDocumentFields = map[string]string{
	"deliveryPhoto": "delivery",
	"aadhaarCard":   "adhar",
	"panCard":       "pan",
	"rcBook":        "rc",
	"loanNoc":       "loan_noc",
}

func SaveUploadedFile(file *multipart.FileHeader, destDir, filename string) error {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	// Create destination file
	dst, err := os.Create(filepath.Join(destDir, filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	return nil
}

// uniqueFilename keeps the original extension and makes collisions
// practically impossible.
func uniqueFilename(original string) string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString() + filepath.Ext(original)
}

// soldFilename follows the naming scheme for documents of a completed
// sale: morya_sold_<type>_<date>_<unique><ext>.
func soldFilename(field, original string) string {
	docType, ok := soldDocumentFields[field]
	if !ok {
		docType = field
	}
	return fmt.Sprintf("morya_sold_%s_%s_%s%s",
		docType,
		time.Now().Format("2006-01-02"),
		uuid.NewString(),
		filepath.Ext(original),
	)
}

// SaveCarIntakeFiles stores the attachments of a car intake form: up to
// ten photos into the photo directory and one file per document field
// into the document directory. It returns the stored photo filenames in
// upload order and a field→filename map for the documents. A field name
// outside the declared set is rejected.
func SaveCarIntakeFiles(form *multipart.Form) ([]string, map[string]string, error) {
	photos := []string{}
	documents := map[string]string{}

	if form == nil {
		return photos, documents, nil
	}

	for field, files := range form.File {
		switch {
		case field == "photos":
			if len(files) > maxPhotoCount {
				return nil, nil, fmt.Errorf("too many photos: %d (max %d)", len(files), maxPhotoCount)
			}
			for _, file := range files {
				name := uniqueFilename(file.Filename)
				if err := SaveUploadedFile(file, config.AppConfig.PhotoDir, name); err != nil {
					return nil, nil, err
				}
				photos = append(photos, name)
			}
		case carDocumentFields[field]:
			if len(files) == 0 {
				continue
			}
			if len(files) > 1 {
				return nil, nil, fmt.Errorf("field %s allows a single file", field)
			}
			name := uniqueFilename(files[0].Filename)
			if err := SaveUploadedFile(files[0], config.AppConfig.DocumentDir, name); err != nil {
				return nil, nil, err
			}
			documents[field] = name
		default:
			return nil, nil, fmt.Errorf("unexpected field: %s", field)
		}
	}

	return photos, documents, nil
}

// SaveSoldCarFiles stores the documents attached to a sale and returns a
// field→stored-path map. Paths are relative to the working directory so
// the normalizer reduces them to basenames when building URLs.
func SaveSoldCarFiles(form *multipart.Form) (map[string]string, error) {
	documents := map[string]string{}

	if form == nil {
		return documents, nil
	}

	for field, files := range form.File {
		if _, ok := soldDocumentFields[field]; !ok {
			return nil, fmt.Errorf("unexpected field: %s", field)
		}
		if len(files) == 0 {
			continue
		}
		if len(files) > 1 {
			return nil, fmt.Errorf("field %s allows a single file", field)
		}
		name := soldFilename(field, files[0].Filename)
		if err := SaveUploadedFile(files[0], config.AppConfig.DocumentDir, name); err != nil {
			return nil, err
		}
		documents[field] = filepath.Join(config.AppConfig.DocumentDir, name)
	}

	return documents, nil
}
