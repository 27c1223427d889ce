package utils

import (
	"encoding/json"
	"morya/models"
	"path"
	"strings"

	"gorm.io/datatypes"
)

// imageExtensions are the extensions mapped to the "image" document type.
var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "bmp": true, "webp": true,
}

// DecodeListOrEmpty parses a JSON column expected to hold a list.
// Anything that is not a JSON list decodes to an empty list.
func DecodeListOrEmpty(raw datatypes.JSON) []interface{} {
	out := []interface{}{}
	if len(raw) == 0 {
		return out
	}
	var parsed []interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed == nil {
		return out
	}
	return parsed
}

// DecodeMapOrEmpty parses a JSON column expected to hold an object.
// Anything that is not a JSON object decodes to an empty object.
func DecodeMapOrEmpty(raw datatypes.JSON) map[string]interface{} {
	out := map[string]interface{}{}
	if len(raw) == 0 {
		return out
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed == nil {
		return out
	}
	return parsed
}

// NormalizePhotos decodes a stored photo list and resolves every entry to
// a fetchable URL. Blank entries are dropped, order is preserved and
// entries that are already absolute URLs pass through unchanged.
func NormalizePhotos(raw datatypes.JSON, baseURL string) []string {
	photos := []string{}
	for _, entry := range DecodeListOrEmpty(raw) {
		name, ok := entry.(string)
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		if strings.HasPrefix(name, "http") {
			photos = append(photos, name)
			continue
		}
		photos = append(photos, baseURL+"/uploads/photos/"+name)
	}
	return photos
}

// DocumentType infers pdf/image from a filename extension,
// case-insensitively. Unknown extensions yield an empty type.
func DocumentType(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "pdf" {
		return "pdf"
	}
	if imageExtensions[ext] {
		return "image"
	}
	return ""
}

// NormalizeDocuments decodes a stored document map into URL descriptors.
// Keys holding null or blank filenames are omitted; stored paths are
// reduced to their basename before building the URL. A malformed column
// yields an empty map, never an error.
func NormalizeDocuments(raw datatypes.JSON, baseURL string) map[string]models.Document {
	docs := map[string]models.Document{}
	if len(raw) == 0 {
		return docs
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return docs
	}
	for key, value := range parsed {
		filename, ok := value.(string)
		if !ok || filename == "" {
			continue
		}
		if strings.HasPrefix(filename, "http") {
			docs[key] = models.Document{
				URL:  filename,
				Type: DocumentType(filename),
				Name: path.Base(filename),
			}
			continue
		}
		name := path.Base(filename)
		docs[key] = models.Document{
			URL:  baseURL + "/uploads/documents/" + name,
			Type: DocumentType(name),
			Name: name,
		}
	}
	return docs
}

// NormalizeCar fills the derived response fields of a car from its stored
// JSON columns. Each field degrades to its empty default on bad data, so
// a corrupt column never fails the request. Photo resolution is skipped
// when the photo column was not selected.
func NormalizeCar(car *models.Car, baseURL string, includePhotos bool) {
	if includePhotos {
		car.PhotoURLs = NormalizePhotos(car.Photos, baseURL)
	} else {
		car.PhotoURLs = []string{}
	}
	car.DocumentFiles = NormalizeDocuments(car.Documents, baseURL)
	car.NewOwnerDocumentFiles = NormalizeDocuments(car.NewOwnerDocuments, baseURL)
	car.OtherInfoData = DecodeMapOrEmpty(car.OtherInfo)
	car.RegistrationFitnessData = DecodeMapOrEmpty(car.RegistrationFitness)
	car.ExteriorIssueList = DecodeListOrEmpty(car.ExteriorIssues)
	car.TyreList = DecodeListOrEmpty(car.Tyres)
}

// NormalizeCars applies NormalizeCar to a result page in place.
func NormalizeCars(cars []models.Car, baseURL string, includePhotos bool) {
	for i := range cars {
		NormalizeCar(&cars[i], baseURL, includePhotos)
	}
}
