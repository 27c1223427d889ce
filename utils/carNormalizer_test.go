package utils

import (
	"encoding/json"
	"morya/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

const baseURL = "http://localhost:5000"

func TestNormalizePhotos(t *testing.T) {
	t.Run("filters blanks and prefixes base path", func(t *testing.T) {
		raw := datatypes.JSON(`["a.jpg","","b.png","  "]`)
		photos := NormalizePhotos(raw, baseURL)
		assert.Equal(t, []string{
			"http://localhost:5000/uploads/photos/a.jpg",
			"http://localhost:5000/uploads/photos/b.png",
		}, photos)
	})

	t.Run("absolute URLs pass through unchanged", func(t *testing.T) {
		raw := datatypes.JSON(`["https://cdn.example.com/x.jpg","y.jpg"]`)
		photos := NormalizePhotos(raw, baseURL)
		assert.Equal(t, []string{
			"https://cdn.example.com/x.jpg",
			"http://localhost:5000/uploads/photos/y.jpg",
		}, photos)
	})

	t.Run("order is preserved", func(t *testing.T) {
		raw := datatypes.JSON(`["3.jpg","1.jpg","2.jpg"]`)
		photos := NormalizePhotos(raw, baseURL)
		require.Len(t, photos, 3)
		assert.Contains(t, photos[0], "3.jpg")
		assert.Contains(t, photos[1], "1.jpg")
		assert.Contains(t, photos[2], "2.jpg")
	})

	t.Run("non-list value yields empty list", func(t *testing.T) {
		assert.Equal(t, []string{}, NormalizePhotos(datatypes.JSON(`{"a":1}`), baseURL))
		assert.Equal(t, []string{}, NormalizePhotos(datatypes.JSON(`"a.jpg"`), baseURL))
	})

	t.Run("malformed JSON yields empty list", func(t *testing.T) {
		assert.Equal(t, []string{}, NormalizePhotos(datatypes.JSON(`[not json`), baseURL))
	})

	t.Run("empty column yields empty list, not nil", func(t *testing.T) {
		photos := NormalizePhotos(nil, baseURL)
		require.NotNil(t, photos)
		assert.Empty(t, photos)
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		raw := datatypes.JSON(`["a.jpg","","b.png"]`)
		once := NormalizePhotos(raw, baseURL)

		reencoded, err := json.Marshal(once)
		require.NoError(t, err)
		twice := NormalizePhotos(datatypes.JSON(reencoded), baseURL)
		assert.Equal(t, once, twice)
	})
}

func TestNormalizeDocuments(t *testing.T) {
	t.Run("null keys are omitted", func(t *testing.T) {
		raw := datatypes.JSON(`{"aadhaarCard":"uploads/documents/x.pdf","panCard":null}`)
		docs := NormalizeDocuments(raw, baseURL)
		require.Len(t, docs, 1)
		assert.Equal(t, models.Document{
			URL:  "http://localhost:5000/uploads/documents/x.pdf",
			Type: "pdf",
			Name: "x.pdf",
		}, docs["aadhaarCard"])
		_, ok := docs["panCard"]
		assert.False(t, ok)
	})

	t.Run("directory prefixes are stripped", func(t *testing.T) {
		raw := datatypes.JSON(`{"rcBook":"uploads/documents/rc.jpeg"}`)
		docs := NormalizeDocuments(raw, baseURL)
		assert.Equal(t, "rc.jpeg", docs["rcBook"].Name)
		assert.Equal(t, "http://localhost:5000/uploads/documents/rc.jpeg", docs["rcBook"].URL)
		assert.Equal(t, "image", docs["rcBook"].Type)
	})

	t.Run("type is derived case-insensitively from the extension", func(t *testing.T) {
		raw := datatypes.JSON(`{"a":"one.PDF","b":"two.JPG","c":"three.docx"}`)
		docs := NormalizeDocuments(raw, baseURL)
		assert.Equal(t, "pdf", docs["a"].Type)
		assert.Equal(t, "image", docs["b"].Type)
		assert.Equal(t, "", docs["c"].Type)
	})

	t.Run("absolute URL is kept as-is", func(t *testing.T) {
		raw := datatypes.JSON(`{"insurancePapers":"https://cdn.example.com/docs/policy.pdf"}`)
		docs := NormalizeDocuments(raw, baseURL)
		assert.Equal(t, "https://cdn.example.com/docs/policy.pdf", docs["insurancePapers"].URL)
		assert.Equal(t, "policy.pdf", docs["insurancePapers"].Name)
		assert.Equal(t, "pdf", docs["insurancePapers"].Type)
	})

	t.Run("malformed JSON yields empty map", func(t *testing.T) {
		docs := NormalizeDocuments(datatypes.JSON(`{broken`), baseURL)
		require.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("non-string values are skipped", func(t *testing.T) {
		docs := NormalizeDocuments(datatypes.JSON(`{"a":42,"b":"b.png"}`), baseURL)
		require.Len(t, docs, 1)
		assert.Equal(t, "image", docs["b"].Type)
	})
}

func TestDocumentType(t *testing.T) {
	cases := map[string]string{
		"x.pdf":  "pdf",
		"x.PDF":  "pdf",
		"x.jpg":  "image",
		"x.jpeg": "image",
		"x.png":  "image",
		"x.gif":  "image",
		"x.bmp":  "image",
		"x.webp": "image",
		"x.txt":  "",
		"x":      "",
	}
	for filename, expected := range cases {
		assert.Equal(t, expected, DocumentType(filename), filename)
	}
}

func TestDecodeOrDefault(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"a": "b"}, DecodeMapOrEmpty(datatypes.JSON(`{"a":"b"}`)))
	assert.Empty(t, DecodeMapOrEmpty(datatypes.JSON(`[1,2]`)))
	assert.Empty(t, DecodeMapOrEmpty(datatypes.JSON(`{oops`)))
	assert.Empty(t, DecodeMapOrEmpty(nil))

	assert.Equal(t, []interface{}{"a", "b"}, DecodeListOrEmpty(datatypes.JSON(`["a","b"]`)))
	assert.Empty(t, DecodeListOrEmpty(datatypes.JSON(`{"a":"b"}`)))
	assert.Empty(t, DecodeListOrEmpty(datatypes.JSON(`[oops`)))
	assert.Empty(t, DecodeListOrEmpty(nil))
}

func TestNormalizeCar(t *testing.T) {
	t.Run("fills every derived field", func(t *testing.T) {
		car := models.Car{
			Photos:              datatypes.JSON(`["a.jpg","","b.png"]`),
			Documents:           datatypes.JSON(`{"aadhaarCard":"uploads/documents/x.pdf","panCard":null}`),
			NewOwnerDocuments:   datatypes.JSON(`{"deliveryPhoto":"uploads/documents/d.jpg","loanNoc":null}`),
			OtherInfo:           datatypes.JSON(`{"note":"minor scratch"}`),
			RegistrationFitness: datatypes.JSON(`{"validTill":"2027-01-01"}`),
			ExteriorIssues:      datatypes.JSON(`["dent left door"]`),
			Tyres:               datatypes.JSON(`["60%","60%","40%","40%"]`),
		}

		NormalizeCar(&car, baseURL, true)

		assert.Equal(t, []string{
			"http://localhost:5000/uploads/photos/a.jpg",
			"http://localhost:5000/uploads/photos/b.png",
		}, car.PhotoURLs)
		assert.Len(t, car.DocumentFiles, 1)
		assert.Equal(t, "pdf", car.DocumentFiles["aadhaarCard"].Type)
		assert.Len(t, car.NewOwnerDocumentFiles, 1)
		assert.Equal(t, "image", car.NewOwnerDocumentFiles["deliveryPhoto"].Type)
		assert.Equal(t, "minor scratch", car.OtherInfoData["note"])
		assert.Equal(t, "2027-01-01", car.RegistrationFitnessData["validTill"])
		assert.Len(t, car.ExteriorIssueList, 1)
		assert.Len(t, car.TyreList, 4)
	})

	t.Run("skips photo resolution when photos were not selected", func(t *testing.T) {
		car := models.Car{Photos: datatypes.JSON(`["a.jpg"]`)}
		NormalizeCar(&car, baseURL, false)
		require.NotNil(t, car.PhotoURLs)
		assert.Empty(t, car.PhotoURLs)
	})

	t.Run("corrupt columns degrade to empty defaults", func(t *testing.T) {
		car := models.Car{
			Photos:              datatypes.JSON(`{{{`),
			Documents:           datatypes.JSON(`[[[`),
			NewOwnerDocuments:   datatypes.JSON(`not json`),
			OtherInfo:           datatypes.JSON(`not json`),
			RegistrationFitness: datatypes.JSON(`12`),
			ExteriorIssues:      datatypes.JSON(`"x"`),
			Tyres:               datatypes.JSON(`{}`),
		}

		NormalizeCar(&car, baseURL, true)

		assert.Empty(t, car.PhotoURLs)
		assert.Empty(t, car.DocumentFiles)
		assert.Empty(t, car.NewOwnerDocumentFiles)
		assert.Empty(t, car.OtherInfoData)
		assert.Empty(t, car.RegistrationFitnessData)
		assert.Empty(t, car.ExteriorIssueList)
		assert.Empty(t, car.TyreList)
		assert.NotNil(t, car.PhotoURLs)
		assert.NotNil(t, car.DocumentFiles)
	})
}
