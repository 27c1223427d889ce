package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is the API representation of one uploaded document:
// a fetchable URL plus a type inferred from the file extension.
type Document struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Car is the central inventory record. The photo and document attachments
// are denormalized JSON columns holding stored filenames; the matching
// gorm:"-" fields carry the normalized API output (parsed lists, URL
// descriptors) and are filled by utils.NormalizeCar before responding.
type Car struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Brand              string `gorm:"index" json:"brand"`
	Model              string `gorm:"index" json:"model"`
	Variant            string `json:"variant"`
	Year               string `json:"year"`
	ManufacturingMonth string `json:"manufacturingMonth"`
	NumberOfOwners     string `json:"numberOfOwners"`
	Colour             string `json:"colour"`
	FuelType           string `json:"fuelType"`
	Transmission       string `json:"transmission"`

	RegistrationNumber string `gorm:"index" json:"registrationNumber"`
	RegistrationPlace  string `json:"registrationPlace"`
	EngineNumber       string `json:"engineNumber"`
	ChassisNumber      string `json:"chassisNumber"`
	ClientMobile       string `json:"clientMobile"`

	Price            string `json:"price"`
	KilometersDriven string `json:"kilometersDriven"`
	InsuranceType    string `json:"insuranceType"`

	// Form pages uploaded at intake, one file each.
	Form29Front *string `gorm:"column:form29_front" json:"form29Front"`
	Form29Back  *string `gorm:"column:form29_back" json:"form29Back"`
	Form28Front *string `gorm:"column:form28_front" json:"form28Front"`
	Form28Back  *string `gorm:"column:form28_back" json:"form28Back"`
	Form30Front *string `gorm:"column:form30_front" json:"form30Front"`

	Sold     bool       `gorm:"default:false;index" json:"sold"`
	SaleDate *time.Time `json:"saleDate"`

	// Payment breakdown. Pointers so that an empty form value is stored
	// as NULL, never as the empty string.
	SalePrice              *string `json:"salePrice"`
	TokenAmount            *string `json:"tokenAmount"`
	TokenPaymentType       *string `json:"tokenPaymentType"`
	FirstAmount            *string `json:"firstAmount"`
	FirstPaymentType       *string `json:"firstPaymentType"`
	TransferredAmount      *string `json:"transferredAmount"`
	TransferredPaymentType *string `json:"transferredPaymentType"`
	LoanAmount             *string `json:"loanAmount"`
	TotalAmount            *string `json:"totalAmount"`
	RemainingAmount        *string `json:"remainingAmount"`

	NewOwnerName    *string `json:"newOwnerName"`
	NewOwnerPhone   *string `json:"newOwnerPhone"`
	NewOwnerPhone2  *string `gorm:"column:new_owner_phone2" json:"newOwnerPhone2"`
	NewOwnerEmail   *string `json:"newOwnerEmail"`
	NewOwnerAddress *string `json:"newOwnerAddress"`

	// Denormalized JSON columns as stored.
	Photos              datatypes.JSON `json:"-"`
	Documents           datatypes.JSON `json:"-"`
	NewOwnerDocuments   datatypes.JSON `json:"-"`
	OtherInfo           datatypes.JSON `json:"-"`
	RegistrationFitness datatypes.JSON `json:"-"`
	ExteriorIssues      datatypes.JSON `json:"-"`
	Tyres               datatypes.JSON `json:"-"`

	// Normalized output, never persisted.
	PhotoURLs               []string               `gorm:"-" json:"photos"`
	DocumentFiles           map[string]Document    `gorm:"-" json:"documents"`
	NewOwnerDocumentFiles   map[string]Document    `gorm:"-" json:"newOwnerDocuments"`
	OtherInfoData           map[string]interface{} `gorm:"-" json:"otherInfo"`
	RegistrationFitnessData map[string]interface{} `gorm:"-" json:"registrationFitness"`
	ExteriorIssueList       []interface{}          `gorm:"-" json:"exteriorIssues"`
	TyreList                []interface{}          `gorm:"-" json:"tyres"`
}
