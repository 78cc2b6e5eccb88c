package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/claimsdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductCategory classifies an insurance product
type ProductCategory string

const (
	ProductCategoryDevice ProductCategory = "DEVICE"
	ProductCategoryHealth ProductCategory = "HEALTH"
	ProductCategoryTravel ProductCategory = "TRAVEL"
	ProductCategoryOther  ProductCategory = "OTHER"
)

// IsValid checks whether the category is one of the known values
func (c ProductCategory) IsValid() bool {
	switch c {
	case ProductCategoryDevice, ProductCategoryHealth, ProductCategoryTravel, ProductCategoryOther:
		return true
	}
	return false
}

// Feature is one marketing feature entry on a product
type Feature struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// FeatureList stores product features as a jsonb column
type FeatureList []Feature

// Value implements driver.Valuer for jsonb storage
func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb storage
func (f *FeatureList) Scan(value interface{}) error {
	if value == nil {
		*f = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	}
	return fmt.Errorf("catalog: cannot scan %T into FeatureList", value)
}

// Product represents a purchasable insurance product. Products are written
// once by the seed process; claims carry their own snapshot of these fields
// and are never re-read from this table.
type Product struct {
	shared.BaseEntity
	Name             string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	PremiumDrops     decimal.Decimal `gorm:"type:decimal(18,0);not null;default:0"`
	PayoutDrops      decimal.Decimal `gorm:"type:decimal(18,0);not null;default:0"`
	CoverageSummary  string          `gorm:"type:text"`
	ShortDescription string          `gorm:"type:text"`
	DescriptionMd    string          `gorm:"type:text"`
	Features         FeatureList     `gorm:"type:jsonb"`
	Category         ProductCategory `gorm:"type:varchar(20);not null"`
	ValidityDays     int             `gorm:"not null;default:30"`
	Active           bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(name string, premiumDrops, payoutDrops decimal.Decimal, category ProductCategory, validityDays int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown product category")
	}
	if premiumDrops.IsNegative() || payoutDrops.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Premium and payout cannot be negative")
	}
	if validityDays <= 0 {
		return nil, shared.NewDomainError("INVALID_VALIDITY", "Validity period must be positive")
	}

	return &Product{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		PremiumDrops: premiumDrops,
		PayoutDrops:  payoutDrops,
		Category:     category,
		ValidityDays: validityDays,
		Active:       true,
	}, nil
}

// Describe sets the descriptive fields on the product
func (p *Product) Describe(coverageSummary, shortDescription, descriptionMd string, features FeatureList) {
	p.CoverageSummary = coverageSummary
	p.ShortDescription = shortDescription
	p.DescriptionMd = descriptionMd
	p.Features = features
	p.UpdatedAt = time.Now()
}

// Deactivate takes the product off sale without deleting historical claims data
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}
