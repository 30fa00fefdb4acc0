package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OperatingUnit represents a sub-division of a company (branch/office) used to
// segment financial and sales records. The Code is the GRT management ID and is
// the natural key the GRT sync matches against: once a unit exists for a code it
// is only ever updated, never recreated.
type OperatingUnit struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string          `gorm:"uniqueIndex;not null" json:"code"`
	Name          string          `gorm:"not null" json:"name"`
	CompanyID     int64           `gorm:"index;not null" json:"companyId"`
	Company       *ResCompany     `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	PartnerID     *int64          `gorm:"index" json:"partnerId"`
	Partner       *ResPartner     `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	ValidFrom     *datatypes.Date `json:"validFrom"`
	ValidUntil    *datatypes.Date `json:"validUntil"`
	SyncedWithGRT bool            `gorm:"default:false" json:"syncedWithGrt"`
	Active        bool            `gorm:"default:true" json:"active"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OperatingUnit) TableName() string { return "operating_unit" }

// ValidFromString returns the validity start formatted as YYYY-MM-DD, or ""
func (ou *OperatingUnit) ValidFromString() string {
	return dateString(ou.ValidFrom)
}

// ValidUntilString returns the validity end formatted as YYYY-MM-DD, or ""
func (ou *OperatingUnit) ValidUntilString() string {
	return dateString(ou.ValidUntil)
}

func dateString(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format("2006-01-02")
}

// ParseDate converts a YYYY-MM-DD string into a *datatypes.Date, nil when empty
// or malformed.
func ParseDate(s string) *datatypes.Date {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}
