package models

// ResPartner is the contact record created alongside an operating unit. The GRT
// sync creates exactly one partner per unit and never shares it.
type ResPartner struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string      `gorm:"index;not null" json:"name"`
	City      string      `json:"city"`
	CountryID *int64      `gorm:"index" json:"countryId"`
	Country   *ResCountry `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

func (ResPartner) TableName() string { return "res_partner" }
