package models

// ResCountry is the country reference table used to resolve the GRT country
// name into a country ID for new partners.
type ResCountry struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
	Code string `gorm:"size:2" json:"code"`
}

func (ResCountry) TableName() string { return "res_country" }
