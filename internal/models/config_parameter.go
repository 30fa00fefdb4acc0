package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Well-known parameter keys
const (
	ParamGRTAPIURL = "grt.api_url"
	ParamGRTAPIKey = "grt.api_key"
)

// ConfigParameter is a persisted key/value configuration store. The GRT endpoint
// URL and (optionally) the API key live here so they can be changed without a
// redeploy.
type ConfigParameter struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Key   string `gorm:"uniqueIndex;not null;column:key" json:"key"`
	Value string `gorm:"type:text" json:"value"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ConfigParameter) TableName() string { return "config_parameter" }

// GetParam returns the stored value for key, or fallback when absent.
func GetParam(db *gorm.DB, key, fallback string) string {
	var param ConfigParameter
	if err := db.Where("key = ?", key).First(&param).Error; err != nil {
		return fallback
	}
	return param.Value
}

// SetParam upserts a configuration parameter.
func SetParam(db *gorm.DB, key, value string) error {
	param := ConfigParameter{Key: key, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&param).Error
}
