package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// UserAuth represents a user of the admin API. Users carry the operating units
// they are allowed to work with plus a default one used to prefill new records.
type UserAuth struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Email    string `gorm:"unique;not null" json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `gorm:"default:'user'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	CompanyID *int64      `gorm:"index" json:"companyId"`
	Company   *ResCompany `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	DefaultOperatingUnitID *int64          `gorm:"index" json:"defaultOperatingUnitId"`
	DefaultOperatingUnit   *OperatingUnit  `gorm:"foreignKey:DefaultOperatingUnitID" json:"defaultOperatingUnit,omitempty"`
	AssignedOperatingUnits []OperatingUnit `gorm:"many2many:operating_unit_users_rel" json:"assignedOperatingUnits,omitempty"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserAuth) TableName() string { return "user_auths" }

// BeforeSave enforces that the default operating unit belongs to the user's
// company.
func (u *UserAuth) BeforeSave(tx *gorm.DB) error {
	if u.DefaultOperatingUnitID == nil || u.CompanyID == nil {
		return nil
	}

	var ou OperatingUnit
	if err := tx.First(&ou, *u.DefaultOperatingUnitID).Error; err != nil {
		return err
	}
	if ou.CompanyID != *u.CompanyID {
		return fmt.Errorf("default operating unit [%s] belongs to another company", ou.Code)
	}
	return nil
}
