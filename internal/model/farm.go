package model

import "time"

// Farm is the central entity: a named holding with one farm type and
// one production type, optionally an uploaded image and location data.
type Farm struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	FarmTypeID uint      `gorm:"not null;index" json:"farm_type_id"`
	FarmType   *FarmType `gorm:"constraint:OnUpdate:CASCADE" json:"farm_type,omitempty"`

	ProductionTypeID uint            `gorm:"not null;index" json:"production_type_id"`
	ProductionType   *ProductionType `gorm:"constraint:OnUpdate:CASCADE" json:"production_type,omitempty"`

	// Image is the public path of the stored image file, nil when none
	// was uploaded.
	Image *string `json:"image"`

	Provincia *string `json:"provincia"`
	Municipio *string `json:"municipio"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
