package model

import "time"

// Animal belongs to exactly one farm. All attribute fields except the
// species label are optional and stored as NULL when never supplied.
type Animal struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	AnimalType string `gorm:"not null" json:"animal_type"`

	IdentificationNumber *string  `json:"identification_number"`
	Weight               *float64 `json:"weight"`
	EstimatedProduction  *float64 `json:"estimated_production"`
	SanitaryRegister     *string  `json:"sanitary_register"`
	Age                  *int     `json:"age"`

	// Incidents carries free-text health incident notes. An animal counts
	// as incident-bearing when the field is non-null and non-empty.
	Incidents *string `json:"incidents"`

	FarmID uint  `gorm:"not null;index" json:"farm_id"`
	Farm   *Farm `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"farm,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
