package model

import "time"

// Production kinds: a stable discriminator for dashboard classification.
// The display name stays renamable; aggregation never matches on it.
const (
	ProductionKindMeat  = "carne"
	ProductionKindDairy = "leche"
)

// Canonical display labels. Used only to derive the kind when a
// production type is created without one.
const (
	LabelMeat  = "Cárnica"
	LabelDairy = "Láctea"
)

// ProductionType classifies what a farm produces.
type ProductionType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// Kind is "carne", "leche" or empty for types that take part
	// in no dashboard aggregate.
	Kind string `gorm:"index" json:"kind"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// KindForLabel maps the canonical display labels to their kind.
// Unknown labels map to the empty kind.
func KindForLabel(name string) string {
	switch name {
	case LabelMeat:
		return ProductionKindMeat
	case LabelDairy:
		return ProductionKindDairy
	}
	return ""
}
