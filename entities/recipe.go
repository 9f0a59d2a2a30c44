package entities

import (
	"github.com/google/uuid"
)

const (
	RecipeStatusPending  = "Pending"
	RecipeStatusApproved = "Approved"
	RecipeStatusDisabled = "Disabled"
)

type Recipe struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Title            string    `gorm:"not null" json:"title"`
	ShortDescription string    `json:"short_description,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	Status           string    `gorm:"not null;default:Pending" json:"status"` // "Pending", "Approved", "Disabled"

	Tags        []Tag              `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Steps       []RecipeStep       `gorm:"foreignKey:RecipeID" json:"steps,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"`
}

type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Position int       `json:"position"`
	Name     string    `gorm:"not null" json:"name"`
	Quantity *string   `json:"quantity,omitempty"` // free text, not strictly numeric
	Unit     *string   `json:"unit,omitempty"`
}

type RecipeStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	StepNumber  int       `json:"step_number"`
	Description string    `gorm:"type:text;not null" json:"description"`
}
