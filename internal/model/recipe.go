package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Ingredient is a single costed line of a recipe
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unit_cost"`
}

// IngredientList is stored as a JSON document column
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into IngredientList", value)
	}

	return json.Unmarshal(bytes, l)
}

// GormDBDataType picks jsonb on Postgres and plain text elsewhere
func (IngredientList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

// FoldName returns the form of a recipe name matched by name search.
// SQLite only folds ASCII, so lower-casing happens here rather than in SQL.
func FoldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SearchIndex returns the lower-cased ingredient names, one per line
func (l IngredientList) SearchIndex() string {
	names := make([]string, 0, len(l))
	for _, ing := range l {
		names = append(names, strings.ToLower(strings.TrimSpace(ing.Name)))
	}
	return strings.Join(names, "\n")
}

// Recipe is a named dish keyed by its unique RecipeName
type Recipe struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeName      string         `gorm:"size:255;not null;uniqueIndex" json:"recipe_name"`
	Servings        int            `gorm:"not null" json:"servings"`
	Ingredients     IngredientList `gorm:"not null" json:"ingredients"`
	NameIndex       string         `gorm:"size:255;not null;default:'';index" json:"-"`
	IngredientIndex string         `gorm:"type:text;not null;default:''" json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// BeforeCreate assigns the document id and builds the search indexes
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.NameIndex = FoldName(r.RecipeName)
	r.IngredientIndex = r.Ingredients.SearchIndex()
	return nil
}
