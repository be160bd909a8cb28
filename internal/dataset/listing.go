package dataset

// Column names as they appear in the source header.
const (
	ColPrice      = "price"
	ColOdometer   = "odometer"
	ColModelYear  = "model_year"
	ColIs4WD      = "is_4wd"
	ColPaintColor = "paint_color"
	ColType       = "type"
	ColCondition  = "condition"
	ColModel      = "model"
)

// RequiredColumns lists every column a source must carry, in export order.
var RequiredColumns = []string{
	ColPrice, ColModelYear, ColModel, ColCondition, ColOdometer, ColType, ColPaintColor, ColIs4WD,
}

// UnknownPaintColor replaces a missing paint_color.
const UnknownPaintColor = "unknown"

// Listing is one cleaned vehicle advertisement.
type Listing struct {
	Price      float64 `json:"price"`
	Odometer   float64 `json:"odometer"`
	ModelYear  int     `json:"model_year"`
	Is4WD      int     `json:"is_4wd"`
	PaintColor string  `json:"paint_color"`
	Type       *string `json:"type"`
	Condition  *string `json:"condition"`
	Model      *string `json:"model"`
}

// TypeOr returns the listing type or def when it is null.
func (l Listing) TypeOr(def string) string { return deref(l.Type, def) }

// ConditionOr returns the listing condition or def when it is null.
func (l Listing) ConditionOr(def string) string { return deref(l.Condition, def) }

// ModelOr returns the model name or def when it is null.
func (l Listing) ModelOr(def string) string { return deref(l.Model, def) }

// Clone returns a copy of l that shares no memory with it.
func (l Listing) Clone() Listing {
	l.Type = cloneString(l.Type)
	l.Condition = cloneString(l.Condition)
	l.Model = cloneString(l.Model)
	return l
}

func deref(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// RawRow is a source row before preparation. Nil pointers are missing cells.
type RawRow struct {
	Price      float64
	Odometer   *float64
	ModelYear  *float64
	Is4WD      *float64
	PaintColor *string
	Type       *string
	Condition  *string
	Model      *string
}

// RawTable is what a source hands to Prepare: the header it saw plus typed rows.
type RawTable struct {
	Source  string
	Columns []string
	Rows    []RawRow
}

// HasColumn reports whether the table header carries name.
func (t *RawTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
