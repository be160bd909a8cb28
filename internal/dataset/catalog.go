package dataset

// Catalog holds the option lists and slider bounds derived once from a
// Dataset at startup. It is read-only after NewCatalog returns.
type Catalog struct {
	Types      []string `json:"type"`
	Conditions []string `json:"condition"`
	Price      Bounds   `json:"price"`
	ModelYear  Bounds   `json:"model_year"`
}

// NewCatalog computes the options and bounds the filter controls start from.
func NewCatalog(d *Dataset) (*Catalog, error) {
	types, err := DistinctValues(d, ColType)
	if err != nil {
		return nil, err
	}
	conditions, err := DistinctValues(d, ColCondition)
	if err != nil {
		return nil, err
	}
	price, err := NumericBounds(d, ColPrice)
	if err != nil {
		return nil, err
	}
	year, err := NumericBounds(d, ColModelYear)
	if err != nil {
		return nil, err
	}
	return &Catalog{Types: types, Conditions: conditions, Price: price, ModelYear: year}, nil
}
