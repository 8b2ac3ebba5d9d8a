package category

// Category is one of the five fixed beverage classes a session operates on.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Store is the fixed in-memory category table, initialized at process start
// and never mutated.
type Store struct {
	items []Category
}

// NewStore returns the store preloaded with the product categories from the
// statement of work.
func NewStore() *Store {
	return &Store{items: []Category{
		{ID: "wine", Name: "Wine", Description: "Wine distribution agreements"},
		{ID: "spirit", Name: "Spirit", Description: "Spirit distribution agreements"},
		{ID: "rtd", Name: "Ready-to-Drink", Description: "RTD beverage agreements"},
		{ID: "na", Name: "Non-Alcoholic", Description: "Non-alcoholic beverage agreements"},
		{ID: "beer", Name: "Beer", Description: "Beer distribution agreements"},
	}}
}

// ByID looks up a category by identifier.
func (s *Store) ByID(id string) (Category, bool) {
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// All returns the fixed category list.
func (s *Store) All() []Category {
	return append([]Category(nil), s.items...)
}
