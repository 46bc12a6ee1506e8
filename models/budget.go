package models

// Budget is one budget line of an event. The app only lists budgets;
// they are created by other clients of the store.
type Budget struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Amount   float64 `json:"amount" bson:"amount"`
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
	Notes    string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

type BudgetRepository interface {
	GetAll() ([]Budget, error)
}
