package models

import "context"

// Guest is one RSVP as submitted through the guest form.
type Guest struct {
	ID                  string   `json:"id" bson:"_id,omitempty"`
	FirstName           string   `json:"firstName" bson:"firstName"`
	LastName            string   `json:"lastName" bson:"lastName"`
	Email               string   `json:"email" bson:"email"`
	Presence            string   `json:"presence,omitempty" bson:"presence,omitempty"`
	Partner             string   `json:"partner,omitempty" bson:"partner,omitempty"`
	Child               string   `json:"child,omitempty" bson:"child,omitempty"`
	NumberOfChildren    int      `json:"numberOfChildren,omitempty" bson:"numberOfChildren,omitempty"`
	SelectedMenuGuest   []string `json:"selectedMenuGuest,omitempty" bson:"selectedMenuGuest,omitempty"`
	SelectedMenuPartner string   `json:"selectedMenuPartner,omitempty" bson:"selectedMenuPartner,omitempty"`
	SelectedMenuChild   string   `json:"selectedMenuChild,omitempty" bson:"selectedMenuChild,omitempty"`
	Alcohols            []string `json:"alcohols,omitempty" bson:"alcohols,omitempty"`
	Accommodation       string   `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	Transport           string   `json:"transport,omitempty" bson:"transport,omitempty"`
	AdditionalInfo      string   `json:"additionalInfo,omitempty" bson:"additionalInfo,omitempty"`
	GuestID             int64    `json:"guestID" bson:"guestID"`                   // generated code
	UserUID             string   `json:"userUID,omitempty" bson:"userUID,omitempty"` // owning user
	Timestamp           int64    `json:"timestamp" bson:"timestamp"`               // unix millis at submit
}

type GuestRepository interface {
	GetAll() ([]Guest, error)
	// CountMatching is the pre-insert duplicate check: an equality filter
	// on the identifying triple. Check-then-act only; two concurrent
	// submissions of the same triple can still both land.
	CountMatching(firstName, lastName, email string) (int64, error)
	Create(g *Guest) error
	Delete(id string) error
	Watch(ctx context.Context) (<-chan []Guest, error)
}
