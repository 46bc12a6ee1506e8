package models

import "context"

// Event is a planned wedding as entered in the event form. Field names
// follow the form field names, which are also the stored document keys.
type Event struct {
	ID                     string `json:"id" bson:"_id,omitempty"`
	FirstPerson            string `json:"firstPerson" bson:"firstPerson"`
	SecondPerson           string `json:"secondPerson" bson:"secondPerson"`
	EventDate              string `json:"eventDate" bson:"eventDate"`
	EventTime              string `json:"eventTime" bson:"eventTime"`
	CeremonyPlace          string `json:"ceremonyPlace" bson:"ceremonyPlace"`
	CeremonyStreetAddress  string `json:"ceremonyStreetAddress" bson:"ceremonyStreetAddress"`
	CeremonyCityAddress    string `json:"ceremonyCityAddress" bson:"ceremonyCityAddress"`
	ReceptionPlace         string `json:"receptionPlace" bson:"receptionPlace"`
	ReceptionStreetAddress string `json:"receptionStreetAddress" bson:"receptionStreetAddress"`
	ReceptionCityAddress   string `json:"receptionCityAddress" bson:"receptionCityAddress"`
	FirstPersonPhone       string `json:"firstPersonPhone" bson:"firstPersonPhone"`
	SecondPersonPhone      string `json:"secondPersonPhone" bson:"secondPersonPhone"`
	Color                  string `json:"color,omitempty" bson:"color,omitempty"` // optional lead color
	EventID                int64  `json:"eventID" bson:"eventID"`                 // generated code
	UserID                 int64  `json:"userId" bson:"userId"`                   // creator
}

type EventRepository interface {
	GetAll() ([]Event, error)
	GetByID(id string) (Event, error)
	Create(e *Event) error
	Delete(id string) error
	// Watch emits the full current collection once on subscription and
	// again after every remote change, until ctx is cancelled.
	Watch(ctx context.Context) (<-chan []Event, error)
}
