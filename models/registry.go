package models

// CodeRecord is the registry side-record written next to each event and
// guest: just the generated code. No consumer reads it here; it is kept as
// an opaque side-effect of record creation.
type CodeRecord struct {
	ID int64 `json:"ID" bson:"ID"`
}

type RegistryRepository interface {
	Add(code int64) error
}
