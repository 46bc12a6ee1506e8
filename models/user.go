package models

// User is an organizer account. Stored in Postgres; email is UNIQUE at the
// schema level. UID is the opaque identifier guest records reference.
type User struct {
	ID        int64  `json:"id"`
	UID       string `json:"uid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"-"`
}

type UserRepository interface {
	Create(u *User) error
	ValidateCredentials(email, plain string) (User, error)
	GetByID(id int64) (User, error)
}
