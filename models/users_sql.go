package models

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"weddingapi/utils"
)

type sqlUserRepo struct{ db *sql.DB }

func NewSQLUserRepository(db *sql.DB) UserRepository { return &sqlUserRepo{db} }

// Create hashes the plain password and assigns the opaque uid. The UNIQUE
// constraint on email rejects duplicate accounts.
func (r *sqlUserRepo) Create(u *User) error {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	u.UID = uuid.NewString()

	err = r.db.QueryRow(
		`INSERT INTO users(uid, first_name, last_name, email, password)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		u.UID, u.FirstName, u.LastName, u.Email, u.Password,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *sqlUserRepo) ValidateCredentials(email, plain string) (User, error) {
	var u User
	err := r.db.QueryRow(
		`SELECT id, uid, first_name, last_name, email, password FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.UID, &u.FirstName, &u.LastName, &u.Email, &u.Password)
	if err != nil {
		return User{}, errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(plain, u.Password) {
		return User{}, errors.New("invalid credentials")
	}
	return u, nil
}

func (r *sqlUserRepo) GetByID(id int64) (User, error) {
	var u User
	err := r.db.QueryRow(
		`SELECT id, uid, first_name, last_name, email FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.UID, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		return User{}, err
	}
	return u, nil
}
