package model

import "time"

// User represents an application user record as stored in the `users`
// table. Identifiers are CHAR(36) UUID strings generated by the service
// layer at insert time. PasswordHash never leaves the server; it is
// excluded from JSON serialization.
//
// Fields:
//  ID           – primary key identifier of the user.
//  FirstName    – given name.
//  LastName     – family name.
//  Email        – unique email address.
//  Address      – postal address (may be empty).
//  Phone        – contact phone (may be empty).
//  Role         – free-form role label (e.g. candidate, company).
//  PasswordHash – bcrypt hashed password.
//  Description  – profile text (may be empty).
//  CreatedAt    – timestamp of creation.
//  IsVerified   – whether the account passed email verification.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role,omitempty"`
	PasswordHash string    `json:"-"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	IsVerified   bool      `json:"is_verified"`
}

// DeletedUser carries the identifying fields returned after a user row
// has been removed. The full record is gone at that point; only what
// the DELETE statement returned is echoed back.
type DeletedUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
