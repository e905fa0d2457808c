// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is a registered identity.
//
// ID and CreatedAt are assigned by the store on creation. Email is unique
// across all accounts. CredentialHash is a one-way transform of the password
// and is never equal to it.
type Account struct {
	ID             string
	Name           string
	Email          string
	AvatarRef      string
	CredentialHash string
	CreatedAt      time.Time
}
