package models

import "time"

// Record is one registered person. Records are immutable after creation:
// they are only ever added, removed by id, or cleared all at once.
//
// The JSON form is the one persisted by the local backend:
//
//	{"id":"…","firstName":"Jean","lastName":"Dupont","role":"…","bio":"…","createdAt":1718000000000}
type Record struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio,omitempty"`
	Role      string `json:"role,omitempty"`
	// CreatedAt is the creation time in Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
}

// Created returns CreatedAt as a time.Time.
func (r Record) Created() time.Time {
	return time.UnixMilli(r.CreatedAt)
}

// FullName joins first and last name with a space.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}
