// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core identity in the system. It owns posts, favorites and
// browsing history; deleting a user removes all three.
type User struct {
	ID           uint   // Autoincrement primary key.
	Username     string // Unique login identifier.
	PasswordHash string // Self-describing bcrypt hash, never the plaintext.
}
