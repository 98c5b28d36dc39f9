// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes consumers from producers. Producers additionally
// carry a ProducerProfile and may own locations.
const (
	UserTypeConsumer = "CONSUMER"
	UserTypeProducer = "PRODUCER"
)

// User is the core identity in the system. It contains only the fundamental
// account information shared by consumers and producers.
type User struct {
	ID              uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Email           string           // The user's primary contact email, used as the login identifier.
	Name            string           // The user's display name.
	Phone           string           // Optional contact phone number.
	UserType        string           // Either UserTypeConsumer or UserTypeProducer.
	PasswordHash    string           // The bcrypt hash of the user's password. Never serialized.
	Avatar          string           // URL of the user's avatar image, if any.
	ProducerProfile *ProducerProfile // Nil unless the user is a producer.
	CreatedAt       time.Time        // Timestamp of when this account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification.
}

// IsProducer reports whether this account is registered as a producer.
func (u *User) IsProducer() bool {
	return u.UserType == UserTypeProducer
}
