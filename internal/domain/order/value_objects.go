package order

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyContactName = errors.New("contact name cannot be empty")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidEmail     = errors.New("invalid email address")
)

var (
	phonePattern = regexp.MustCompile(`^[0-9+][0-9\-() ]{7,19}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Contact is the pickup contact captured on the user-info step. Email is
// optional; name and phone are how the shop reaches the customer at pickup.
type Contact struct {
	name  string
	phone string
	email string
}

func NewContact(name, phone, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyContactName
	}

	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return Contact{}, ErrInvalidPhone
	}

	email = strings.TrimSpace(email)
	if email != "" && !emailPattern.MatchString(email) {
		return Contact{}, ErrInvalidEmail
	}

	return Contact{name: name, phone: phone, email: email}, nil
}

func ReconstructContact(name, phone, email string) Contact {
	return Contact{name: name, phone: phone, email: email}
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
func (c Contact) Email() string { return c.email }
