// Package forms validates user input before anything is sent to the API.
// Every failure is an *sdk.ValidationError carrying the message shown to the user.
package forms

import (
	"math"
	"strconv"
	"strings"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

func invalid(field, message string) error {
	return &sdk.ValidationError{Field: field, Message: message}
}

// Login is the sign-in form.
type Login struct {
	Email    string
	Password string
}

// Validate checks that both fields are filled in.
func (f Login) Validate() (sdk.LoginInput, error) {
	email := strings.TrimSpace(f.Email)
	if email == "" || f.Password == "" {
		return sdk.LoginInput{}, invalid("", "Please fill in all fields")
	}
	return sdk.LoginInput{Email: email, Password: f.Password}, nil
}

// Register is the sign-up form.
type Register struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate checks presence, password length and confirmation, in that order.
func (f Register) Validate() (sdk.RegisterInput, error) {
	name := strings.TrimSpace(f.Name)
	email := strings.TrimSpace(f.Email)
	if name == "" || email == "" || f.Password == "" || f.ConfirmPassword == "" {
		return sdk.RegisterInput{}, invalid("", "Please fill in all fields")
	}
	if len(f.Password) < MinPasswordLength {
		return sdk.RegisterInput{}, invalid("password", "Password must be at least 6 characters")
	}
	if f.Password != f.ConfirmPassword {
		return sdk.RegisterInput{}, invalid("confirmPassword", "Passwords do not match")
	}
	return sdk.RegisterInput{Name: name, Email: email, Password: f.Password}, nil
}

// Sweet is the add/edit form. Price and Quantity hold the raw text typed by the user.
type Sweet struct {
	Name     string
	Category string
	Price    string
	Quantity string
}

// SweetFrom pre-fills the form from an existing item.
func SweetFrom(s sdk.Sweet) Sweet {
	return Sweet{
		Name:     s.Name,
		Category: s.Category,
		Price:    strconv.FormatFloat(s.Price, 'f', -1, 64),
		Quantity: strconv.Itoa(s.Quantity),
	}
}

// Validate parses the form into an API input.
func (f Sweet) Validate() (sdk.SweetInput, error) {
	name := strings.TrimSpace(f.Name)
	category := strings.TrimSpace(f.Category)
	if name == "" || category == "" || strings.TrimSpace(f.Price) == "" || strings.TrimSpace(f.Quantity) == "" {
		return sdk.SweetInput{}, invalid("", "Please fill in all fields")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return sdk.SweetInput{}, invalid("price", "Please enter a valid price")
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil || quantity < 0 {
		return sdk.SweetInput{}, invalid("quantity", "Please enter a valid quantity")
	}

	return sdk.SweetInput{Name: name, Category: category, Price: price, Quantity: quantity}, nil
}

// Restock parses a restock amount, which must be a positive whole number.
func Restock(quantity string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil || n <= 0 {
		return 0, invalid("quantity", "Please enter a valid quantity")
	}
	return n, nil
}
