package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

func requireValidation(t *testing.T, err error, message string) {
	t.Helper()
	var validationErr *sdk.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, message, validationErr.Message)
}

func TestLogin_Validate(t *testing.T) {
	in, err := Login{Email: " a@b.c ", Password: "secret"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, sdk.LoginInput{Email: "a@b.c", Password: "secret"}, in)

	_, err = Login{Email: "a@b.c"}.Validate()
	requireValidation(t, err, "Please fill in all fields")
	_, err = Login{Email: "  ", Password: "x"}.Validate()
	requireValidation(t, err, "Please fill in all fields")
}

func TestRegister_Validate(t *testing.T) {
	tests := []struct {
		name string
		form Register
		want string
	}{
		{"missing name", Register{Email: "a@b.c", Password: "secret", ConfirmPassword: "secret"}, "Please fill in all fields"},
		{"missing confirmation", Register{Name: "A", Email: "a@b.c", Password: "secret"}, "Please fill in all fields"},
		{"short password", Register{Name: "A", Email: "a@b.c", Password: "12345", ConfirmPassword: "12345"}, "Password must be at least 6 characters"},
		{"mismatch", Register{Name: "A", Email: "a@b.c", Password: "secret1", ConfirmPassword: "secret2"}, "Passwords do not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.form.Validate()
			requireValidation(t, err, tt.want)
		})
	}

	in, err := Register{Name: "Asha", Email: "asha@example.com", Password: "secret", ConfirmPassword: "secret"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, sdk.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "secret"}, in)
}

func TestSweet_Validate(t *testing.T) {
	in, err := Sweet{Name: "Ladoo", Category: "Indian", Price: "1.5", Quantity: "10"}.Validate()
	require.NoError(t, err)
	assert.Equal(t, sdk.SweetInput{Name: "Ladoo", Category: "Indian", Price: 1.5, Quantity: 10}, in)

	_, err = Sweet{Name: "Ladoo", Category: "Indian", Price: "1.5"}.Validate()
	requireValidation(t, err, "Please fill in all fields")
	_, err = Sweet{Name: "Ladoo", Category: "Indian", Price: "abc", Quantity: "1"}.Validate()
	requireValidation(t, err, "Please enter a valid price")
	_, err = Sweet{Name: "Ladoo", Category: "Indian", Price: "-1", Quantity: "1"}.Validate()
	requireValidation(t, err, "Please enter a valid price")
	for _, nonFinite := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity", "1e400"} {
		_, err = Sweet{Name: "Ladoo", Category: "Indian", Price: nonFinite, Quantity: "1"}.Validate()
		requireValidation(t, err, "Please enter a valid price")
	}
	_, err = Sweet{Name: "Ladoo", Category: "Indian", Price: "1", Quantity: "1.5"}.Validate()
	requireValidation(t, err, "Please enter a valid quantity")

	in, err = Sweet{Name: "Free", Category: "Promo", Price: "0", Quantity: "0"}.Validate()
	require.NoError(t, err)
	assert.Zero(t, in.Price)
}

func TestSweetFrom(t *testing.T) {
	form := SweetFrom(sdk.Sweet{Name: "Barfi", Category: "Indian", Price: 3.75, Quantity: 4})
	assert.Equal(t, Sweet{Name: "Barfi", Category: "Indian", Price: "3.75", Quantity: "4"}, form)
}

func TestRestock(t *testing.T) {
	n, err := Restock(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"", "0", "-3", "two"} {
		_, err := Restock(bad)
		requireValidation(t, err, "Please enter a valid quantity")
	}
}
