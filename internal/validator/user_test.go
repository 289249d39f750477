package validator

import (
	"context"
	"ctchen222/user-auth/internal/api/models"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailChecker struct {
	taken map[string]bool
	err   error
	calls int
}

func (f *fakeEmailChecker) EmailExists(_ context.Context, email string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.taken[email], nil
}

func validInput() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Password:    "Abc12345!",
		PhoneNumber: "+14155552671",
	}
}

func TestValidateUserInput_Valid(t *testing.T) {
	checker := &fakeEmailChecker{}
	errs, err := ValidateUserInput(context.Background(), validInput(), checker)

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, 1, checker.calls)
}

func TestValidateUserInput_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.RegisterRequest)
		want   string
	}{
		{"First name", func(in *models.RegisterRequest) { in.FirstName = "" }, MsgFirstNameRequired},
		{"Last name", func(in *models.RegisterRequest) { in.LastName = "" }, MsgLastNameRequired},
		{"Email", func(in *models.RegisterRequest) { in.Email = "" }, MsgEmailRequired},
		{"Password", func(in *models.RegisterRequest) { in.Password = "" }, MsgPasswordRequired},
		{"Phone number", func(in *models.RegisterRequest) { in.PhoneNumber = "" }, MsgPhoneRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			errs, err := ValidateUserInput(context.Background(), in, &fakeEmailChecker{})
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, errs)
		})
	}
}

func TestValidateUserInput_NameLength(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		want      []string
	}{
		{"Two characters is too short", "Al", []string{MsgFirstNameTooShort}},
		{"Three characters is accepted", "Ada", []string{}},
		{"Sixty-four characters is accepted", strings.Repeat("a", 64), []string{}},
		{"Sixty-five characters is too long", strings.Repeat("a", 65), []string{MsgFirstNameTooLong}},
		{"Length counts characters not bytes", "Zoë", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.FirstName = tt.firstName

			errs, err := ValidateUserInput(context.Background(), in, &fakeEmailChecker{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestValidateUserInput_ShortLastNameMessageSaysFour(t *testing.T) {
	in := validInput()
	in.LastName = "Li"

	errs, err := ValidateUserInput(context.Background(), in, &fakeEmailChecker{})
	require.NoError(t, err)
	assert.Equal(t, []string{MsgLastNameTooShort}, errs)
	assert.Contains(t, errs[0], "4 characters")
}

func TestValidateUserInput_Email(t *testing.T) {
	t.Run("Invalid format skips lookup", func(t *testing.T) {
		checker := &fakeEmailChecker{}
		in := validInput()
		in.Email = "not-an-email"

		errs, err := ValidateUserInput(context.Background(), in, checker)
		require.NoError(t, err)
		assert.Equal(t, []string{MsgEmailInvalid}, errs)
		assert.Zero(t, checker.calls)
	})

	t.Run("Taken", func(t *testing.T) {
		checker := &fakeEmailChecker{taken: map[string]bool{"ada@example.com": true}}

		errs, err := ValidateUserInput(context.Background(), validInput(), checker)
		require.NoError(t, err)
		assert.Equal(t, []string{MsgEmailTaken}, errs)
	})

	t.Run("Lookup failure is returned", func(t *testing.T) {
		boom := errors.New("db down")
		errs, err := ValidateUserInput(context.Background(), validInput(), &fakeEmailChecker{err: boom})
		require.ErrorIs(t, err, boom)
		assert.Nil(t, errs)
	})
}

func TestValidateUserInput_Password(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"Abc12345!", false},
		{"abcdefgh", true},
		{"Abc1234!", false},
		{"Abc123!", true},
		{"ABC12345!", true},
		{"abc12345!", true},
		{"Abcdefgh!", true},
		{"Abc123456", true},
		{"Abc12345%", true},
		{"Zz9$Zz9$", false},
		{"Abc1!éé", true},
		{"Abc1\n23!", false},
		{"Abc12345!" + strings.Repeat("x", 71), false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			in := validInput()
			in.Password = tt.password

			errs, err := ValidateUserInput(context.Background(), in, &fakeEmailChecker{})
			require.NoError(t, err)
			if tt.wantErr {
				assert.Equal(t, []string{MsgPasswordWeak}, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateUserInput_Phone(t *testing.T) {
	in := validInput()
	in.PhoneNumber = "call me maybe"

	errs, err := ValidateUserInput(context.Background(), in, &fakeEmailChecker{})
	require.NoError(t, err)
	assert.Equal(t, []string{MsgPhoneInvalid}, errs)
}

func TestValidateUserInput_OrderAcrossFields(t *testing.T) {
	in := &models.RegisterRequest{
		FirstName:   "",
		LastName:    "Xy",
		Email:       "bad",
		Password:    "abcdefgh",
		PhoneNumber: "12",
	}

	errs, err := ValidateUserInput(context.Background(), in, &fakeEmailChecker{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		MsgFirstNameRequired,
		MsgLastNameTooShort,
		MsgEmailInvalid,
		MsgPasswordWeak,
		MsgPhoneInvalid,
	}, errs)
}
