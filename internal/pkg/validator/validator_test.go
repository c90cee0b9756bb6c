package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-15"); !ok {
		t.Error("IsValidDate(\"2024-03-15\") = false, want true")
	}
	for _, input := range []string{"15-03-2024", "2024/03/15", "not-a-date", ""} {
		if _, ok := IsValidDate(input); ok {
			t.Errorf("IsValidDate(%q) = true, want false", input)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"super_admin", "app_admin", "employee"}
	if !IsInSlice("app_admin", slice) {
		t.Error("IsInSlice(\"app_admin\") = false, want true")
	}
	if IsInSlice("owner", slice) {
		t.Error("IsInSlice(\"owner\") = true, want false")
	}
	if IsInSlice("", slice) {
		t.Error("IsInSlice(\"\") = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email format"},
	}

	if got := errs.Error(); got != "name: name is required; email: invalid email format" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if m["name"] != "name is required" || m["email"] != "invalid email format" {
		t.Errorf("ToMap() = %v", m)
	}
}
