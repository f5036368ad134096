package domain

import (
	"strings"
	"testing"
)

func TestEmployeeEqual(t *testing.T) {
	a := Employee{ID: 1, FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com"}
	b := a

	if !a.Equal(b) {
		t.Fatalf("identical employees must be equal")
	}

	b.Email = "other@example.com"
	if a.Equal(b) {
		t.Fatalf("employees differing in one field must not be equal")
	}
}

func TestEmployeeString(t *testing.T) {
	e := Employee{ID: 7, FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh@example.com"}

	s := e.String()
	for _, want := range []string{"7", "Ramesh", "Fadatare", "ramesh@example.com"} {
		if !strings.Contains(s, want) {
			t.Fatalf("String() = %q, missing %q", s, want)
		}
	}
}
