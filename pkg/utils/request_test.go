package utils

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	Title string   `json:"title"`
	Year  int      `json:"year"`
	Genre []string `json:"genre"`
}

func TestReadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"Up","year":2009,"extra":true}`))
	w := httptest.NewRecorder()

	var p payload
	if err := ReadJSON(w, r, &p); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if p.Title != "Up" || p.Year != 2009 {
		t.Errorf("decoded %+v", p)
	}
}

func TestReadJSONInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ``},
		{"syntax", `{"title":}`},
		{"truncated", `{"title":"Up"`},
		{"two values", `{"title":"Up"} {"title":"Down"}`},
		{"not an object", `["Up"]`},
		{"too large", `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var p payload
			err := ReadJSON(w, r, &p)
			if !errors.Is(err, ErrInvalidBody) {
				t.Fatalf("want ErrInvalidBody, got %v", err)
			}
		})
	}
}

func TestReadJSONTypeMismatch(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"Up","year":"2009"}`))
	w := httptest.NewRecorder()

	var p payload
	err := ReadJSON(w, r, &p)

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("want FieldErrors, got %v", err)
	}
	if len(fieldErrs) != 1 || fieldErrs[0].Field != "year" {
		t.Fatalf("got %v", fieldErrs)
	}
	if fieldErrs[0].Message != "Expected integer, received string" {
		t.Errorf("message = %q", fieldErrs[0].Message)
	}
}

func TestReadJSONTypeMismatchInArray(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"Up","genre":[1]}`))
	w := httptest.NewRecorder()

	var p payload
	err := ReadJSON(w, r, &p)

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("want FieldErrors, got %v", err)
	}
	// decode errors name the array, not the element index
	if len(fieldErrs) != 1 || fieldErrs[0].Field != "genre" {
		t.Fatalf("got %v, want one error on genre", fieldErrs)
	}
	if fieldErrs[0].Message != "Expected string, received number" {
		t.Errorf("message = %q", fieldErrs[0].Message)
	}
}
