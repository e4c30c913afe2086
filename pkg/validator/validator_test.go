package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/onyxtech/onyx-invoice/pkg/validator"
)

type companyReq struct {
	Name    string `json:"name"    validate:"required,min=1,max=10"`
	TaxID   string `json:"idCode"  validate:"omitempty,numeric"`
	Address string `json:"address" validate:"max=20"`
}

func TestValidate_valid(t *testing.T) {
	s := companyReq{Name: "TOYOTA", TaxID: "404567890"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := companyReq{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    companyReq
		field string
		want  string
	}{
		{"required", companyReq{}, "name", "This field is required"},
		{"max", companyReq{Name: "12345678901"}, "name", "Maximum length is 10"},
		{"numeric", companyReq{Name: "ok", TaxID: "40-45"}, "idCode", "Must be a numeric value"},
		{"json name used", companyReq{Name: "ok", Address: strings.Repeat("a", 21)}, "address", "Maximum length is 20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.in))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type headerReq struct {
	Field string `json:"field" validate:"required,oneof=invoiceNumber date currency"`
	Value string `json:"value"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"field":"currency","value":"GEL"}`
	r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[headerReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Value != "GEL" {
		t.Errorf("unexpected Value: %q", req.Value)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[headerReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"value":"x"}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[headerReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing field")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_oneOf(t *testing.T) {
	r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"field":"notes","value":"x"}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[headerReq](w, r)
	if ok {
		t.Fatal("expected ok=false for unknown field")
	}
	if !strings.Contains(w.Body.String(), "Must be one of: invoiceNumber, date, currency") {
		t.Errorf("expected oneof message in body, got: %s", w.Body.String())
	}
}
