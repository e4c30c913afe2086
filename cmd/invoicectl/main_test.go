package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/onyxtech/onyx-invoice/pkg/config"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

const companiesDoc = `[
    {"id": "TOYOTA", "name": "TOYOTA CAUCASUS LLC", "idCode": "236089273", "address": "Tbilisi"},
    {"id": "CIC", "name": "CIC", "idCode": "405250473", "address": "Tbilisi"}
]`

// run executes invoicectl with args against a directory file in a temp dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cfg := &config.Config{LogLevel: "error", CompaniesFile: filepath.Join(dir, "companies.json")}
	cmd := newRootCmd(cfg)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setup(t *testing.T, draft string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "companies.json"), []byte(companiesDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if draft != "" {
		if err := os.WriteFile(filepath.Join(dir, "draft.json"), []byte(draft), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRender(t *testing.T) {
	dir := setup(t, `{"invoiceNumber":"INV-9","date":"2024-03-05","selectedCompanyId":"CIC","unitPriceExclTax":"100","items":["Consulting"]}`)

	out, err := run(t, dir, "render", "--draft", filepath.Join(dir, "draft.json"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"INV-9", "Consulting", "118.00", "405250473"} {
		if !strings.Contains(out, want) {
			t.Errorf("page is missing %q", want)
		}
	}
	if strings.Contains(out, "236089273") {
		t.Error("page shows the unselected company")
	}
}

func TestRender_ToFile(t *testing.T) {
	dir := setup(t, `{}`)
	target := filepath.Join(dir, "invoice.html")

	if _, err := run(t, dir, "render", "--draft", filepath.Join(dir, "draft.json"), "-o", target); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "TOYOTA CAUCASUS LLC") {
		t.Error("empty draft must default to the first company")
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		args  []string
	}{
		{"missing draft flag", "", []string{"render"}},
		{"missing file", "", []string{"render", "--draft", "nope.json"}},
		{"bad json", `{"invoiceNumber":`, nil},
		{"bad currency", `{"currency":"EUR"}`, nil},
		{"bad date", `{"date":"05.03.2024"}`, nil},
		{"bad price", `{"unitPriceExclTax":"-1"}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setup(t, tt.draft)
			args := tt.args
			if args == nil {
				args = []string{"render", "--draft", filepath.Join(dir, "draft.json")}
			}
			if _, err := run(t, dir, args...); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestExport(t *testing.T) {
	tests := []struct {
		name     string
		draft    string
		wantFile string
	}{
		{"numbered", `{"invoiceNumber":"INV/7","unitPriceExclTax":"1250.50"}`, "Invoice_INV_7.pdf"},
		{"unnumbered", `{"items":[]}`, "Invoice_Draft.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setup(t, tt.draft)
			outDir := filepath.Join(dir, "out")

			out, err := run(t, dir, "export", "--draft", filepath.Join(dir, "draft.json"), "--out", outDir)
			if err != nil {
				t.Fatalf("export: %v", err)
			}
			want := filepath.Join(outDir, tt.wantFile)
			if strings.TrimSpace(out) != want {
				t.Errorf("expected %s, got %q", want, out)
			}
			data, err := os.ReadFile(want)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Error("output is not a PDF")
			}
		})
	}
}

func TestCompanies(t *testing.T) {
	dir := setup(t, "")

	id, err := run(t, dir, "companies", "add", "--name", "  Acme LLC ", "--id-code", "123", "--address", "Batumi")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		t.Fatal("add must print the new id")
	}

	out, err := run(t, dir, "companies", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 || !strings.HasPrefix(lines[1], "TOYOTA") || !strings.Contains(lines[3], "Acme LLC") {
		t.Fatalf("unexpected listing:\n%s", out)
	}

	if _, err := run(t, dir, "companies", "delete", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := run(t, dir, "companies", "delete", id); err == nil {
		t.Fatal("deleting twice must fail")
	}
	if _, err := run(t, dir, "companies", "add", "--name", "   "); err == nil {
		t.Fatal("blank name must be rejected")
	}
}

func TestDraftFile_State(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	companies := []models.CompanyRecord{{ID: "A"}, {ID: "B"}}
	price := "12.5"

	t.Run("defaults", func(t *testing.T) {
		s, err := (&draftFile{}).state(now, companies)
		if err != nil {
			t.Fatal(err)
		}
		if s.SelectedCompanyID != "A" || len(s.Items) != 1 || s.Currency != models.USD {
			t.Fatalf("unexpected initial state: %+v", s)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		df := &draftFile{Currency: "GEL", SelectedCompanyID: "B", UnitPriceExclTax: &price, Items: []string{"a", "b"}}
		s, err := df.state(now, companies)
		if err != nil {
			t.Fatal(err)
		}
		if s.Currency != models.GEL || s.SelectedCompanyID != "B" || string(s.UnitPriceExclTax) != price {
			t.Fatalf("header not applied: %+v", s)
		}
		if len(s.Items) != 2 || s.Items[0].Description != "a" || s.Items[1].Description != "b" {
			t.Fatalf("items not applied: %+v", s.Items)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		s, err := (&draftFile{Items: []string{}}).state(now, companies)
		if err != nil {
			t.Fatal(err)
		}
		if len(s.Items) != 0 {
			t.Fatalf("expected no items, got %d", len(s.Items))
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		bad := "1e3"
		_, err := (&draftFile{UnitPriceExclTax: &bad}).state(now, companies)
		if !errors.Is(err, errInvalidUnitPrice) {
			t.Fatalf("expected errInvalidUnitPrice, got %v", err)
		}
	})
}
