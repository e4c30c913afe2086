package models

import (
	"errors"
	"testing"
	"time"

	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewInvoiceState(t *testing.T) {
	now := time.Date(2025, 3, 14, 17, 45, 0, 0, time.UTC)

	t.Run("initial draft", func(t *testing.T) {
		s := NewInvoiceState(now, nil)
		if !s.Date.Equal(date(2025, 3, 14)) {
			t.Fatalf("expected date truncated to 2025-03-14, got %v", s.Date)
		}
		if s.Currency != USD {
			t.Fatalf("expected USD, got %q", s.Currency)
		}
		if s.UnitPriceExclTax != "0" {
			t.Fatalf("expected unit price %q, got %q", "0", s.UnitPriceExclTax)
		}
		if len(s.Items) != 1 || s.Items[0].ID == "" || s.Items[0].Description != "" {
			t.Fatalf("expected one blank item with an id, got %+v", s.Items)
		}
		if s.SelectedCompanyID != "" {
			t.Fatalf("expected no selection with an empty directory, got %q", s.SelectedCompanyID)
		}
	})

	t.Run("selects first company", func(t *testing.T) {
		s := NewInvoiceState(now, []CompanyRecord{{ID: "a"}, {ID: "b"}})
		if s.SelectedCompanyID != "a" {
			t.Fatalf("expected selection %q, got %q", "a", s.SelectedCompanyID)
		}
	})
}

func TestDueDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{"same month", date(2025, 3, 1), date(2025, 3, 8)},
		{"month boundary", date(2025, 1, 28), date(2025, 2, 4)},
		{"year boundary", date(2024, 12, 28), date(2025, 1, 4)},
		{"leap day", date(2024, 2, 25), date(2024, 3, 3)},
		{"non-leap february", date(2025, 2, 25), date(2025, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := InvoiceState{}.WithDate(tt.date)
			if got := s.DueDate(); !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSetHeaderField(t *testing.T) {
	base := NewInvoiceState(date(2025, 1, 1), nil)

	tests := []struct {
		name    string
		field   HeaderField
		value   string
		check   func(InvoiceState) bool
		wantErr error
	}{
		{"invoice number", FieldInvoiceNumber, "INV-7", func(s InvoiceState) bool { return s.InvoiceNumber == "INV-7" }, nil},
		{"date", FieldDate, "2024-12-28", func(s InvoiceState) bool { return s.Date.Equal(date(2024, 12, 28)) }, nil},
		{"currency lower case", FieldCurrency, "gel", func(s InvoiceState) bool { return s.Currency == GEL }, nil},
		{"selection", FieldSelectedCompanyID, "c-1", func(s InvoiceState) bool { return s.SelectedCompanyID == "c-1" }, nil},
		{"selection cleared", FieldSelectedCompanyID, "", func(s InvoiceState) bool { return s.SelectedCompanyID == "" }, nil},
		{"bad date", FieldDate, "28/12/2024", nil, invoicedomain.ErrInvalidHeaderValue},
		{"bad currency", FieldCurrency, "EUR", nil, invoicedomain.ErrUnknownCurrency},
		{"unknown field", HeaderField("dueDate"), "2025-01-01", nil, invoicedomain.ErrUnknownHeaderField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := base.SetHeaderField(tt.field, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(got) {
				t.Fatalf("field %q not applied: %+v", tt.field, got)
			}
		})
	}
}

func TestSetUnitPrice(t *testing.T) {
	s, ok := InvoiceState{}.SetUnitPrice("12")
	if !ok {
		t.Fatal("expected 12 to be accepted")
	}

	tests := []struct {
		text     string
		accepted bool
		want     UnitPriceText
	}{
		{"12.5x", false, "12"},
		{"12.5", true, "12.5"},
		{"", true, ""},
		{"12.", true, "12."},
		{".5", true, ".5"},
		{"1.2.3", false, "12"},
		{"-1", false, "12"},
		{"1e3", false, "12"},
		{" 1", false, "12"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, accepted := s.SetUnitPrice(tt.text)
			if accepted != tt.accepted {
				t.Fatalf("accepted: expected %v, got %v", tt.accepted, accepted)
			}
			if got.UnitPriceExclTax != tt.want {
				t.Fatalf("expected stored %q, got %q", tt.want, got.UnitPriceExclTax)
			}
		})
	}
}

func TestItems(t *testing.T) {
	t.Run("add then remove returns to empty", func(t *testing.T) {
		empty := InvoiceState{}
		one := empty.AddItem()
		if len(one.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(one.Items))
		}
		back := one.RemoveItem(one.Items[0].ID)
		if len(back.Items) != 0 {
			t.Fatalf("expected 0 items, got %d", len(back.Items))
		}
	})

	t.Run("fresh ids", func(t *testing.T) {
		s := InvoiceState{}.AddItem().AddItem()
		if s.Items[0].ID == s.Items[1].ID {
			t.Fatal("expected distinct item ids")
		}
	})

	t.Run("update description", func(t *testing.T) {
		s := InvoiceState{}.AddItem().AddItem()
		id := s.Items[1].ID
		got := s.UpdateItemDescription(id, "Consulting")
		if got.Items[1].Description != "Consulting" || got.Items[0].Description != "" {
			t.Fatalf("unexpected items: %+v", got.Items)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := InvoiceState{}.AddItem()
		if got := s.UpdateItemDescription("missing", "x"); got.Items[0].Description != "" {
			t.Fatal("update with unknown id must not change items")
		}
		if got := s.RemoveItem("missing"); len(got.Items) != 1 {
			t.Fatal("remove with unknown id must not change items")
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		s := InvoiceState{}.AddItem().AddItem().AddItem()
		first, third := s.Items[0].ID, s.Items[2].ID
		got := s.RemoveItem(s.Items[1].ID)
		if len(got.Items) != 2 || got.Items[0].ID != first || got.Items[1].ID != third {
			t.Fatalf("unexpected order: %+v", got.Items)
		}
	})
}

func TestEditsDoNotMutateReceiver(t *testing.T) {
	s := InvoiceState{InvoiceNumber: "A", UnitPriceExclTax: "5"}.AddItem().AddItem()
	snapshot := s.clone()
	id := s.Items[0].ID

	_ = s.UpdateItemDescription(id, "changed")
	_ = s.RemoveItem(id)
	_ = s.AddItem()
	_, _ = s.SetUnitPrice("9")
	_, _ = s.SetHeaderField(FieldInvoiceNumber, "B")

	if s.InvoiceNumber != snapshot.InvoiceNumber || s.UnitPriceExclTax != snapshot.UnitPriceExclTax {
		t.Fatalf("header mutated: %+v", s)
	}
	if len(s.Items) != len(snapshot.Items) {
		t.Fatalf("items length mutated: %d vs %d", len(s.Items), len(snapshot.Items))
	}
	for i := range s.Items {
		if s.Items[i] != snapshot.Items[i] {
			t.Fatalf("item %d mutated: %+v vs %+v", i, s.Items[i], snapshot.Items[i])
		}
	}
}

func TestReconcileCompanyDeletion(t *testing.T) {
	a := CompanyRecord{ID: "a", Name: "A"}
	b := CompanyRecord{ID: "b", Name: "B"}

	t.Run("selected deleted with one remaining", func(t *testing.T) {
		s := InvoiceState{SelectedCompanyID: "a"}
		got := s.ReconcileCompanyDeletion("a", []CompanyRecord{b})
		if got.SelectedCompanyID != "b" {
			t.Fatalf("expected selection b, got %q", got.SelectedCompanyID)
		}
	})

	t.Run("last company deleted", func(t *testing.T) {
		s := InvoiceState{SelectedCompanyID: "b"}
		got := s.ReconcileCompanyDeletion("b", nil)
		if got.SelectedCompanyID != "" {
			t.Fatalf("expected unset selection, got %q", got.SelectedCompanyID)
		}
	})

	t.Run("other company deleted", func(t *testing.T) {
		s := InvoiceState{SelectedCompanyID: "a"}
		got := s.ReconcileCompanyDeletion("b", []CompanyRecord{a})
		if got.SelectedCompanyID != "a" {
			t.Fatalf("expected selection a, got %q", got.SelectedCompanyID)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		s := InvoiceState{SelectedCompanyID: "a"}
		once := s.ReconcileCompanyDeletion("a", []CompanyRecord{b})
		twice := once.ReconcileCompanyDeletion("a", []CompanyRecord{b})
		if twice.SelectedCompanyID != "b" {
			t.Fatalf("expected selection b, got %q", twice.SelectedCompanyID)
		}
	})
}

func TestResolveBuyer(t *testing.T) {
	companies := []CompanyRecord{{ID: "a", Name: "A"}}

	if got, ok := (InvoiceState{SelectedCompanyID: "a"}).ResolveBuyer(companies); !ok || got.Name != "A" {
		t.Fatalf("expected A, got %+v (ok=%v)", got, ok)
	}
	if _, ok := (InvoiceState{SelectedCompanyID: "gone"}).ResolveBuyer(companies); ok {
		t.Fatal("dangling selection must not resolve")
	}
	if _, ok := (InvoiceState{}).ResolveBuyer(companies); ok {
		t.Fatal("empty selection must not resolve")
	}
}
