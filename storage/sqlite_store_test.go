package storage

import (
	"path/filepath"
	"testing"

	"companygen/company"
)

func TestSQLiteStore_InsertDeduplicatesByISINAndName(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "companygen_test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	records := []company.Record{
		{ISIN: "US0001", Name: "Acme"},
		{ISIN: "US0002", Name: "Zeta Corp"},
	}

	inserted, err := store.InsertCompanies(records, "companies.csv")
	if err != nil {
		t.Fatalf("insert companies: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", inserted)
	}

	// Re-import of the same file plus one new record.
	again := append(records, company.Record{ISIN: "US0003", Name: "Alpha LLC"})
	inserted, err = store.InsertCompanies(again, "companies.csv")
	if err != nil {
		t.Fatalf("insert companies again: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("expected 1 inserted row on re-import, got %d", inserted)
	}

	listed, err := store.ListCompanies()
	if err != nil {
		t.Fatalf("list companies: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 stored rows, got %d", len(listed))
	}
}

func TestSQLiteStore_AllowsSameISINWithDifferentName(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "companygen_test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	records := []company.Record{
		{ISIN: "US0001", Name: "Acme"},
		{ISIN: "US0001", Name: "Acme Holdings"},
	}

	inserted, err := store.InsertCompanies(records, "companies.csv")
	if err != nil {
		t.Fatalf("insert companies: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", inserted)
	}
}

func TestSQLiteStore_DeleteAllCompanies(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "companygen_test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	_, err = store.InsertCompanies([]company.Record{
		{ISIN: "US0001", Name: "Acme"},
		{ISIN: "US0002", Name: "Zeta Corp"},
	}, "companies.csv")
	if err != nil {
		t.Fatalf("insert companies: %v", err)
	}

	deleted, err := store.DeleteAllCompanies()
	if err != nil {
		t.Fatalf("delete companies: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted rows, got %d", deleted)
	}

	listed, err := store.ListCompanies()
	if err != nil {
		t.Fatalf("list companies: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty catalog, got %d rows", len(listed))
	}
}
