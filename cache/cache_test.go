package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "sub", "reports.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestGetMiss(t *testing.T) {
	c := openTestCache(t)
	if _, ok := c.Get("nope"); ok {
		t.Error("Get() hit on an empty cache")
	}
}

func TestPutGet(t *testing.T) {
	c := openTestCache(t)

	want := []byte(`{"type":"text"}`)
	if err := c.Put("k1", want); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, ok := c.Get("k1")
	if !ok {
		t.Fatal("Get() missed after Put()")
	}
	if string(got) != string(want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("k1", []byte("old")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := c.Put("k1", []byte("new")); err != nil {
		t.Fatalf("Put() update failed: %v", err)
	}

	got, ok := c.Get("k1")
	if !ok {
		t.Fatal("Get() missed after update")
	}
	if string(got) != "new" {
		t.Errorf("Get() = %q, want %q", got, "new")
	}
}

func TestDelete(t *testing.T) {
	c := openTestCache(t)

	if err := c.Put("k1", []byte("x")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := c.Delete("k1"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok := c.Get("k1"); ok {
		t.Error("Get() hit after Delete()")
	}
}

func TestFileKey(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "a.pdf")
	path2 := filepath.Join(dir, "b.pdf")
	if err := os.WriteFile(path1, []byte("same content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path2, []byte("same content"), 0o644); err != nil {
		t.Fatal(err)
	}

	k1, err := FileKey(path1)
	if err != nil {
		t.Fatalf("FileKey() failed: %v", err)
	}
	k2, err := FileKey(path2)
	if err != nil {
		t.Fatalf("FileKey() failed: %v", err)
	}
	if k1 != k2 {
		t.Errorf("keys differ for identical content: %q vs %q", k1, k2)
	}

	if err := os.WriteFile(path2, []byte("different content"), 0o644); err != nil {
		t.Fatal(err)
	}
	k3, err := FileKey(path2)
	if err != nil {
		t.Fatalf("FileKey() failed: %v", err)
	}
	if k3 == k1 {
		t.Error("keys match for different content")
	}
}

func TestFileKeyMissingFile(t *testing.T) {
	if _, err := FileKey(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("FileKey() succeeded on a missing file")
	}
}
