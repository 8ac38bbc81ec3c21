package firstrun

import (
	"archive/tar"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

// writeSiteArchive builds a zstd-compressed tar archive from the given
// name->content map. Entry order is not significant for these assertions.
func writeSiteArchive(t *testing.T, path string, files map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatalf("failed to create zstd writer: %v", err)
	}
	tw := tar.NewWriter(zw)

	for name, content := range files {
		hdr := &tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("failed to write header for %s: %v", name, err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write content for %s: %v", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("failed to close tar writer: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zstd writer: %v", err)
	}
}

// TestExtractSiteArchive verifies extraction of a valid archive into the
// destination directory.
func TestExtractSiteArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "site.tar.zst")
	dest := filepath.Join(dir, "runtime")
	if err := os.MkdirAll(dest, 0755); err != nil {
		t.Fatalf("failed to create dest dir: %v", err)
	}

	writeSiteArchive(t, archive, map[string]string{
		"site-packages/pkg/__init__.py": "# pkg\n",
		"site.cfg":                      "paths=relative\n",
	})

	extracted, err := ExtractSiteArchive(archive, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !extracted {
		t.Fatal("expected extraction to be reported")
	}

	content, err := os.ReadFile(filepath.Join(dest, "site-packages", "pkg", "__init__.py"))
	if err != nil {
		t.Fatalf("extracted file missing: %v", err)
	}
	if string(content) != "# pkg\n" {
		t.Errorf("unexpected extracted content: %q", string(content))
	}
}

// TestExtractSiteArchiveMissing verifies a missing archive is a no-op, not an
// error, since assets may ship pre-extracted.
func TestExtractSiteArchiveMissing(t *testing.T) {
	dir := t.TempDir()

	extracted, err := ExtractSiteArchive(filepath.Join(dir, "absent.tar.zst"), dir)
	if err != nil {
		t.Fatalf("unexpected error for missing archive: %v", err)
	}
	if extracted {
		t.Error("expected no extraction for missing archive")
	}
}

// TestExtractSiteArchiveRepeatable verifies re-extraction overwrites files,
// supporting the retry-on-next-run setup semantics.
func TestExtractSiteArchiveRepeatable(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "site.tar.zst")
	dest := filepath.Join(dir, "runtime")
	if err := os.MkdirAll(dest, 0755); err != nil {
		t.Fatalf("failed to create dest dir: %v", err)
	}

	writeSiteArchive(t, archive, map[string]string{"site.cfg": "v1\n"})
	if _, err := ExtractSiteArchive(archive, dest); err != nil {
		t.Fatalf("first extraction failed: %v", err)
	}

	writeSiteArchive(t, archive, map[string]string{"site.cfg": "v2\n"})
	if _, err := ExtractSiteArchive(archive, dest); err != nil {
		t.Fatalf("second extraction failed: %v", err)
	}

	content, _ := os.ReadFile(filepath.Join(dest, "site.cfg"))
	if string(content) != "v2\n" {
		t.Errorf("expected overwritten content v2, got %q", string(content))
	}
}

// TestExtractSiteArchiveEscapingEntry verifies entries escaping the
// destination directory abort the extraction.
func TestExtractSiteArchiveEscapingEntry(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "site.tar.zst")
	dest := filepath.Join(dir, "runtime")
	if err := os.MkdirAll(dest, 0755); err != nil {
		t.Fatalf("failed to create dest dir: %v", err)
	}

	writeSiteArchive(t, archive, map[string]string{"../escape.txt": "nope\n"})

	if _, err := ExtractSiteArchive(archive, dest); err == nil {
		t.Fatal("expected error for escaping archive entry, got nil")
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err == nil {
		t.Error("escaping file was written outside the destination directory")
	}
}
