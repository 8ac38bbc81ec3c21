package firstrun

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/auditworks/launchpad/internal/logging"
	"github.com/klauspost/compress/zstd"
)

// ExtractSiteArchive unpacks a zstd-compressed tar archive of runtime site
// assets into destDir. Returns false with a nil error when the archive does
// not exist, since deployments may ship with the assets pre-extracted.
//
// Extraction is safe to repeat: existing files are overwritten, so a run
// interrupted mid-extraction is simply redone when the setup gate retries.
// Entry paths are confined to destDir; an archive entry that would escape it
// aborts the extraction.
func ExtractSiteArchive(archivePath, destDir string) (bool, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("No site archive at %s, skipping extraction", archivePath)
			return false, nil
		}
		return false, fmt.Errorf("failed to open site archive %s: %w", archivePath, err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return false, fmt.Errorf("failed to read site archive %s: %w", archivePath, err)
	}
	defer zr.Close()

	logging.Info("Extracting site archive %s", archivePath)

	tr := tar.NewReader(zr)
	entries := 0
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, fmt.Errorf("corrupt site archive %s: %w", archivePath, err)
		}

		target, err := confinedPath(destDir, hdr.Name)
		if err != nil {
			return false, err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return false, fmt.Errorf("failed to create directory %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := extractFile(tr, target, hdr.FileInfo().Mode()); err != nil {
				return false, err
			}
			entries++
		default:
			// Symlinks and specials are not part of the runtime layout.
			logging.Debug("Skipping archive entry %s (type %c)", hdr.Name, hdr.Typeflag)
		}
	}

	logging.Success("Extracted %d files from site archive", entries)
	return true, nil
}

// confinedPath joins an archive entry name to destDir and rejects entries
// that would land outside it.
func confinedPath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("site archive entry %q escapes extraction directory", name)
	}
	return target, nil
}

// extractFile writes one regular file from the archive, creating parent
// directories as needed and overwriting any existing file.
func extractFile(r io.Reader, target string, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", target, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %s: %w", target, err)
	}
	return f.Close()
}
