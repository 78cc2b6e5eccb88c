package migration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// FilePair is a generated up/down migration file pair.
type FilePair struct {
	Version  uint
	Base     string
	UpPath   string
	DownPath string
}

// CreateMigration writes a new up/down pair into migrationsDir. Versions
// are sequential six-digit numbers (000001, 000002, ...) so generated
// files sort after the checked-in ones.
func CreateMigration(migrationsDir, name string) (*FilePair, error) {
	slug := slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}

	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create migrations dir: %w", err)
	}

	version, err := nextVersion(migrationsDir)
	if err != nil {
		return nil, err
	}

	base := fmt.Sprintf("%06d_%s", version, slug)
	pair := &FilePair{
		Version:  version,
		Base:     base,
		UpPath:   filepath.Join(migrationsDir, base+".up.sql"),
		DownPath: filepath.Join(migrationsDir, base+".down.sql"),
	}

	up := fmt.Sprintf("-- %s\n\n-- forward statements\n", base)
	if err := os.WriteFile(pair.UpPath, []byte(up), 0o644); err != nil {
		return nil, fmt.Errorf("write up migration: %w", err)
	}

	down := fmt.Sprintf("-- %s (rollback)\n\n-- rollback statements\n", base)
	if err := os.WriteFile(pair.DownPath, []byte(down), 0o644); err != nil {
		_ = os.Remove(pair.UpPath)
		return nil, fmt.Errorf("write down migration: %w", err)
	}

	return pair, nil
}

// ListMigrations returns the base names of all up migrations in
// migrationsDir, sorted. A missing directory is treated as empty.
func ListMigrations(migrationsDir string) ([]string, error) {
	entries, err := os.ReadDir(migrationsDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".up.sql"))
	}
	sort.Strings(names)
	return names, nil
}

// nextVersion scans existing migrations and returns max version + 1.
func nextVersion(migrationsDir string) (uint, error) {
	names, err := ListMigrations(migrationsDir)
	if err != nil {
		return 0, err
	}

	var max uint64
	for _, n := range names {
		prefix, _, ok := strings.Cut(n, "_")
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(prefix, 10, 32)
		if err != nil {
			continue
		}
		if v > max {
			max = v
		}
	}
	return uint(max) + 1, nil
}

// slugify lowercases a migration name and collapses separators into
// single underscores, dropping everything else.
func slugify(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			pendingSep = true
		}
	}
	return b.String()
}
