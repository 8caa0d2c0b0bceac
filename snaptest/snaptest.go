/*
Package snaptest compares snapshots with golden files in go tests.

Snapshots are stored in the package's testdata directory, one file per name:

   testdata/snapshots/<name>.snap

A missing golden file is created from the current output. Run tests with
flag -cssnap.update to rewrite all golden files of a package:

   go test ./... -args -cssnap.update

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package snaptest

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/cssnap"
)

var update = flag.Bool("cssnap.update", false, "rewrite snapshot golden files")

// Dir is the directory golden files are kept in, relative to the package
// under test.
var Dir = filepath.Join("testdata", "snapshots")

// Match compares got with the golden file for name and fails t if they differ.
func Match(t testing.TB, name, got string) {
	t.Helper()
	path, err := goldenPath(name)
	if err != nil {
		t.Fatal(err)
	}
	if *update {
		if err := write(path, got); err != nil {
			t.Fatal(err)
		}
		t.Logf("updated snapshot %s", path)
		return
	}
	want, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := write(path, got); err != nil {
			t.Fatal(err)
		}
		t.Logf("written new snapshot %s", path)
		return
	}
	if err != nil {
		t.Fatalf("cannot read snapshot: %v", err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("snapshot %q does not match (-want +got):\n%s", name, diff)
	}
}

// Snapshot renders v with serializer s and matches the result against the
// golden file for name. A nil serializer means cssnap.Default.
func Snapshot(t testing.TB, name string, s *cssnap.Serializer, v any) {
	t.Helper()
	if s == nil {
		s = cssnap.Default
	}
	Match(t, name, s.Snapshot(v))
}

func goldenPath(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid snapshot name %q", name)
	}
	return filepath.Join(Dir, name+".snap"), nil
}

func write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create snapshot directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}
