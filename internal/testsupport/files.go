package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleDataset is a small valid dataset matching the documented scenario:
// one movie with two genres and two cast members.
const SampleDataset = `{"top_movies":[{"title":"A","year":1999,"rating":8.0,"synopsis":"s","director":"D","genre":["Drama","Crime"],"cast":["X","Y"]}]}`

// WriteDataset writes a JSON dataset body to path, creating parent
// directories as needed.
func WriteDataset(t testing.TB, path, body string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
