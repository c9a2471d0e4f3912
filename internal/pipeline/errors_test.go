package pipeline

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("file vanished")
	err := Wrap(ErrLoad, "load", "read dataset", "", base)

	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad classification, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := Wrap(nil, "export", "", "constraint failed", nil)
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected storage fallback, got %v", err)
	}
}

func TestFailedStage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Wrap(ErrLoad, "load", "", "", nil), "load"},
		{Wrap(ErrVisualize, "visualize", "", "", nil), "visualize"},
		{Wrap(ErrTableBuild, "build", "", "", nil), "build"},
		{Wrap(ErrStorage, "export", "", "", nil), "export"},
		{errors.New("unrelated"), ""},
	}
	for _, tc := range cases {
		if got := FailedStage(tc.err); got != tc.want {
			t.Fatalf("FailedStage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
