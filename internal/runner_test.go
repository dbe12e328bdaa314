package internal

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestRun_SearchMode(t *testing.T) {
	fp := writeFile(t, "poem.txt", []byte("Who are you?\nI'm nobody!\nAre you nobody, too?\n"))

	var out bytes.Buffer
	err := Run(context.Background(), Config{FilePath: fp, Pattern: "nobody", LineNumber: true}, &out)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := "2 : I'm nobody!\n3 : Are you nobody, too?\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestRun_CountMode(t *testing.T) {
	fp := writeFile(t, "poem.txt", []byte("Who are you?\nI'm nobody!\nAre you nobody, too?\n"))

	var out bytes.Buffer
	cfg := Config{FilePath: fp, Pattern: "ARE", IgnoreCase: true, Count: true, LineNumber: true}
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := "There is(are) 2 line(s) in the file that match the pattern.\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestRun_NoMatchesPrintsNothing(t *testing.T) {
	fp := writeFile(t, "poem.txt", []byte("a\nb\n"))
	var out bytes.Buffer
	if err := Run(context.Background(), Config{FilePath: fp, Pattern: "zzz"}, &out); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("want no output, got %q", out.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{FilePath: filepath.Join(t.TempDir(), "nope"), Pattern: "a"}, &out)
	var rerr *FileReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("want *FileReadError, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing must be printed on read failure, got %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestRun_WriteError(t *testing.T) {
	fp := writeFile(t, "poem.txt", []byte("a\n"))
	if err := Run(context.Background(), Config{FilePath: fp, Pattern: "a"}, failingWriter{}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(0); got != "There is(are) 0 line(s) in the file that match the pattern." {
		t.Fatalf("unexpected: %q", got)
	}
}
