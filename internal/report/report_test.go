package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meeting.docx")

	notes := Notes{
		Title:       "Notes from: meeting.wav",
		Transcript:  "Mike will fix the login bug by Friday.",
		Summary:     "Mike owns the login bug fix, due Friday.",
		ActionItems: "- Mike: fix the login bug by Friday\n- Everyone: submit timesheets",
	}

	if err := Write(notes, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestWriteSkipsEmptySections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.docx")

	notes := Notes{
		Title:      "Notes from: short.wav",
		Transcript: "Just a transcript.",
	}

	if err := Write(notes, path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}
