package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadReadsCourseRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "python.json", `{
		"titre": "Formation Python Data",
		"objectifs": ["Analyser des données", "Maîtriser Python"],
		"prerequis": ["Python"],
		"public": ["tout public"],
		"lien": "https://x"
	}`)
	writeFile(t, dir, "notes.txt", "not a course")

	courses := Load(dir, zap.NewNop())
	if courses.Len() != 1 {
		t.Fatalf("expected 1 course, got %d", courses.Len())
	}

	course := courses.Items[0]
	if course.Title != "Formation Python Data" {
		t.Fatalf("unexpected title: %s", course.Title)
	}
	if len(course.Objectives) != 2 || len(course.Prerequisites) != 1 {
		t.Fatalf("unexpected fields: %+v", course)
	}
	if len(course.Programme) != 0 {
		t.Fatalf("expected missing programme to stay empty, got %v", course.Programme)
	}
}

func TestLoadToleratesScalarWhereListIsExpected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "scalar.json", `{
		"titre": "Initiation",
		"objectifs": "Découvrir le métier",
		"public": "étudiants"
	}`)

	courses := Load(dir, zap.NewNop())
	if courses.Len() != 1 {
		t.Fatalf("expected 1 course, got %d", courses.Len())
	}

	course := courses.Items[0]
	if len(course.Objectives) != 1 || course.Objectives[0] != "Découvrir le métier" {
		t.Fatalf("expected scalar objective as single-element list, got %v", course.Objectives)
	}
	if len(course.Audience) != 1 || course.Audience[0] != "étudiants" {
		t.Fatalf("expected scalar audience as single-element list, got %v", course.Audience)
	}
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"titre": `)
	writeFile(t, dir, "valid.json", `{"titre": "Valide"}`)

	courses := Load(dir, zap.NewNop())
	if courses.Len() != 1 {
		t.Fatalf("expected the valid course only, got %d", courses.Len())
	}
	if courses.Items[0].Title != "Valide" {
		t.Fatalf("unexpected course: %s", courses.Items[0].Title)
	}
}

func TestLoadMissingDirectoryYieldsEmptyCorpus(t *testing.T) {
	t.Parallel()

	courses := Load(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())
	if courses == nil {
		t.Fatalf("expected an empty corpus, got nil")
	}
	if courses.Len() != 0 {
		t.Fatalf("expected 0 courses, got %d", courses.Len())
	}
}

func TestLoadKeepsFilenameOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{"titre": "B"}`)
	writeFile(t, dir, "a.json", `{"titre": "A"}`)

	courses := Load(dir, zap.NewNop())
	if courses.Len() != 2 {
		t.Fatalf("expected 2 courses, got %d", courses.Len())
	}
	if courses.Items[0].Title != "A" || courses.Items[1].Title != "B" {
		t.Fatalf("expected filename order, got %v", courses.Titles())
	}
}
