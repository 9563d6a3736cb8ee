package catalog

import "testing"

func TestSearchText(t *testing.T) {
	t.Parallel()

	course := &Course{
		Title:         "Formation Python Data",
		Objectives:    []string{"Analyser des données", "Maîtriser Python"},
		Prerequisites: []string{"Python"},
		Programme:     []string{"Pandas"},
		Audience:      []string{"tout public"},
	}

	expected := "analyser des données maîtriser python python pandas"
	if got := course.SearchText(); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestSearchTextExcludesTitleAndAudience(t *testing.T) {
	t.Parallel()

	course := &Course{
		Title:    "Cuisine",
		Audience: []string{"gourmands"},
	}

	if got := course.SearchText(); got != "" {
		t.Fatalf("expected empty search text, got %q", got)
	}
}

func TestHeadlineText(t *testing.T) {
	t.Parallel()

	course := &Course{
		Title:         "Formation Python Data",
		Objectives:    []string{"Maîtriser Python"},
		Prerequisites: []string{"Aucun"},
		Audience:      []string{"Tout public"},
	}

	expected := "formation python data maîtriser python tout public"
	if got := course.HeadlineText(); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestEmptyCourseYieldsEmptyBlobs(t *testing.T) {
	t.Parallel()

	course := &Course{}
	if course.SearchText() != "" || course.HeadlineText() != "" {
		t.Fatalf("expected empty blobs for an empty course")
	}
}

func TestCoursesHelpers(t *testing.T) {
	t.Parallel()

	corpus := &Courses{Items: []*Course{
		{Title: "A"},
		{Title: "B"},
	}}

	if corpus.Len() != 2 {
		t.Fatalf("expected length 2, got %d", corpus.Len())
	}

	titles := corpus.Titles()
	if len(titles) != 2 || titles[0] != "A" || titles[1] != "B" {
		t.Fatalf("unexpected titles: %v", titles)
	}

	if corpus.FindByTitle("B") == nil {
		t.Fatalf("expected to find course B")
	}
	if corpus.FindByTitle("C") != nil {
		t.Fatalf("did not expect to find course C")
	}

	var nilCorpus *Courses
	if nilCorpus.Len() != 0 {
		t.Fatalf("expected nil corpus length 0")
	}
}
