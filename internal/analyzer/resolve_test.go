package analyzer

import (
	"strings"
	"testing"

	"github.com/hindavishewale/realestate-analysis-chatbot/internal/dataset"
	"github.com/hindavishewale/realestate-analysis-chatbot/internal/model"
)

func fixtureDataset(areas ...string) *dataset.Dataset {
	var records []model.Record
	for _, area := range areas {
		records = append(records, model.Record{Year: 2023, Area: area, Price: 100, Demand: 50, Size: 1000})
	}
	return dataset.New(records, model.SourceDataset)
}

func TestResolveExactCaseInsensitive(t *testing.T) {
	ds := fixtureDataset("Wakad", "Aundh")

	for _, token := range []string{"Wakad", "wakad", "WAKAD", " wakad "} {
		got, err := Resolve(token, ds)
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error: %v", token, err)
			continue
		}
		if got != "Wakad" {
			t.Errorf("Resolve(%q) = %q, want Wakad", token, got)
		}
	}
}

func TestResolveSubstring(t *testing.T) {
	ds := fixtureDataset("Hinjewadi Phase 1", "Aundh")

	got, err := Resolve("hinjewadi", ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hinjewadi Phase 1" {
		t.Errorf("got %q, want Hinjewadi Phase 1", got)
	}

	// Token longer than the canonical name also matches.
	got, err = Resolve("aundh area", ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Aundh" {
		t.Errorf("got %q, want Aundh", got)
	}
}

func TestResolveShortestWins(t *testing.T) {
	// Both contain the token; the shorter canonical name is more specific.
	ds := fixtureDataset("Hinjewadi Phase 1", "Hinjewadi")

	got, err := Resolve("hinje", ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hinjewadi" {
		t.Errorf("got %q, want Hinjewadi", got)
	}
}

func TestResolveTieBreaksOnDatasetOrder(t *testing.T) {
	// Equal-length candidates: first-encountered dataset order decides.
	ds := fixtureDataset("Alpha One", "Alpha Two")

	got, err := Resolve("alpha", ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Alpha One" {
		t.Errorf("got %q, want Alpha One", got)
	}
}

func TestResolveUnknownArea(t *testing.T) {
	ds := fixtureDataset("Wakad")

	_, err := Resolve("Nowhere", ds)
	if err == nil {
		t.Fatal("expected error for unknown area")
	}
	if !strings.Contains(err.Error(), "Nowhere") {
		t.Errorf("error %q should mention the token", err)
	}
}

func TestResolveEmptyToken(t *testing.T) {
	ds := fixtureDataset("Wakad")
	if _, err := Resolve("  ", ds); err == nil {
		t.Fatal("expected error for empty token")
	}
}
