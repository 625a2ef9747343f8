package versioning

import (
	"testing"

	"insurance_portal/internal/domain/entities"
)

func row(templateID string, major, minor int) entities.BenefitTemplate {
	t := entities.BenefitTemplate{TemplateID: templateID}
	t.SetVersion(major, minor)
	return t
}

func TestNext(t *testing.T) {
	cases := []struct {
		name         string
		major, minor int
		bump         entities.VersionBump
		wantMajor    int
		wantMinor    int
	}{
		{name: "minor", major: 1, minor: 0, bump: entities.VersionBumpMinor, wantMajor: 1, wantMinor: 1},
		{name: "minor past nine", major: 1, minor: 9, bump: entities.VersionBumpMinor, wantMajor: 1, wantMinor: 10},
		{name: "major resets minor", major: 1, minor: 4, bump: entities.VersionBumpMajor, wantMajor: 2, wantMinor: 0},
		{name: "empty bump is minor", major: 3, minor: 2, bump: "", wantMajor: 3, wantMinor: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			major, minor := Next(tc.major, tc.minor, tc.bump)
			if major != tc.wantMajor || minor != tc.wantMinor {
				t.Fatalf("expected %d.%d got %d.%d", tc.wantMajor, tc.wantMinor, major, minor)
			}
			prev := row("x", tc.major, tc.minor)
			next := row("x", major, minor)
			if !Less(prev, next) {
				t.Fatalf("next version must be strictly greater")
			}
		})
	}
}

func TestLatestPerTemplate(t *testing.T) {
	rows := []entities.BenefitTemplate{
		row("a", 1, 0),
		row("b", 1, 0),
		row("a", 1, 10),
		row("a", 1, 2),
		row("b", 2, 0),
		row("c", 1, 0),
	}

	got := LatestPerTemplate(rows)
	if len(got) != 3 {
		t.Fatalf("expected one row per template id, got %d", len(got))
	}
	want := map[string]string{"a": "1.10", "b": "2.0", "c": "1.0"}
	for i, id := range []string{"a", "b", "c"} {
		if got[i].TemplateID != id {
			t.Fatalf("expected first-seen order, got %s at %d", got[i].TemplateID, i)
		}
		if got[i].Version != want[id] {
			t.Fatalf("template %s: expected %s got %s", id, want[id], got[i].Version)
		}
	}
}

func TestNewestFirst(t *testing.T) {
	rows := []entities.BenefitTemplate{row("a", 1, 0), row("a", 2, 0), row("a", 1, 1)}
	NewestFirst(rows)
	if rows[0].Version != "2.0" || rows[1].Version != "1.1" || rows[2].Version != "1.0" {
		t.Fatalf("unexpected order %s %s %s", rows[0].Version, rows[1].Version, rows[2].Version)
	}
}

func TestHighest(t *testing.T) {
	current := row("a", 1, 0)

	if got := Highest(current, nil); got.Version != "1.0" {
		t.Fatalf("expected current without siblings, got %s", got.Version)
	}
	got := Highest(current, []entities.BenefitTemplate{row("a", 1, 0), row("a", 1, 3), row("a", 1, 1)})
	if got.Version != "1.3" {
		t.Fatalf("expected 1.3, got %s", got.Version)
	}
}
