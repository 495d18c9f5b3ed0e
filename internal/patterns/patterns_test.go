package patterns_test

import (
	"strings"
	"testing"

	"curator/internal/patterns"
)

func TestTemplatesExistForEveryDomainCategoryPair(t *testing.T) {
	for _, domain := range patterns.Domains() {
		for _, category := range patterns.Categories() {
			list := patterns.Templates(domain, category)
			if len(list) == 0 {
				t.Fatalf("no templates for %s/%s", domain, category)
			}
			for _, template := range list {
				if !strings.Contains(template, "{name}") {
					t.Fatalf("template %q missing placeholder", template)
				}
			}
		}
	}
}

func TestTemplatesReturnsCopy(t *testing.T) {
	first := patterns.Templates(patterns.DomainBoard, patterns.CategoryHowToPlay)
	first[0] = "mutated"
	second := patterns.Templates(patterns.DomainBoard, patterns.CategoryHowToPlay)
	if second[0] == "mutated" {
		t.Fatal("Templates must not expose the library for mutation")
	}
}

func TestExpandSubstitutesAndAppendsClauses(t *testing.T) {
	query := patterns.Expand(`"{name}" "how to play"`, "Catan",
		[]string{"unboxing only", "reaction video"},
		[]string{"Watch It Played", "Shut Up & Sit Down"})

	if !strings.HasPrefix(query, `"Catan" "how to play"`) {
		t.Fatalf("expected substituted template prefix, got %q", query)
	}
	if !strings.Contains(query, `-"reaction video"`) || !strings.Contains(query, `-"unboxing only"`) {
		t.Fatalf("expected exclusion clauses, got %q", query)
	}
	if !strings.Contains(query, `(channel:"Shut Up & Sit Down" | channel:"Watch It Played")`) {
		t.Fatalf("expected trusted channel OR-group, got %q", query)
	}
}

func TestExpandWithoutRefinements(t *testing.T) {
	query := patterns.Expand(`"{name}" review`, "Gloomhaven", nil, nil)
	if query != `"Gloomhaven" review` {
		t.Fatalf("unexpected query %q", query)
	}
}

func TestExpandIsDeterministic(t *testing.T) {
	a := patterns.Expand(`"{name}"`, "X", []string{"b", "a"}, []string{"d", "c"})
	b := patterns.Expand(`"{name}"`, "X", []string{"a", "b"}, []string{"c", "d"})
	if a != b {
		t.Fatalf("expansion order must be deterministic: %q vs %q", a, b)
	}
}

func TestParseDomainAndCategory(t *testing.T) {
	if domain, err := patterns.ParseDomain(" Board "); err != nil || domain != patterns.DomainBoard {
		t.Fatalf("ParseDomain: %v %v", domain, err)
	}
	if _, err := patterns.ParseDomain("card"); err == nil {
		t.Fatal("expected error for unknown domain")
	}
	if category, err := patterns.ParseCategory("tutorial"); err != nil || category != patterns.CategoryHowToPlay {
		t.Fatalf("ParseCategory: %v %v", category, err)
	}
	if _, err := patterns.ParseCategory("speedrun"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
