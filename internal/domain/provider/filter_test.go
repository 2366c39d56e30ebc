package provider

import (
	"testing"

	"github.com/localskill/marketplace-api/internal/models"
)

func sampleProviders() []models.Provider {
	return []models.Provider{
		{
			ID:      1,
			Profile: models.Profile{FullName: "Maria Santos"},
			Tagline: "Master electrician",
			Bio:     "Twenty years of residential wiring.",
		},
		{
			ID:      2,
			Profile: models.Profile{FullName: "John Carpenter"},
			Tagline: "Custom furniture",
			Bio:     "Cabinets, shelving and repairs.",
		},
		{
			ID:      3,
			Profile: models.Profile{FullName: "Ana Lima"},
			Tagline: "House cleaning",
			Bio:     "Weekly and deep cleaning, pet friendly.",
		},
	}
}

func TestFilter(t *testing.T) {
	t.Run("empty query returns the input unchanged", func(t *testing.T) {
		in := sampleProviders()

		out := Filter(in, "")
		if len(out) != len(in) {
			t.Fatalf("expected %d providers, got %d", len(in), len(out))
		}

		out = Filter(in, "   ")
		if len(out) != len(in) {
			t.Fatalf("whitespace query should match everything, got %d", len(out))
		}
	})

	t.Run("matches are case-insensitive across name, tagline and bio", func(t *testing.T) {
		in := sampleProviders()

		byName := Filter(in, "MARIA")
		if len(byName) != 1 || byName[0].ID != 1 {
			t.Fatalf("name match failed: %+v", byName)
		}

		byTagline := Filter(in, "furniture")
		if len(byTagline) != 1 || byTagline[0].ID != 2 {
			t.Fatalf("tagline match failed: %+v", byTagline)
		}

		byBio := Filter(in, "pet friendly")
		if len(byBio) != 1 || byBio[0].ID != 3 {
			t.Fatalf("bio match failed: %+v", byBio)
		}
	})

	t.Run("no match yields an empty slice, not nil input", func(t *testing.T) {
		out := Filter(sampleProviders(), "plumber")
		if out == nil {
			t.Fatal("expected an empty slice")
		}
		if len(out) != 0 {
			t.Fatalf("expected no matches, got %d", len(out))
		}
	})

	t.Run("filtering twice with the same query is idempotent", func(t *testing.T) {
		once := Filter(sampleProviders(), "clean")
		twice := Filter(once, "clean")

		if len(once) != len(twice) {
			t.Fatalf("second pass changed the result: %d vs %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Fatalf("order changed at %d", i)
			}
		}
	})

	t.Run("input order is preserved", func(t *testing.T) {
		out := Filter(sampleProviders(), "a")
		for i := 1; i < len(out); i++ {
			if out[i-1].ID > out[i].ID {
				t.Fatalf("order not preserved: %+v", out)
			}
		}
	})
}
