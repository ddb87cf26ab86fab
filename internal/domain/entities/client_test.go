package entities

import "testing"

func TestClient_DisplayName(t *testing.T) {
	t.Run("name wins", func(t *testing.T) {
		c := Client{FirstName: "Ann", LastName: "Lee", Company: "Acme"}
		if got := c.DisplayName(); got != "Ann Lee" {
			t.Fatalf("expected Ann Lee, got %q", got)
		}
	})

	t.Run("company fallback", func(t *testing.T) {
		c := Client{Company: "Acme"}
		if got := c.DisplayName(); got != "Acme" {
			t.Fatalf("expected Acme, got %q", got)
		}
	})

	t.Run("first name only", func(t *testing.T) {
		c := Client{FirstName: "Ann"}
		if got := c.DisplayName(); got != "Ann" {
			t.Fatalf("expected Ann, got %q", got)
		}
	})
}

func TestClient_MatchesQuery(t *testing.T) {
	c := Client{FirstName: "Ann", LastName: "Lee", Company: "Acme"}

	t.Run("matches company fragment", func(t *testing.T) {
		if !c.MatchesQuery("acm") {
			t.Fatalf("expected match on acm")
		}
	})

	t.Run("matches name fragment case-insensitively", func(t *testing.T) {
		if !c.MatchesQuery("LEE") {
			t.Fatalf("expected match on LEE")
		}
	})

	t.Run("no match", func(t *testing.T) {
		if c.MatchesQuery("zzz") {
			t.Fatalf("expected no match on zzz")
		}
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		if !c.MatchesQuery("   ") {
			t.Fatalf("expected blank query to match")
		}
	})
}

func TestSplitQueryName(t *testing.T) {
	t.Run("single token", func(t *testing.T) {
		first, last := SplitQueryName("Acme")
		if first != "Acme" || last != "" {
			t.Fatalf("got %q %q", first, last)
		}
	})

	t.Run("two tokens", func(t *testing.T) {
		first, last := SplitQueryName("Ann Lee")
		if first != "Ann" || last != "Lee" {
			t.Fatalf("got %q %q", first, last)
		}
	})

	t.Run("extra tokens join the last name", func(t *testing.T) {
		first, last := SplitQueryName("  Ann  van  Lee ")
		if first != "Ann" || last != "van Lee" {
			t.Fatalf("got %q %q", first, last)
		}
	})

	t.Run("empty", func(t *testing.T) {
		first, last := SplitQueryName("   ")
		if first != "" || last != "" {
			t.Fatalf("got %q %q", first, last)
		}
	})
}
