package domain

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  A@B.com ", "a@b.com"},
		{"a@b.com", "a@b.com"},
		{"Test@Example.Com", "test@example.com"},
		{"\talice@example.com\n", "alice@example.com"},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ana maria", "Ana Maria"},
		{"  john SMITH  ", "John Smith"},
		// Interior whitespace runs are preserved, not collapsed.
		{"john   SMITH", "John   Smith"},
		{"ALICE", "Alice"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDisplayName(tc.in); got != tc.want {
			t.Errorf("NormalizeDisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDisplayNameIdempotent(t *testing.T) {
	inputs := []string{"ana maria", "john   SMITH", "  bob  the   builder "}
	for _, in := range inputs {
		once := NormalizeDisplayName(in)
		twice := NormalizeDisplayName(once)
		if once != twice {
			t.Errorf("normalization not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestPropertyOwnedBy(t *testing.T) {
	p := &Property{OwnerID: "alice"}
	if !p.OwnedBy("alice") {
		t.Fatalf("expected owner match")
	}
	if p.OwnedBy("bob") {
		t.Fatalf("expected owner mismatch")
	}
	if (&Property{}).OwnedBy("") {
		t.Fatalf("empty subject must never own anything")
	}
}
