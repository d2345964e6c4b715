package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Book Club", "book-club"},
		{"book club", "book-club"},
		{"My Group!!", "my-group"},
		{"my group", "my-group"},
		{"  Trimmed  ", "trimmed"},
		{"símple", "s-mple"},
		{"a--b", "a-b"},
		{"--edges--", "edges"},
		{"MiXeD CaSe 123", "mixed-case-123"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Make(tt.input)
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{"Book Club", "My Group!!", "already-a-slug"}
	for _, in := range inputs {
		once := Make(in)
		twice := Make(once)
		if once != twice {
			t.Errorf("Make not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestMake_CollidingNames(t *testing.T) {
	// Names that normalize to the same slug must produce identical
	// output, so the storage-layer uniqueness check treats them as the
	// same group name.
	if Make("My Group!!") != Make("my group") {
		t.Errorf("expected %q and %q to collide", "My Group!!", "my group")
	}
}
