package diffapply

import "testing"

func TestNewLineIndex_LineOffsets(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []int
	}{
		{"no trailing newline", "abc\ndef", []int{0, 4, 7}},
		{"trailing newline", "abc\ndef\n", []int{0, 4, 8}},
		{"empty", "", []int{0}},
		{"single unterminated line", "abc", []int{0, 3}},
		{"single empty line", "\n", []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewLineIndex([]byte(tt.content))
			if len(idx.lineOffsets) != len(tt.want) {
				t.Fatalf("lineOffsets = %v, want %v", idx.lineOffsets, tt.want)
			}
			for i, off := range tt.want {
				if idx.lineOffsets[i] != off {
					t.Errorf("lineOffsets[%d] = %d, want %d", i, idx.lineOffsets[i], off)
				}
			}
		})
	}
}

func TestLineIndex_LineCountAndLineAt(t *testing.T) {
	idx := NewLineIndex([]byte("func a() {\n\tfoo()\n}\n"))

	if got := idx.LineCount(); got != 3 {
		t.Fatalf("LineCount() = %d, want 3", got)
	}

	want := []string{"func a() {", "\tfoo()", "}"}
	for i, w := range want {
		if got := idx.LineAt(i); got != w {
			t.Errorf("LineAt(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestLineIndex_PositionsOf(t *testing.T) {
	idx := NewLineIndex([]byte("a\nb\na\nb\na\n"))

	positions := idx.PositionsOf("a")
	want := []int{0, 2, 4}
	if len(positions) != len(want) {
		t.Fatalf("PositionsOf(a) = %v, want %v", positions, want)
	}
	for i, w := range want {
		if positions[i] != w {
			t.Errorf("PositionsOf(a)[%d] = %d, want %d", i, positions[i], w)
		}
	}

	if got := idx.PositionsOf("missing"); got != nil {
		t.Errorf("PositionsOf(missing) = %v, want nil", got)
	}
}

func TestLineIndex_FindPotentialStarts(t *testing.T) {
	idx := NewLineIndex([]byte("x\nfoo\nbar\ny\nfoo\nbar\n"))

	starts := idx.FindPotentialStarts([]string{"foo", "bar"}, 0)
	want := []int{1, 4}
	if len(starts) != len(want) {
		t.Fatalf("FindPotentialStarts = %v, want %v", starts, want)
	}
	for i, w := range want {
		if starts[i] != w {
			t.Errorf("FindPotentialStarts[%d] = %d, want %d", i, starts[i], w)
		}
	}

	if got := idx.FindPotentialStarts([]string{"foo", "bar"}, 2); len(got) != 1 || got[0] != 4 {
		t.Errorf("FindPotentialStarts with minLine=2 = %v, want [4]", got)
	}
}

func TestTrimASCIISpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"\t\vhello\r\n", "hello"},
		{"", ""},
		{"   ", ""},
		{"no-space", "no-space"},
	}

	for _, tt := range tests {
		if got := trimASCIISpaceString(tt.in); got != tt.want {
			t.Errorf("trimASCIISpaceString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetLargeFileThreshold(t *testing.T) {
	original := LargeFileThreshold
	defer func() { LargeFileThreshold = original }()

	SetLargeFileThreshold(2048)
	if LargeFileThreshold != 2048 {
		t.Errorf("LargeFileThreshold = %d, want 2048", LargeFileThreshold)
	}

	SetLargeFileThreshold(0)
	if LargeFileThreshold != 2048 {
		t.Errorf("SetLargeFileThreshold(0) changed threshold to %d, want unchanged 2048", LargeFileThreshold)
	}

	SetLargeFileThreshold(-5)
	if LargeFileThreshold != 2048 {
		t.Errorf("SetLargeFileThreshold(-5) changed threshold to %d, want unchanged 2048", LargeFileThreshold)
	}
}
