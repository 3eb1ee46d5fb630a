package diffapply

import "testing"

func TestExactMatch(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		pattern   string
		cursor    int
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"found at start", "hello world", "hello", 0, 0, 5, true},
		{"found mid text", "hello world", "world", 0, 6, 11, true},
		{"not found", "hello world", "xyz", 0, 0, 0, false},
		{"cursor skips earlier match", "aaa", "a", 1, 1, 2, true},
		{"cursor past all matches", "aaa", "a", 3, 0, 0, false},
		{"empty pattern matches at cursor", "hello", "", 2, 2, 2, true},
		{"pattern longer than text", "ab", "abc", 0, 0, 0, false},
		{"repeating pattern finds first", "abcabc", "abc", 0, 0, 3, true},
		{"multiline pattern", "func a() {\nfoo()\n}\n", "foo()", 0, 11, 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := ExactMatch([]byte(tt.text), []byte(tt.pattern), tt.cursor)
			if ok != tt.wantOK {
				t.Fatalf("ExactMatch() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ExactMatch() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestBuildBadCharTable(t *testing.T) {
	table := buildBadCharTable([]byte("abc"))

	if table['a'] != 2 {
		t.Errorf("table['a'] = %d, want 2", table['a'])
	}
	if table['b'] != 1 {
		t.Errorf("table['b'] = %d, want 1", table['b'])
	}
	if table['c'] != 3 {
		t.Errorf("table['c'] = %d, want 3 (occurs only as last char)", table['c'])
	}
	if table['z'] != 3 {
		t.Errorf("table['z'] = %d, want 3 (absent from pattern)", table['z'])
	}
}
