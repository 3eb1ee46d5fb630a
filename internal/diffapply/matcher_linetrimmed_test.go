package diffapply

import "testing"

func TestLineTrimmedMatch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		search  string
		cursor  int
		wantOK  bool
		wantStr string // substring of text expected between start..end
	}{
		{
			name:    "exact whitespace tolerant match",
			text:    "func a() {\n    foo()\n}\n",
			search:  "foo()\n",
			cursor:  0,
			wantOK:  true,
			wantStr: "    foo()\n",
		},
		{
			name:    "leading/trailing space differs",
			text:    "  indented line  \nnext\n",
			search:  "indented line\n",
			cursor:  0,
			wantOK:  true,
			wantStr: "  indented line  \n",
		},
		{
			name:   "no match",
			text:   "a\nb\nc\n",
			search: "zzz\n",
			cursor: 0,
			wantOK: false,
		},
		{
			name:    "multi-line block",
			text:    "one\n  two  \nthree\nfour\n",
			search:  "two\nthree\n",
			cursor:  0,
			wantOK:  true,
			wantStr: "  two  \nthree\n",
		},
		{
			name:   "respects cursor",
			text:   "x\nfoo\ny\nfoo\n",
			search: "foo\n",
			cursor: 4,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := LineTrimmedMatch([]byte(tt.text), tt.search, tt.cursor, nil)
			if ok != tt.wantOK {
				t.Fatalf("LineTrimmedMatch() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := tt.text[start:end]; tt.wantStr != "" && got != tt.wantStr {
				t.Errorf("matched region = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestLineTrimmedMatch_WithLineIndex(t *testing.T) {
	text := "one\n  two  \nthree\nfour\n"
	idx := NewLineIndex([]byte(text))

	start, end, ok := LineTrimmedMatch([]byte(text), "two\nthree\n", 0, idx)
	if !ok {
		t.Fatal("expected match via LineIndex path")
	}
	if got := text[start:end]; got != "  two  \nthree\n" {
		t.Errorf("matched region = %q", got)
	}
}
