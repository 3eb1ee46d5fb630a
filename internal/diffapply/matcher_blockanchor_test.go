package diffapply

import "testing"

func TestBlockAnchorMatch(t *testing.T) {
	text := "func a() {\n    // old body\n    x := 1\n    return x\n}\n"
	// Interior line "// old body" drifted from the search block below,
	// but the first and last lines still anchor the block.
	search := "func a() {\n    // new body\n    x := 1\n    return x\n"

	start, end, ok := BlockAnchorMatch([]byte(text), search, 0, nil)
	if !ok {
		t.Fatal("expected anchor match despite interior drift")
	}
	got := text[start:end]
	want := "func a() {\n    // old body\n    x := 1\n    return x\n"
	if got != want {
		t.Errorf("matched region = %q, want %q", got, want)
	}
}

func TestBlockAnchorMatch_TooFewLines(t *testing.T) {
	text := "a\nb\n"
	_, _, ok := BlockAnchorMatch([]byte(text), "a\nb\n", 0, nil)
	if ok {
		t.Error("expected no match below BlockAnchorMinLines")
	}
}

func TestBlockAnchorMatch_NoAnchorFound(t *testing.T) {
	text := "a\nb\nc\nd\n"
	_, _, ok := BlockAnchorMatch([]byte(text), "x\ny\nz\n", 0, nil)
	if ok {
		t.Error("expected no match when anchors are absent")
	}
}

func TestBlockAnchorMatch_RespectsCursor(t *testing.T) {
	text := "begin\nmid\nend\nbegin\nmid\nend\n"
	search := "begin\nmid\nend\n"

	_, firstEnd, ok := BlockAnchorMatch([]byte(text), search, 0, nil)
	if !ok {
		t.Fatal("expected first match")
	}

	start, _, ok := BlockAnchorMatch([]byte(text), search, firstEnd, nil)
	if !ok {
		t.Fatal("expected second match after cursor")
	}
	if start != firstEnd {
		t.Errorf("second match start = %d, want %d", start, firstEnd)
	}
}
