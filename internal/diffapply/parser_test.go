package diffapply

import "testing"

func feedAll(p *BlockParser, lines []string) []struct {
	event   lineEvent
	payload string
} {
	var events []struct {
		event   lineEvent
		payload string
	}
	for _, l := range lines {
		ev, payload := p.Feed(l)
		events = append(events, struct {
			event   lineEvent
			payload string
		}{ev, payload})
	}
	return events
}

func TestBlockParser_HappyPath(t *testing.T) {
	p := NewBlockParser()
	lines := []string{
		"<<<<<<< SEARCH",
		"old line",
		"=======",
		"new line",
		">>>>>>> REPLACE",
	}

	events := feedAll(p, lines)

	want := []lineEvent{eventNone, eventNone, eventSearchReady, eventReplaceLine, eventBlockClosed}
	for i, w := range want {
		if events[i].event != w {
			t.Errorf("event[%d] = %v, want %v", i, events[i].event, w)
		}
	}
	if events[2].payload != "old line\n" {
		t.Errorf("search content = %q, want %q", events[2].payload, "old line\n")
	}
	if events[3].payload != "new line" {
		t.Errorf("replace payload = %q, want %q", events[3].payload, "new line")
	}
}

func TestBlockParser_EmptySearchBody(t *testing.T) {
	p := NewBlockParser()
	p.Feed("<<<<<<< SEARCH")
	ev, payload := p.Feed("=======")
	if ev != eventSearchReady {
		t.Fatalf("event = %v, want eventSearchReady", ev)
	}
	if payload != "" {
		t.Errorf("search content = %q, want empty", payload)
	}
}

func TestBlockParser_IgnoresLinesBeforeFirstMarker(t *testing.T) {
	p := NewBlockParser()
	ev, _ := p.Feed("just some prose")
	if ev != eventNone {
		t.Errorf("event = %v, want eventNone", ev)
	}
	ev, _ = p.Feed("<<<<<<< SEARCH")
	if ev != eventNone {
		t.Errorf("event = %v, want eventNone", ev)
	}
}

func TestBlockParser_RestartInSearch(t *testing.T) {
	p := NewBlockParser()
	p.Feed("<<<<<<< SEARCH")
	p.Feed("abandoned")
	p.Feed("<<<<<<< SEARCH")
	p.Feed("kept")
	ev, payload := p.Feed("=======")
	if ev != eventSearchReady {
		t.Fatalf("event = %v, want eventSearchReady", ev)
	}
	if payload != "kept\n" {
		t.Errorf("search content = %q, want %q (abandoned content discarded)", payload, "kept\n")
	}
}

func TestBlockParser_MalformedReplaceEndInSearch(t *testing.T) {
	p := NewBlockParser()
	p.Feed("<<<<<<< SEARCH")
	p.Feed("line")
	ev, _ := p.Feed(">>>>>>> REPLACE")
	if ev != eventNone {
		t.Errorf("event = %v, want eventNone (malformed, dropped)", ev)
	}

	// Parser must be back at Idle: a following SEARCH opens a fresh block.
	ev, _ = p.Feed("<<<<<<< SEARCH")
	if ev != eventNone {
		t.Errorf("event = %v, want eventNone", ev)
	}
	if p.state != stateInSearch {
		t.Errorf("state = %v, want stateInSearch", p.state)
	}
}

func TestBlockParser_RestartInReplace(t *testing.T) {
	p := NewBlockParser()
	p.Feed("<<<<<<< SEARCH")
	p.Feed("old")
	p.Feed("=======")
	p.Feed("stale replace line")
	ev, _ := p.Feed("<<<<<<< SEARCH")
	if ev != eventAbandoned {
		t.Fatalf("event = %v, want eventAbandoned", ev)
	}
	if p.state != stateInSearch {
		t.Errorf("state = %v, want stateInSearch", p.state)
	}
}

func TestBlockParser_SecondDividerInReplace(t *testing.T) {
	p := NewBlockParser()
	p.Feed("<<<<<<< SEARCH")
	p.Feed("old")
	p.Feed("=======")
	p.Feed("first replace line")
	ev, _ := p.Feed("=======")
	if ev != eventAbandoned {
		t.Fatalf("event = %v, want eventAbandoned", ev)
	}
	if p.state != stateInReplace {
		t.Errorf("state = %v, want stateInReplace (malformed recovery stays in replace)", p.state)
	}
}

func TestBlockParser_ReplaceLinesAccumulate(t *testing.T) {
	p := NewBlockParser()
	p.Feed("<<<<<<< SEARCH")
	p.Feed("x")
	p.Feed("=======")
	ev1, payload1 := p.Feed("line one")
	ev2, payload2 := p.Feed("line two")
	if ev1 != eventReplaceLine || payload1 != "line one" {
		t.Errorf("first replace line = %v %q", ev1, payload1)
	}
	if ev2 != eventReplaceLine || payload2 != "line two" {
		t.Errorf("second replace line = %v %q", ev2, payload2)
	}
}
