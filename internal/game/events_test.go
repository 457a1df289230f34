package game

import "testing"

func sampleLog() *EventLog {
	el := NewEventLog()
	el.Add(1, Event{Kind: EventFired, X: 240, Y: 564, Value: 1})
	el.Add(3, Event{Kind: EventEnemyDestroyed, Detail: "bullet", X: 100, Y: 80, Value: 23})
	el.Add(3, Event{Kind: EventFired, X: 240, Y: 564, Value: 1})
	el.Add(9, Event{Kind: EventEnemyDestroyed, Detail: "shield", X: 230, Y: 570, Value: 5})
	el.Add(12, Event{Kind: EventGameOver, Detail: "contact", Value: 41})
	return el
}

func TestEventLog_FilterByKind(t *testing.T) {
	el := sampleLog()
	fired := el.Filter(EventFired)
	if len(fired) != 2 {
		t.Fatalf("expected 2 fired entries, got %d", len(fired))
	}
	for _, e := range fired {
		if e.Kind != EventFired {
			t.Fatalf("filter leaked a %s entry", e.Kind)
		}
	}
}

func TestEventLog_FilterFrameRangeInclusive(t *testing.T) {
	el := sampleLog()
	got := el.FilterFrameRange(3, 9)
	if len(got) != 3 {
		t.Fatalf("frames 3..9 should hold 3 entries, got %d", len(got))
	}
	if got[0].Frame != 3 || got[len(got)-1].Frame != 9 {
		t.Fatalf("range bounds are inclusive, got frames %d..%d", got[0].Frame, got[len(got)-1].Frame)
	}
}

func TestEventLog_Count(t *testing.T) {
	el := sampleLog()
	if n := el.Count(EventEnemyDestroyed); n != 2 {
		t.Fatalf("expected 2 destroys, got %d", n)
	}
	if n := el.Count(EventBossHit); n != 0 {
		t.Fatalf("expected no boss hits, got %d", n)
	}
}

func TestEventLog_LastOfPicksMostRecent(t *testing.T) {
	el := sampleLog()
	e, ok := el.LastOf(EventEnemyDestroyed)
	if !ok {
		t.Fatal("log holds destroys, LastOf should find one")
	}
	if e.Frame != 9 || e.Detail != "shield" {
		t.Fatalf("expected the frame-9 shield kill, got frame %d detail %q", e.Frame, e.Detail)
	}
	if _, ok := el.LastOf(EventBossDestroyed); ok {
		t.Fatal("LastOf should report absence for kinds never logged")
	}
}

func TestEventLog_HasMatchesDetail(t *testing.T) {
	el := sampleLog()
	if !el.Has(EventEnemyDestroyed, "shield") {
		t.Fatal("a shield kill is in the log")
	}
	if el.Has(EventGameOver, "enemyBullet") {
		t.Fatal("the run ended by contact, not by a round")
	}
	if !el.Has(EventGameOver, "") {
		t.Fatal("an empty detail should match on kind alone")
	}
}

func TestEventLog_ResetClears(t *testing.T) {
	el := sampleLog()
	el.Reset()
	if len(el.Entries()) != 0 {
		t.Fatalf("reset should drop every entry, got %d", len(el.Entries()))
	}
	if el.Summary() != "(no events)" {
		t.Fatalf("empty summary marker expected, got %q", el.Summary())
	}
}

func TestEventLog_SummaryCountsInKindOrder(t *testing.T) {
	el := sampleLog()
	want := "fired=2 enemyDestroyed=2 gameOver=1"
	if got := el.Summary(); got != want {
		t.Fatalf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}
