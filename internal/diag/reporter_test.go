package diag

import (
	"testing"

	"lunar/internal/source"
)

func TestDedup(t *testing.T) {
	bag := NewBag(10)
	r := Dedup(bag)
	span := source.Span{File: 1, Start: 3, End: 4}

	r.Report(NewError(SynExpectedToken, span, "expected `then`"))
	r.Report(NewError(SynExpectedToken, span, "expected `then`").WithNote(span, "differs only by note"))
	r.Report(NewError(SynExpectedToken, span, "expected `end`"))
	r.Report(NewWarning(DiaConflict, span, "expected `then`"))

	if bag.Len() != 3 {
		t.Fatalf("bag holds %d diagnostics, want 3", bag.Len())
	}
}

func TestBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	b := Build(bag, SevInfo, DiaFeatureUsed, source.Span{}, "uses goto").
		Note(source.Span{Start: 1, End: 2}, "here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("bag holds %d diagnostics, want 1", bag.Len())
	}
	if got := bag.Items()[0]; len(got.Notes) != 1 || got.Severity != SevInfo {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
	var nilBuilder *Builder
	nilBuilder.Note(source.Span{}, "ignored").Emit()
}

func TestWithNoteDoesNotAlias(t *testing.T) {
	base := NewError(SynExpectedToken, source.Span{}, "x").WithNote(source.Span{}, "a")
	one := base.WithNote(source.Span{}, "b")
	two := base.WithNote(source.Span{}, "c")
	if one.Notes[1].Msg != "b" || two.Notes[1].Msg != "c" || len(base.Notes) != 1 {
		t.Fatalf("notes aliased: %+v / %+v", one.Notes, two.Notes)
	}
}

func TestBagLimitAndMerge(t *testing.T) {
	a := NewBag(1)
	if !a.Add(NewError(SynExpectedToken, source.Span{}, "one")) {
		t.Fatal("first add rejected")
	}
	if a.Add(NewError(SynExpectedToken, source.Span{}, "two")) {
		t.Fatal("add past the limit accepted")
	}
	b := NewBag(2)
	b.Add(NewWarning(DiaConflict, source.Span{}, "w"))
	b.Add(NewError(SynExpectedToken, source.Span{}, "e"))
	a.Merge(b)
	if a.Len() != 3 || !a.HasErrors() || !a.HasWarnings() {
		t.Fatalf("merged bag: len %d", a.Len())
	}
	full := NewBag(1)
	full.Add(NewError(SynExpectedToken, source.Span{}, "one"))
	full.Force(New(SevInfo, ObsTimings, source.Span{}, "timings"))
	if full.Len() != 2 || full.Cap() != 2 {
		t.Fatalf("Force: len %d cap %d", full.Len(), full.Cap())
	}
	if SevError.String() != "ERROR" || Severity(9).String() != "UNKNOWN" {
		t.Fatal("severity names")
	}
}
