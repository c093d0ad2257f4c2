package locate

import (
	"errors"
	"strings"
	"testing"
)

func TestLocate_PatternCapturesLabeledSection(t *testing.T) {
	body := "This work studies the propagation of extraction noise through layered document pipelines."
	text := "Abstract: " + body + "\n\nKeywords: noise, pipelines"

	cand, err := New(Options{}).Locate(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Strategy != StrategyPattern {
		t.Fatalf("expected pattern strategy, got %q", cand.Strategy)
	}
	if cand.Text != body {
		t.Fatalf("expected %q, got %q", body, cand.Text)
	}
	if strings.Contains(cand.Text, "Keywords") {
		t.Fatalf("capture leaked into next section: %q", cand.Text)
	}
}

func TestLocate_PatternPreservesOriginalCasing(t *testing.T) {
	body := "Neural Ranking Models improve Recall at Scale across heterogeneous Corpora and Benchmarks."
	text := "ABSTRACT: " + body + "\n\nIntroduction follows here."

	cand, err := New(Options{}).Locate(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Text != body {
		t.Fatalf("casing lost: expected %q, got %q", body, cand.Text)
	}
}

func TestLocate_PatternMatchesSynonymLabels(t *testing.T) {
	body := "A long enough summary section describing the contribution of this particular manuscript in detail."
	text := "Summary: " + body + "\n\nBackground material follows."

	cand, err := New(Options{}).Locate(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Strategy != StrategyPattern {
		t.Fatalf("expected pattern strategy, got %q", cand.Strategy)
	}
	if cand.Text != body {
		t.Fatalf("expected %q, got %q", body, cand.Text)
	}
}

func TestLocate_PatternRejectsShortCapture(t *testing.T) {
	// A bare label with no substance behind it must not produce a truncated
	// match; with nothing else to find the locator reports not found.
	text := "Abstract\n\nIntroduction\nShort body."

	_, err := New(Options{}).Locate(text)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLocate_KeywordRequiresStandaloneWord(t *testing.T) {
	text := "The abstracted results were promising.\n\nNothing else here."

	_, err := New(Options{}).Locate(text)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-standalone word, got %v", err)
	}
}

func TestLocate_KeywordStopsAtNumberedHeading(t *testing.T) {
	text := "Title\n\nAbstract: This paper improves X by Y, achieving Z.\n\n1. Introduction\nBody of the paper."

	cand, err := New(Options{}).Locate(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Strategy != StrategyKeyword {
		t.Fatalf("expected keyword strategy, got %q", cand.Strategy)
	}
	if cand.Text != "This paper improves X by Y, achieving Z." {
		t.Fatalf("unexpected span: %q", cand.Text)
	}
}

func TestLocate_KeywordWindowFallback(t *testing.T) {
	// No end keyword and no blank line: the scan takes exactly the window,
	// clamped to the text length.
	lines := []string{
		"Abstract",
		"First sentence of the section.",
		"Second sentence of the section.",
	}
	cand, err := New(Options{}).Locate(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Strategy != StrategyKeyword {
		t.Fatalf("expected keyword strategy, got %q", cand.Strategy)
	}
	want := "First sentence of the section. Second sentence of the section."
	if cand.Text != want {
		t.Fatalf("expected %q, got %q", want, cand.Text)
	}
}

func TestLocate_ParagraphFallbackSkipsBoilerplate(t *testing.T) {
	para := "This document has no labeled sections at all, yet its opening paragraph is substantial enough to stand in for one."
	text := "Copyright 2024 The Authors. All rights reserved by the publisher and its many affiliates worldwide today.\n\n" + para

	cand, err := New(Options{}).Locate(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Strategy != StrategyParagraph {
		t.Fatalf("expected paragraph strategy, got %q", cand.Strategy)
	}
	if cand.Text != para {
		t.Fatalf("expected %q, got %q", para, cand.Text)
	}
}

func TestLocate_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n"} {
		_, err := New(Options{}).Locate(in)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Locate(%q): expected ErrNotFound, got %v", in, err)
		}
	}
}

func TestLocate_OptionsOverrideThresholds(t *testing.T) {
	// With the default threshold the short capture is rejected by the pattern
	// tier and picked up by the keyword scan; lowering the threshold lets the
	// pattern tier accept it directly.
	text := "Abstract: Tiny but real.\n\nIntroduction follows."

	cand, err := New(Options{}).Locate(text)
	if err != nil {
		t.Fatalf("unexpected error with defaults: %v", err)
	}
	if cand.Strategy != StrategyKeyword {
		t.Fatalf("expected keyword strategy under default threshold, got %q", cand.Strategy)
	}
	if cand.Text != "Tiny but real." {
		t.Fatalf("unexpected span: %q", cand.Text)
	}

	cand, err = New(Options{MinPatternChars: 5}).Locate(text)
	if err != nil {
		t.Fatalf("unexpected error with lowered threshold: %v", err)
	}
	if cand.Strategy != StrategyPattern {
		t.Fatalf("expected pattern strategy with lowered threshold, got %q", cand.Strategy)
	}
	if cand.Text != "Tiny but real." {
		t.Fatalf("unexpected span: %q", cand.Text)
	}
}
