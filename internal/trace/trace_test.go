package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelOff, LevelError, LevelPhase, LevelDetail, LevelDebug} {
		got, err := ParseLevel(strings.ToUpper(l.String()))
		if err != nil || got != l {
			t.Fatalf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("ParseLevel(verbose) succeeded")
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeCommand, false},
		{LevelError, ScopeCommand, false},
		{LevelPhase, ScopePhase, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeEntry, false},
		{LevelDebug, ScopeEntry, true},
	}
	for _, c := range cases {
		if got := c.level.ShouldEmit(c.scope); got != c.want {
			t.Errorf("%s.ShouldEmit(%s) = %t, want %t", c.level, c.scope, got, c.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopePhase, "verify", 0)
	span.Point(ScopeEntry, "entry:IDCmp", "")
	span.WithExtra("files", "2").WithExtra("errors", "0").End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ verify") {
		t.Fatalf("begin line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "← verify (ok) {errors=0, files=2}") {
		t.Fatalf("end line = %q", lines[1])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelError, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	span := Begin(tr, ScopeFile, "verify:parse.h", 0)
	span.Fail("load", errors.New("open parse.h: no such file"))
	span.End("")

	var ev struct {
		Kind   string `json:"kind"`
		Error  bool   `json:"error"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("LevelError must only record failures, got:\n%s", buf.String())
	}
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("bad json %q: %v", lines[0], err)
	}
	if ev.Kind != "point" || !ev.Error || ev.Name != "load" || !strings.Contains(ev.Detail, "parse.h") {
		t.Fatalf("event = %+v", ev)
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff, OutputPath: "/nonexistent/dir/trace.log"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatalf("LevelOff tracer enabled")
	}
	span := Begin(tr, ScopeCommand, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatalf("nop span recorded")
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatalf("tracer lost in context")
	}
	ctx = WithSpanContext(ctx, SpanContext{SpanID: 7})
	if CurrentSpan(ctx).SpanID != 7 {
		t.Fatalf("span context lost")
	}

	span, inner := Start(ctx, ScopePhase, "verify")
	if span.ID() == 0 || CurrentSpan(inner).SpanID != span.ID() {
		t.Fatalf("Start did not make the span current")
	}
	file, _ := Start(inner, ScopeFile, "verify:parse.h")
	file.End("")
	span.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d events:\n%s", len(lines), buf.String())
	}
	var begin struct {
		Name     string `json:"name"`
		ParentID uint64 `json:"parent_id"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &begin); err != nil {
		t.Fatalf("bad json %q: %v", lines[1], err)
	}
	if begin.Name != "verify:parse.h" || begin.ParentID != span.ID() {
		t.Fatalf("file span = %+v, want parent %d", begin, span.ID())
	}
}

func TestStartFilteredKeepsParent(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	ctx := WithSpanContext(WithTracer(context.Background(), tr), SpanContext{SpanID: 3})

	span, inner := Start(ctx, ScopeFile, "verify:parse.h")
	if span.ID() != 0 || CurrentSpan(inner).SpanID != 3 {
		t.Fatalf("filtered span changed the current span")
	}
	span.Point(ScopeFile, "loaded:parse.h", "118 tokens")
	span.Fail("verify:parse.h", errors.New("drift"))
	span.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want only the error point, got:\n%s", buf.String())
	}
	var ev struct {
		Error    bool   `json:"error"`
		ParentID uint64 `json:"parent_id"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("bad json %q: %v", lines[0], err)
	}
	if !ev.Error || ev.ParentID != 3 {
		t.Fatalf("event = %+v", ev)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Fatalf("ParseFormat(ndjson) = %v, %v", f, err)
	}
	if _, err := ParseFormat("chrome"); err == nil {
		t.Fatalf("ParseFormat(chrome) succeeded")
	}
}
