package goshape_test

import (
	"fmt"
	"testing"

	goshape "github.com/reoring/goshape"
)

func TestIssues_ErrorSummarizesFirstFew(t *testing.T) {
	var iss goshape.Issues
	for i := 0; i < 5; i++ {
		iss = goshape.AppendIssues(iss, goshape.Issue{
			Path: fmt.Sprintf("f%d", i),
			Code: goshape.CodeRequired,
		})
	}
	msg := iss.Error()
	if msg == "" {
		t.Fatalf("summary must not be empty")
	}
	if want := "required at f0"; msg[:len(want)] != want {
		t.Fatalf("summary should lead with the first issue, got %q", msg)
	}
	if want := "(total 5)"; msg[len(msg)-len(want):] != want {
		t.Fatalf("summary should count the remainder, got %q", msg)
	}
}

func TestAsIssues_UnwrapsWrappedErrors(t *testing.T) {
	base := goshape.Issues{{Path: "x", Code: goshape.CodeInvalidType}}
	wrapped := fmt.Errorf("outer: %w", error(base))
	got, ok := goshape.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Path != "x" {
		t.Fatalf("expected to recover issues, got %v %v", got, ok)
	}
	if _, ok := goshape.AsIssues(nil); ok {
		t.Fatalf("nil error carries no issues")
	}
}

func TestRebaseIssues_QualifiesPaths(t *testing.T) {
	iss := goshape.Issues{{Path: "inner"}, {Path: ""}}
	out := goshape.RebaseIssues(iss, "config")
	if out[0].Path != "config.inner" {
		t.Fatalf("got %q", out[0].Path)
	}
	if out[1].Path != "config" {
		t.Fatalf("empty child path collapses onto the base, got %q", out[1].Path)
	}
	if goshape.JoinPath("", "leaf") != "leaf" {
		t.Fatalf("JoinPath with empty base must return the leaf")
	}
}
