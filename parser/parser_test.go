package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSimple(t *testing.T) {
	got, err := ParsePipeline("echo hello world")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}

	want := &Pipeline{
		Segments: []Segment{{
			Program: "echo",
			Args:    []string{"hello", "world"},
		}},
		RawLine: "echo hello world",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pipeline mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTwoSegments(t *testing.T) {
	got, err := ParsePipeline("cat foo.txt | grep bar")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if len(got.Segments) != 2 {
		t.Fatalf("Expected 2 segments but got %d", len(got.Segments))
	}
	for i, seg := range got.Segments {
		if seg.Index != i {
			t.Errorf("Segment %d carries index %d", i, seg.Index)
		}
	}
	if got.Segments[1].Program != "grep" {
		t.Errorf("Second segment runs %q", got.Segments[1].Program)
	}
}

func TestQuoteTransparency(t *testing.T) {
	got, err := ParsePipeline(`echo "a | b"`)
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	want := []Segment{{Program: "echo", Args: []string{"a | b"}}}
	if diff := cmp.Diff(want, got.Segments); diff != "" {
		t.Errorf("Segments mismatch (-want +got):\n%s", diff)
	}
}

func TestArityValidation(t *testing.T) {
	if _, err := ParsePipeline("a | b"); err != nil {
		t.Errorf("Two segments should validate: %s", err)
	}
	if _, err := ParsePipeline("a | b | c"); err == nil {
		t.Error("Three segments should fail validation")
	}

	// Validation is a distinct check: the three-segment line parses.
	p, err := Parse("a | b | c")
	if err != nil {
		t.Fatalf("Parse itself failed: %s", err)
	}
	if err := p.Validate(); err == nil {
		t.Error("Validate accepted three segments")
	}
}

func TestEmptyCommands(t *testing.T) {
	type test struct {
		in   string
		want error
	}
	tests := []test{
		{"", ErrEmptyCommand},
		{"   ", ErrEmptyCommand},
		{"| grep x", ErrEmptyBeforePipe},
		{"echo x |", ErrEmptyAfterPipe},
		{"a | | b", ErrEmptyBeforePipe},
	}

	for _, tc := range tests {
		if _, err := ParsePipeline(tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%q: expected %v but got %v", tc.in, tc.want, err)
		}
	}
}

func TestBackground(t *testing.T) {
	p, err := ParsePipeline("sleep 10 &")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if !p.Background {
		t.Error("Trailing ‘&’ did not set Background")
	}

	if _, err := ParsePipeline("sleep 10 & echo hi"); !errors.Is(err, ErrBackgroundPos) {
		t.Errorf("Mid-stream ‘&’ gave %v", err)
	}

	p, err = ParsePipeline(`echo "a & b"`)
	if err != nil || p.Background {
		t.Error("Quoted ‘&’ must stay literal")
	}
}

func TestKeywordRejected(t *testing.T) {
	if _, err := ParsePipeline("if true"); err == nil {
		t.Error("Keyword ‘if’ should not parse as a command")
	}
}

func TestRedirections(t *testing.T) {
	got, err := ParsePipeline("sort <in.txt >out.txt 2>> err.log 2>&1 -r")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}

	want := []Segment{{
		Program: "sort",
		Args:    []string{"-r"},
		Redirs: []Redirection{
			{Type: RedirInput, Path: "in.txt"},
			{Type: RedirOutput, Path: "out.txt"},
			{Type: RedirErrAppend, Path: "err.log"},
			{Type: RedirErrToOut},
		},
	}}
	if diff := cmp.Diff(want, got.Segments); diff != "" {
		t.Errorf("Segments mismatch (-want +got):\n%s", diff)
	}
}

func TestRedirectionMissingTarget(t *testing.T) {
	for _, in := range []string{"echo >", "cat <<", "cat <<<"} {
		if _, err := ParsePipeline(in); err == nil {
			t.Errorf("%q: expected a missing-target error", in)
		}
	}
}

func TestQuotedOperatorStaysArgument(t *testing.T) {
	got, err := ParsePipeline(`echo ">" out`)
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}

	want := []Segment{{
		Program: "echo",
		Args:    []string{">", "out"},
	}}
	if diff := cmp.Diff(want, got.Segments); diff != "" {
		t.Errorf("Segments mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractRedirectionsStandalone(t *testing.T) {
	clean, redirs, err := ExtractRedirections(
		[]string{"grep", "-v", "foo", ">", "out", "<<<", "abc"})
	if err != nil {
		t.Fatalf("Extraction failed: %s", err)
	}

	if diff := cmp.Diff([]string{"grep", "-v", "foo"}, clean); diff != "" {
		t.Errorf("Clean args mismatch (-want +got):\n%s", diff)
	}
	want := []Redirection{
		{Type: RedirOutput, Path: "out"},
		{Type: RedirHereString, Path: "abc"},
	}
	if diff := cmp.Diff(want, redirs); diff != "" {
		t.Errorf("Redirections mismatch (-want +got):\n%s", diff)
	}
}
