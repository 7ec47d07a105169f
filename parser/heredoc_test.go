package parser

import (
	"strings"
	"testing"
)

func TestHeredocRoundTrip(t *testing.T) {
	p, err := ParsePipeline("cat << EOF\nhello world\nEOF")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}

	redirs := p.Segments[0].Redirs
	if len(redirs) != 1 || redirs[0].Type != RedirHeredoc {
		t.Fatalf("Expected one heredoc redirection, got %v", redirs)
	}
	if redirs[0].Path != "EOF" {
		t.Errorf("Delimiter recorded as %q", redirs[0].Path)
	}
	if redirs[0].Content != "hello world\n" {
		t.Errorf("Body collected as %q", redirs[0].Content)
	}
}

func TestHeredocCompleteness(t *testing.T) {
	type test struct {
		in   string
		want bool
	}
	tests := []test{
		{"echo no heredoc here", true},
		{"cat << EOF", false},
		{"cat << EOF\nhello world", false},
		{"cat << EOF\nhello world\nEOF", true},
		{"cat << A << B\nfirst\nA\nsecond", false},
		{"cat << A << B\nfirst\nA\nsecond\nB", true},
		{"cat <<- END\n\tbody\n\t\tEND", true},
		{"cat << END\n\tbody\n\tEND", false},
	}

	for _, tc := range tests {
		if got := IsHeredocComplete(tc.in); got != tc.want {
			t.Errorf("IsHeredocComplete(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestHeredocStripTabs(t *testing.T) {
	p, err := ParsePipeline("cat <<- END\n\tindented\n\t\tmore\n\tEND")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if body := p.Segments[0].Redirs[0].Content; body != "indented\nmore\n" {
		t.Errorf("Stripped body came out as %q", body)
	}
}

func TestHeredocUnterminated(t *testing.T) {
	_, err := ParsePipeline("cat << EOF\nno terminator in sight")
	if err == nil || !strings.Contains(err.Error(), "EOF") {
		t.Errorf("Expected a delimiter-not-found error, got %v", err)
	}
}

func TestMultipleHeredocs(t *testing.T) {
	p, err := ParsePipeline("cat << A << B\nfirst\nA\nsecond\nB")
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}

	redirs := p.Segments[0].Redirs
	if len(redirs) != 2 {
		t.Fatalf("Expected two heredocs, got %d", len(redirs))
	}
	if redirs[0].Content != "first\n" || redirs[1].Content != "second\n" {
		t.Errorf("Bodies collected as %q and %q",
			redirs[0].Content, redirs[1].Content)
	}
}

func TestPendingHeredocs(t *testing.T) {
	pending := PendingHeredocs("cat << EOF <<- TAB")
	if len(pending) != 2 {
		t.Fatalf("Expected two pending heredocs, got %d", len(pending))
	}
	if pending[0].Delimiter != "EOF" || pending[0].StripTabs {
		t.Errorf("First pending heredoc is %+v", pending[0])
	}
	if pending[1].Delimiter != "TAB" || !pending[1].StripTabs {
		t.Errorf("Second pending heredoc is %+v", pending[1])
	}
}
