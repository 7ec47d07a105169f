package parser

import "fmt"

// RedirType is the closed set of supported redirection operators.
type RedirType int

const (
	RedirOutput       RedirType = iota // >
	RedirAppend                        // >>
	RedirInput                         // <
	RedirErr                           // 2>
	RedirErrAppend                     // 2>>
	RedirErrToOut                      // 2>&1
	RedirOutToErr                      // 1>&2
	RedirHeredoc                       // <<
	RedirHeredocStrip                  // <<-
	RedirHereString                    // <<<
)

// Redirection routes one of a segment's standard streams to or from a
// file or inline content.  Path holds the target file, the heredoc
// delimiter, or the here-string body depending on Type; Content holds a
// collected heredoc body and is empty until collection has run.
type Redirection struct {
	Type    RedirType
	Path    string
	Content string
}

// Segment is one command within a pipeline.
type Segment struct {
	Program string
	Args    []string
	Index   int
	Redirs  []Redirection
}

// Pipeline is a parsed command line: one or two segments connected by
// ‘|’, plus a trailing unquoted ‘&’ flag.
type Pipeline struct {
	Segments   []Segment
	RawLine    string
	Background bool
}

// Validate enforces the two-segment pipeline limit.  Shape support is a
// separate check from parsing so that ‘can this parse’ and ‘is this
// pipeline supported’ fail distinctly.
func (p *Pipeline) Validate() error {
	if len(p.Segments) > 2 {
		return fmt.Errorf("unsupported pipeline: %d segments (at most 2)",
			len(p.Segments))
	}
	return nil
}
