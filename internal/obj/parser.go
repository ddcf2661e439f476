package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Mode selects what happens when a single line fails to extract.
type Mode int

const (
	// Lenient skips the line, records it in Report.Skipped and carries on.
	Lenient Mode = iota
	// Strict aborts the parse with the first *LineError.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Options controls Parse. The zero value is lenient with no logging.
type Options struct {
	Mode Mode
	// Logf, if set, receives a message for each unrecognized line
	// that is neither blank nor a comment.
	Logf func(format string, args ...any)
}

// Report describes a finished parse.
type Report struct {
	Lines        int
	Skipped      []*LineError
	Unrecognized int
	Triangles    int      // faces normalized from triangles
	Objects      []string // names given by "o" records
}

// Parse reads OBJ text from r in one pass and assembles a Mesh.
// r is not closed. I/O errors are always fatal; line errors follow opts.Mode.
func Parse(r io.Reader, opts Options) (*Mesh, *Report, error) {
	mesh := &Mesh{}
	rep := &Report{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		rep.Lines++
		text := sc.Text()
		tokens := Tokenize(text)

		err := mesh.apply(tokens, rep, opts)
		if err == nil {
			continue
		}
		lerr := &LineError{Line: rep.Lines, Text: text, Err: err}
		if opts.Mode == Strict {
			return nil, rep, lerr
		}
		rep.Skipped = append(rep.Skipped, lerr)
	}
	if err := sc.Err(); err != nil {
		return nil, rep, fmt.Errorf("obj: read line %d: %w", rep.Lines+1, err)
	}

	return mesh, rep, nil
}

// ParseFile opens path, parses it and closes it.
func ParseFile(path string, opts Options) (*Mesh, *Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	mesh, rep, err := Parse(f, opts)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, rep, nil
}

// apply extracts one tokenized line into the mesh.
func (m *Mesh) apply(tokens []string, rep *Report, opts Options) error {
	switch Classify(tokens) {
	case KindObject:
		if len(tokens) > 1 {
			rep.Objects = append(rep.Objects, strings.Join(tokens[1:], " "))
		}
	case KindVertex:
		v, err := ExtractVertex(tokens)
		if err != nil {
			return err
		}
		m.Vertices = append(m.Vertices, v)
	case KindTexCoord:
		t, err := ExtractTexCoord(tokens)
		if err != nil {
			return err
		}
		m.TexCoords = append(m.TexCoords, t)
	case KindNormal:
		n, err := ExtractNormal(tokens)
		if err != nil {
			return err
		}
		m.Normals = append(m.Normals, n)
	case KindFace:
		f, tri, err := m.extractFace(tokens)
		if err != nil {
			return err
		}
		m.Faces = append(m.Faces, f)
		if tri {
			rep.Triangles++
		}
	default:
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			return nil
		}
		rep.Unrecognized++
		if opts.Logf != nil {
			opts.Logf("obj: line %d: ignoring %q record\n", rep.Lines, tokens[0])
		}
	}
	return nil
}
