package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"graphkit/internal/graphkiterrors"
)

// Load reads a directed edge-list text stream and builds a Graph. Each
// line is blank, a comment starting with "//" or "#" (skipped), or two
// whitespace-separated non-negative decimal integers "u v" denoting an
// edge u->v. V is inferred as the largest node id seen, plus one.
func Load(r io.Reader) (*Graph, error) {
	var edges [][2]int32
	var maxID int64 = -1

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}

		tok := strings.Fields(line)
		if len(tok) != 2 {
			return nil, fmt.Errorf("line %d: expected \"u v\", got %q: %w", lineNo, line, graphkiterrors.ErrInputParse)
		}

		u, err := strconv.ParseInt(tok[0], 10, 64)
		if err != nil || u < 0 {
			return nil, fmt.Errorf("line %d: invalid source id %q: %w", lineNo, tok[0], graphkiterrors.ErrInputParse)
		}
		w, err := strconv.ParseInt(tok[1], 10, 64)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("line %d: invalid target id %q: %w", lineNo, tok[1], graphkiterrors.ErrInputParse)
		}

		if u > maxID {
			maxID = u
		}
		if w > maxID {
			maxID = w
		}
		edges = append(edges, [2]int32{int32(u), int32(w)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading edge list: %v: %w", err, graphkiterrors.ErrInputIO)
	}

	v := int(maxID + 1)
	return Build(v, edges), nil
}

// LoadFile opens path and loads a Graph from it.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, graphkiterrors.ErrInputIO)
	}
	defer f.Close()
	return Load(f)
}
