package xmlparser

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Declaration is the only declaration line this dialect accepts. It must be
// the first line of every loaded file.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// Document ties a parsed tree to the place it came from.
type Document struct {
	Path string

	root  *Node
	limit int
	log   hclog.Logger
}

// Load reads, validates and parses the file at path. The underlying file is
// closed before Load returns; the caller only owns the tree, released with
// Close.
func Load(path string, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)

	f, err := cfg.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if err := readDeclaration(br); err != nil {
		cfg.log.Error("load failed", "path", path, "error", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	root, err := newParser(br, cfg).Parse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.log.Debug("loaded document", "path", path, "root", root.Name)

	return &Document{Path: path, root: root, limit: cfg.limit, log: cfg.log}, nil
}

// readDeclaration consumes the first line and checks it against
// Declaration.
func readDeclaration(br *bufio.Reader) error {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("reading declaration line: %w", ErrUnexpectedEOF)
	}
	if strings.TrimRight(line, "\r\n") != Declaration {
		return fmt.Errorf("first line %q: %w", strings.TrimRight(line, "\r\n"), ErrBadDeclaration)
	}
	return nil
}

// Root returns the document's root node, nil after Close.
func (d *Document) Root() *Node {
	if d == nil {
		return nil
	}
	return d.root
}

// Close destroys the tree. A closed document answers every query with the
// caller's default.
func (d *Document) Close() error {
	if d == nil {
		return fmt.Errorf("closing a nil document")
	}
	if d.root == nil {
		return nil
	}
	err := d.root.Destroy()
	d.root = nil
	return err
}

// GetValue resolves a value path against the document root.
func (d *Document) GetValue(path string) (string, error) {
	if d == nil || d.root == nil {
		return "", fmt.Errorf("resolving %q in a closed document: %w", path, ErrNotFound)
	}
	return resolveValue(path, d.root, d.limit)
}

// FindNode resolves a node-search path against the root's children.
func (d *Document) FindNode(path string) (*Node, error) {
	if d == nil || d.root == nil {
		return nil, fmt.Errorf("searching %q in a closed document: %w", path, ErrNotFound)
	}
	return findNode(path, d.root.first, d.limit)
}

// GetString returns the value at path, or def when the path resolves to
// nothing.
func (d *Document) GetString(path string, def string) string {
	value, err := d.GetValue(path)
	if err != nil {
		return def
	}
	return value
}

// GetInt returns the value at path as an int, or def when the path resolves
// to nothing or the value is not a number.
func (d *Document) GetInt(path string, def int) int {
	value, err := d.GetValue(path)
	if err != nil {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// GetBool maps exactly "true" and "false" to a bool. Anything else,
// including a missing path, is def; a malformed boolean is a fallback, not
// an error.
func (d *Document) GetBool(path string, def bool) bool {
	switch value, _ := d.GetValue(path); value {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

// GetFloat returns the value at path as a float64, or def when the path
// resolves to nothing or the value is not a number.
func (d *Document) GetFloat(path string, def float64) float64 {
	value, err := d.GetValue(path)
	if err != nil {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return f
}
