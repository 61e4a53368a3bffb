package xmlparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// DefaultBufferLength caps name, value and path segment accumulation.
// Exceeding it is a parse failure, never a silent truncation.
const DefaultBufferLength = 200

// reader is the forward-only cursor over the byte stream. One byte of
// pushback is enough for the value reader to leave a '<' in place.
type reader struct {
	br *bufio.Reader
}

func newReader(r io.Reader) *reader {
	return &reader{br: bufio.NewReader(r)}
}

func (r *reader) next() (byte, error) {
	return r.br.ReadByte()
}

func (r *reader) unread() {
	r.br.UnreadByte()
}

// scratch accumulates name and value characters up to a hard cap.
type scratch struct {
	buf   []byte
	limit int
}

func (s *scratch) add(c byte) error {
	if len(s.buf) >= s.limit {
		return fmt.Errorf("accumulating %d bytes: %w", s.limit, ErrBufferOverflow)
	}
	s.buf = append(s.buf, c)
	return nil
}

func (s *scratch) reset() {
	s.buf = s.buf[:0]
}

func (s *scratch) take() string {
	out := string(s.buf)
	s.buf = s.buf[:0]
	return out
}

// Parser turns a tag stream into a node tree. It keeps a single cursor on
// the node whose children are currently being read and is good for exactly
// one document.
type Parser struct {
	r       *reader
	scratch scratch
	log     hclog.Logger

	root    *Node
	current *Node
}

// NewParser wraps r. The stream must be positioned past the declaration
// line; Load and FetchParse handle that line themselves.
func NewParser(r io.Reader, opts ...Option) *Parser {
	return newParser(r, newConfig(opts))
}

func newParser(r io.Reader, cfg config) *Parser {
	return &Parser{
		r:       newReader(r),
		scratch: scratch{limit: cfg.limit},
		log:     cfg.log,
	}
}

// Parse reads a whole document from r and returns its root node. On any
// structural error no tree is returned and nothing partial is kept.
func Parse(r io.Reader, opts ...Option) (*Node, error) {
	return NewParser(r, opts...).Parse()
}

func (p *Parser) Parse() (*Node, error) {
	root, err := p.parse()
	if err != nil {
		p.log.Error("parse failed", "error", err)
		p.root = nil
		p.current = nil
		return nil, err
	}
	return root, nil
}

func (p *Parser) parse() (*Node, error) {
	tag, err := p.readTag()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("nothing to parse: %w", ErrUnexpectedEOF)
		}
		return nil, err
	}

	switch tag.Kind() {
	case Closing:
		return nil, fmt.Errorf("first tag %q is a closing tag: %w", tag.Name, ErrUnbalancedDocument)
	case Unique:
		// a single self-closing tag is the whole document
		return nodeFromTag(tag), nil
	}

	p.root = nodeFromTag(tag)
	p.current = p.root
	p.log.Debug("opened root", "name", p.root.Name)

	for {
		if err := p.readValue(p.current); err != nil {
			return nil, err
		}

		tag, err = p.readTag()
		if err != nil {
			if err == io.EOF || errors.Is(err, ErrUnexpectedEOF) {
				return nil, fmt.Errorf("no tag remaining and tree is not finished: %w", ErrUnbalancedDocument)
			}
			return nil, err
		}

		switch tag.Kind() {
		case Opening:
			child := nodeFromTag(tag)
			p.current.Append(child)
			p.current = child

		case Unique:
			p.current.Append(nodeFromTag(tag))

		case Closing:
			if p.current.parent != nil {
				p.current = p.current.parent
				continue
			}
			// closed the root
			if p.current != p.root {
				return nil, fmt.Errorf("last closed node %q is not the root: %w", p.current.Name, ErrUnbalancedDocument)
			}
			return p.root, nil
		}
	}
}
