package xmlparser

import (
	"fmt"
	"io"
)

// Kind classifies a tag token.
type Kind int

const (
	Unknown Kind = iota // not yet classified
	Opening             // <name>
	Closing             // </name>
	Unique              // <name/>
)

func (k Kind) String() string {
	switch k {
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	case Unique:
		return "unique"
	}
	return "unknown"
}

// Tag is the transient token produced for one <...> markup unit. It seeds a
// Node and is discarded; it never ends up in the tree.
type Tag struct {
	Name string
	kind Kind
	attr *Attribute
}

func (t *Tag) Kind() Kind { return t.kind }

// Attributes returns the head of the tag's attribute list.
func (t *Tag) Attributes() *Attribute { return t.attr }

// AddAttribute prepends attr to the tag's attribute list.
func (t *Tag) AddAttribute(attr *Attribute) error {
	if t == nil {
		return fmt.Errorf("adding an attribute to a nil tag")
	}
	if attr == nil {
		return fmt.Errorf("adding a nil attribute to a tag")
	}
	t.attr = attr.prepend(t.attr)
	return nil
}

// PopAttribute detaches and returns the first attribute, or nil when the
// list is empty. Used to hand attributes over to a node without copying.
func (t *Tag) PopAttribute() *Attribute {
	if t == nil || t.attr == nil {
		return nil
	}
	popped := t.attr
	t.attr = popped.next
	popped.next = nil
	return popped
}

// readTag reads one tag from the stream. The leading '<' is optional: the
// value reader stops right before it or may already have consumed it.
// io.EOF is returned only when the input ends before any character of the
// tag; inside a tag the input ending is ErrUnexpectedEOF.
func (p *Parser) readTag() (*Tag, error) {
	tag := &Tag{}
	p.scratch.reset()

	c, err := p.r.next()
	if err != nil {
		return nil, io.EOF
	}
	if c == '<' {
		c, err = p.r.next()
		if err != nil {
			return nil, fmt.Errorf("reading tag: %w", ErrUnexpectedEOF)
		}
	}
	if c == '/' {
		tag.kind = Closing
	} else if err := p.scratch.add(c); err != nil {
		return nil, err
	}

	for {
		c, err = p.r.next()
		if err != nil {
			return nil, fmt.Errorf("reading tag name: %w", ErrUnexpectedEOF)
		}
		if c == ' ' || c == '>' || c == '/' {
			break
		}
		if err := p.scratch.add(c); err != nil {
			return nil, err
		}
	}
	tag.Name = p.scratch.take()

	switch c {
	case '>':
		if tag.kind == Unknown {
			tag.kind = Opening
		}
		return tag, nil

	case '/':
		if tag.kind != Unknown {
			return nil, fmt.Errorf("closing tag %q cannot self-close: %w", tag.Name, ErrMalformedTag)
		}
		tag.kind = Unique
		if c, err = p.r.next(); err != nil {
			return nil, fmt.Errorf("reading tag %q: %w", tag.Name, ErrUnexpectedEOF)
		}
		if c != '>' {
			return nil, fmt.Errorf("self-close marker in tag %q is not followed by '>': %w", tag.Name, ErrMalformedTag)
		}
		return tag, nil

	case ' ':
		if tag.kind != Unknown {
			return nil, fmt.Errorf("closing tag %q carries attributes: %w", tag.Name, ErrMalformedTag)
		}
	}

	// attribute reading mode, one attribute per separating space
	for c == ' ' {
		attr, err := p.readAttribute()
		if err != nil {
			return nil, err
		}
		tag.AddAttribute(attr)

		if c, err = p.r.next(); err != nil {
			return nil, fmt.Errorf("reading tag %q: %w", tag.Name, ErrUnexpectedEOF)
		}
	}

	switch c {
	case '>':
		tag.kind = Opening
		return tag, nil
	case '/':
		tag.kind = Unique
		if c, err = p.r.next(); err != nil {
			return nil, fmt.Errorf("reading tag %q: %w", tag.Name, ErrUnexpectedEOF)
		}
		if c != '>' {
			return nil, fmt.Errorf("self-close marker in tag %q is not followed by '>': %w", tag.Name, ErrMalformedTag)
		}
		return tag, nil
	}

	return nil, fmt.Errorf("unexpected character %q after attributes of tag %q: %w", c, tag.Name, ErrMalformedTag)
}
