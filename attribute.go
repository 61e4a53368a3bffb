package xmlparser

import "fmt"

// Attribute is a single name/value pair. Attributes of a tag or node form a
// singly-linked list; adding always prepends, so list order is not source
// order. Duplicate names are allowed and lookups return the first match.
type Attribute struct {
	Name  string
	Value string
	next  *Attribute
}

// Next returns the attribute following a in its list, or nil.
func (a *Attribute) Next() *Attribute {
	if a == nil {
		return nil
	}
	return a.next
}

func (a *Attribute) SetName(name string) error {
	if a == nil {
		return fmt.Errorf("giving a name to a nil attribute")
	}
	a.Name = name
	return nil
}

func (a *Attribute) SetValue(value string) error {
	if a == nil {
		return fmt.Errorf("giving a value to a nil attribute")
	}
	a.Value = value
	return nil
}

// CopyFrom overwrites a's name and value in place with src's. The link to
// the rest of the list is kept.
func (a *Attribute) CopyFrom(src *Attribute) error {
	if a == nil {
		return fmt.Errorf("copying into a nil attribute")
	}
	if src == nil {
		return fmt.Errorf("copying from a nil attribute")
	}
	a.Name = src.Name
	a.Value = src.Value
	return nil
}

// prepend pushes a onto the list headed by first and returns the new head.
func (a *Attribute) prepend(first *Attribute) *Attribute {
	a.next = first
	return a
}

// findAttribute returns the first attribute named name in the list headed
// by first.
func findAttribute(first *Attribute, name string) *Attribute {
	for a := first; a != nil; a = a.next {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// readAttribute reads one name="value" pair. The cursor must sit on the
// first character of the name; the closing quote is consumed.
func (p *Parser) readAttribute() (*Attribute, error) {
	p.scratch.reset()

	for {
		c, err := p.r.next()
		if err != nil {
			return nil, fmt.Errorf("reading attribute name: %w", ErrUnexpectedEOF)
		}
		if c == '=' {
			break
		}
		if c == '>' || c == '/' || c == ' ' {
			return nil, fmt.Errorf("attribute name is not followed by a quoted value: %w", ErrMalformedTag)
		}
		if err := p.scratch.add(c); err != nil {
			return nil, err
		}
	}

	c, err := p.r.next()
	if err != nil {
		return nil, fmt.Errorf("reading attribute value: %w", ErrUnexpectedEOF)
	}
	if c != '"' {
		return nil, fmt.Errorf("attribute value is not quoted: %w", ErrMalformedTag)
	}

	attr := &Attribute{Name: p.scratch.take()}

	for {
		c, err := p.r.next()
		if err != nil {
			return nil, fmt.Errorf("reading attribute value: %w", ErrUnexpectedEOF)
		}
		if c == '"' {
			break
		}
		if err := p.scratch.add(c); err != nil {
			return nil, err
		}
	}
	attr.Value = p.scratch.take()

	return attr, nil
}
