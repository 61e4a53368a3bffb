package xmlparser

import (
	"fmt"
	"io"
	"strings"
)

// Node is a persistent element of the document tree. A node exclusively
// owns its children; parent and sibling links are non-owning back-references
// used for traversal and detachment only.
type Node struct {
	Name string

	value    string
	hasValue bool
	attr     *Attribute

	parent   *Node
	previous *Node
	next     *Node

	first   *Node
	current *Node
	last    *Node
	cc      int

	freed bool
}

// nodeFromTag builds a node from a tag token, transferring ownership of the
// tag's attributes instead of copying them. The tag's list is empty after.
func nodeFromTag(tag *Tag) *Node {
	n := &Node{Name: tag.Name}
	for attr := tag.PopAttribute(); attr != nil; attr = tag.PopAttribute() {
		n.AddAttribute(attr)
	}
	return n
}

// Value returns the node's text value. The second result is false when no
// text was read between the node's tags.
func (n *Node) Value() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.value, n.hasValue
}

func (n *Node) SetValue(value string) error {
	if n == nil {
		return fmt.Errorf("giving a value to a nil node")
	}
	n.value = value
	n.hasValue = true
	return nil
}

func (n *Node) Parent() *Node      { return n.parent }
func (n *Node) FirstChild() *Node  { return n.first }
func (n *Node) LastChild() *Node   { return n.last }
func (n *Node) NextSibling() *Node { return n.next }
func (n *Node) PrevSibling() *Node { return n.previous }
func (n *Node) ChildCount() int    { return n.cc }

// Attributes returns the head of the node's attribute list.
func (n *Node) Attributes() *Attribute { return n.attr }

// Attr returns the value of the first attribute named name.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	if a := findAttribute(n.attr, name); a != nil {
		return a.Value, true
	}
	return "", false
}

// AddAttribute prepends attr to the node's attribute list.
func (n *Node) AddAttribute(attr *Attribute) error {
	if n == nil {
		return fmt.Errorf("adding an attribute to a nil node")
	}
	if attr == nil {
		return fmt.Errorf("adding a nil attribute to a node")
	}
	n.attr = attr.prepend(n.attr)
	return nil
}

// PopAttribute detaches and returns the node's first attribute, or nil.
func (n *Node) PopAttribute() *Attribute {
	if n == nil || n.attr == nil {
		return nil
	}
	popped := n.attr
	n.attr = popped.next
	popped.next = nil
	return popped
}

// Append attaches child at the end of n's child list. The child must be
// loose: no parent and no siblings.
func (n *Node) Append(child *Node) error {
	if n == nil {
		return fmt.Errorf("adding a child to a nil node")
	}
	if child == nil {
		return fmt.Errorf("adding a nil child to node %q", n.Name)
	}
	if child.parent != nil {
		return fmt.Errorf("node %q already has a parent", child.Name)
	}
	if child.previous != nil || child.next != nil {
		return fmt.Errorf("node %q already has siblings", child.Name)
	}

	child.parent = n
	n.cc++

	if n.last == nil {
		n.first = child
		n.current = child
		n.last = child
		return nil
	}

	n.last.next = child
	child.previous = n.last
	n.last = child
	return nil
}

// Detach unlinks n from its parent and siblings. The subtree below n is
// untouched and the relative order of the remaining siblings is kept.
func (n *Node) Detach() error {
	if n == nil {
		return fmt.Errorf("detaching a nil node")
	}
	if n.parent == nil {
		return fmt.Errorf("node %q has no parent to detach from", n.Name)
	}

	n.parent.cc--
	if n.parent.first == n {
		n.parent.first = n.next
	}
	if n.parent.last == n {
		n.parent.last = n.previous
	}
	if n.parent.current == n {
		if n.next == nil {
			n.parent.current = n.previous
		} else {
			n.parent.current = n.next
		}
	}
	n.parent = nil

	if n.previous != nil {
		n.previous.next = n.next
	}
	if n.next != nil {
		n.next.previous = n.previous
	}
	n.previous = nil
	n.next = nil
	return nil
}

// Destroy tears down n's subtree, children first, then detaches n from its
// parent. Destroying a node twice is an error, never a silent no-op.
func (n *Node) Destroy() error {
	if n == nil {
		return fmt.Errorf("destroying a nil node")
	}
	if n.freed {
		return fmt.Errorf("destroying node %q twice: %w", n.Name, ErrFreedNode)
	}

	for n.cc > 0 {
		if err := n.last.Destroy(); err != nil {
			return err
		}
	}
	if n.parent != nil {
		if err := n.Detach(); err != nil {
			return err
		}
	}

	n.attr = nil
	n.first = nil
	n.current = nil
	n.last = nil
	n.freed = true
	return nil
}

// FindAll collects every descendant named name, in document order.
func (n *Node) FindAll(name string) []*Node {
	nodes := make([]*Node, 0)

	for c := n.first; c != nil; c = c.next {
		if c.Name == name {
			nodes = append(nodes, c)
		}
		nodes = append(nodes, c.FindAll(name)...)
	}

	return nodes
}

// String renders the node alone, without its children.
func (n *Node) String() string {
	if n == nil {
		return ""
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Name)
	for a := n.attr; a != nil; a = a.next {
		fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
	}
	if n.hasValue {
		fmt.Fprintf(&b, ">%s</%s>", n.value, n.Name)
	} else {
		b.WriteString("/>")
	}
	return b.String()
}

// Dump writes the node and its whole subtree to w.
func (n *Node) Dump(w io.Writer) error {
	if n == nil {
		return fmt.Errorf("dumping a nil node")
	}
	return n.dump(w, 0)
}

func (n *Node) dump(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)

	var b strings.Builder
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(n.Name)
	for a := n.attr; a != nil; a = a.next {
		fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
	}

	if n.cc == 0 {
		if n.hasValue {
			fmt.Fprintf(&b, ">%s</%s>\n", n.value, n.Name)
		} else {
			b.WriteString("/>\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(">")
	if n.hasValue {
		b.WriteString(n.value)
	}
	b.WriteString("\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	for c := n.first; c != nil; c = c.next {
		if err := c.dump(w, depth+1); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s</%s>\n", indent, n.Name)
	return err
}

// readValue reads the text sitting between the current position and the
// next tag into n. A leading '<' means no value: the byte is pushed back
// and n is left untouched. The scan stops at '<', end of line or end of
// input and never backtracks into tag territory.
func (p *Parser) readValue(n *Node) error {
	p.scratch.reset()

	// skip ahead to the first printable character
	for {
		c, err := p.r.next()
		if err != nil {
			return nil
		}
		if c == '<' {
			p.r.unread()
			return nil
		}
		if c >= '!' && c <= '~' {
			if err := p.scratch.add(c); err != nil {
				return err
			}
			break
		}
	}

	// same scan, but now spaces count as value characters
	for {
		c, err := p.r.next()
		if err != nil {
			// input ended mid-value; the next tag read reports it
			return nil
		}
		if c == '<' {
			p.r.unread()
			break
		}
		if c == '\n' || c == '\r' {
			break
		}
		if c >= ' ' && c <= '~' {
			if err := p.scratch.add(c); err != nil {
				return err
			}
		}
	}

	return n.SetValue(p.scratch.take())
}
