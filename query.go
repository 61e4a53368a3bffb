package xmlparser

import "fmt"

// Value paths select a node's text or an attribute's value:
//
//	"root/foo/bar$"      text value of bar
//	"root/foo/bar:attr"  value of bar's attribute attr
//
// Each segment names a child to descend into; the search takes the first
// sibling with a matching name and never backtracks. Node-search paths
// select a node by name with an optional attribute predicate:
//
//	"foo"                first child named foo
//	"foo?attr=value"     first foo carrying attr="value"
//	"foo?attr=value/bar" then the first bar below it
//
// Both grammars re-walk the tree on every call; nothing is cached.

// Resolve evaluates a value path against n. The first segment is matched
// against n itself and its following siblings.
func (n *Node) Resolve(path string) (string, error) {
	return resolveValue(path, n, DefaultBufferLength)
}

// Find evaluates a node-search path against n's children.
func (n *Node) Find(path string) (*Node, error) {
	if n == nil {
		return nil, fmt.Errorf("searching below a nil node: %w", ErrNotFound)
	}
	return findNode(path, n.first, DefaultBufferLength)
}

func resolveValue(path string, root *Node, limit int) (string, error) {
	if root == nil {
		return "", fmt.Errorf("resolving %q below a nil node: %w", path, ErrNotFound)
	}

	n := root
	i := 0
	for {
		start := i
		for i < len(path) && path[i] != '/' && path[i] != ':' && path[i] != '$' {
			i++
		}
		if i-start > limit {
			return "", fmt.Errorf("path segment in %q: %w", path, ErrBufferOverflow)
		}
		if i == len(path) {
			return "", fmt.Errorf("path %q has no ':' or '$' terminator: %w", path, ErrMalformedPath)
		}

		name := path[start:i]
		sep := path[i]
		i++

		for n != nil && n.Name != name {
			n = n.next
		}
		if n == nil {
			return "", fmt.Errorf("no node named %q in path %q: %w", name, path, ErrNotFound)
		}

		switch sep {
		case '/':
			n = n.first

		case '$':
			if value, ok := n.Value(); ok {
				return value, nil
			}
			return "", fmt.Errorf("node %q has no value: %w", name, ErrNotFound)

		case ':':
			attrName := path[i:]
			if len(attrName) > limit {
				return "", fmt.Errorf("attribute name in %q: %w", path, ErrBufferOverflow)
			}
			if attr := findAttribute(n.attr, attrName); attr != nil {
				return attr.Value, nil
			}
			return "", fmt.Errorf("no attribute named %q in path %q: %w", attrName, path, ErrNotFound)
		}
	}
}

func findNode(path string, scope *Node, limit int) (*Node, error) {
	if scope == nil {
		return nil, fmt.Errorf("no node matches %q: %w", path, ErrNotFound)
	}

	i := 0
	for i < len(path) && path[i] != '/' && path[i] != '?' {
		i++
	}
	if i > limit {
		return nil, fmt.Errorf("path segment in %q: %w", path, ErrBufferOverflow)
	}
	name := path[:i]

	var attrName, attrValue string
	predicate := false

	if i < len(path) && path[i] == '?' {
		predicate = true
		i++

		start := i
		for i < len(path) && path[i] != '=' {
			i++
		}
		if i-start > limit {
			return nil, fmt.Errorf("attribute name in %q: %w", path, ErrBufferOverflow)
		}
		if i == len(path) {
			return nil, fmt.Errorf("attribute name in %q is not followed by a value: %w", path, ErrMalformedPath)
		}
		attrName = path[start:i]
		i++

		start = i
		for i < len(path) && path[i] != '/' {
			i++
		}
		if i-start > limit {
			return nil, fmt.Errorf("attribute value in %q: %w", path, ErrBufferOverflow)
		}
		attrValue = path[start:i]
	}

	n := scope
	for n != nil && !matches(n, name, attrName, attrValue, predicate) {
		n = n.next
	}
	if n == nil {
		return nil, fmt.Errorf("no node matches %q: %w", path, ErrNotFound)
	}

	if i == len(path) {
		return n, nil
	}
	// the matched segment is followed by '/': recurse into the children,
	// restarting the scan at the first child
	return findNode(path[i+1:], n.first, limit)
}

func matches(n *Node, name, attrName, attrValue string, predicate bool) bool {
	if n.Name != name {
		return false
	}
	if !predicate {
		return true
	}
	for a := n.attr; a != nil; a = a.next {
		if a.Name == attrName && a.Value == attrValue {
			return true
		}
	}
	return false
}
