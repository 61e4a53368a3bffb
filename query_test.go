package xmlparser

import (
	"errors"
	"strings"
	"testing"
)

func parseString(t *testing.T, in string) *Node {
	t.Helper()
	root, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestResolveValue(t *testing.T) {
	root := parseString(t, "<a><b>42</b></a>")

	value, err := root.Resolve("a/b$")
	if err != nil {
		t.Fatal(err)
	}
	if value != "42" {
		t.Fatalf("got %q, want %q", value, "42")
	}
}

func TestResolveAttribute(t *testing.T) {
	root := parseString(t, `<a x="1" y="2"/>`)

	value, err := root.Resolve("a:x")
	if err != nil {
		t.Fatal(err)
	}
	if value != "1" {
		t.Fatalf("got %q, want %q", value, "1")
	}

	if _, err := root.Resolve("a:z"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestResolveValueNotFound(t *testing.T) {
	root := parseString(t, "<a><b>42</b></a>")

	cases := []string{
		"a/c$", // no such child
		"c/b$", // first segment misses the root
		"a$",   // root has no value
		"a/b/x$",
	}
	for _, path := range cases {
		if _, err := root.Resolve(path); !errors.Is(err, ErrNotFound) {
			t.Errorf("path %q: got %v, want ErrNotFound", path, err)
		}
	}
}

func TestResolveValueFirstMatch(t *testing.T) {
	root := parseString(t, "<a><b>1</b><b>2</b></a>")

	value, err := root.Resolve("a/b$")
	if err != nil {
		t.Fatal(err)
	}
	if value != "1" {
		t.Fatalf("got %q, want the first match", value)
	}
}

func TestResolveValueMalformedPath(t *testing.T) {
	root := parseString(t, "<a><b>42</b></a>")

	for _, path := range []string{"a/b", "a", ""} {
		if _, err := root.Resolve(path); !errors.Is(err, ErrMalformedPath) {
			t.Errorf("path %q: got %v, want ErrMalformedPath", path, err)
		}
	}
}

func TestFindNodeByPredicate(t *testing.T) {
	root := parseString(t, `<root><a x="2"/><a x="1"/></root>`)

	n, err := root.Find("a?x=1")
	if err != nil {
		t.Fatal(err)
	}
	if n != root.LastChild() {
		t.Fatal("predicate matched the wrong sibling")
	}

	if _, err := root.Find("a?x=9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestFindNodeWithoutPredicate(t *testing.T) {
	root := parseString(t, `<root><a x="2"/><a x="1"/></root>`)

	n, err := root.Find("a")
	if err != nil {
		t.Fatal(err)
	}
	if n != root.FirstChild() {
		t.Fatal("bare name must take the first sibling match")
	}
}

func TestFindNodeNested(t *testing.T) {
	root := parseString(t, `<root><group id="g1"><item/></group><group id="g2"><item name="deep"/></group></root>`)

	n, err := root.Find("group?id=g2/item")
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := n.Attr("name"); name != "deep" {
		t.Fatalf("recursed into the wrong group, got item %q", name)
	}

	// every segment restarts at the first child of the matched node
	if _, err := root.Find("group?id=g1/item/sub"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestFindNodeMalformedPredicate(t *testing.T) {
	root := parseString(t, `<root><a x="1"/></root>`)

	if _, err := root.Find("a?x"); !errors.Is(err, ErrMalformedPath) {
		t.Fatalf("got %v, want ErrMalformedPath", err)
	}
}

func TestQueriesDoNotMutate(t *testing.T) {
	root := parseString(t, "<a><b>42</b><b>43</b></a>")

	// repeated queries re-walk the tree from scratch
	for i := 0; i < 3; i++ {
		value, err := root.Resolve("a/b$")
		if err != nil || value != "42" {
			t.Fatalf("run %d: got %q, %v", i, value, err)
		}
		n, err := root.Find("b")
		if err != nil || n != root.FirstChild() {
			t.Fatalf("run %d: find drifted", i)
		}
	}
}
