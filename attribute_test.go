package xmlparser

import (
	"strings"
	"testing"
)

func TestAttributePrependOrder(t *testing.T) {
	tag := &Tag{Name: "a"}
	tag.AddAttribute(&Attribute{Name: "one", Value: "1"})
	tag.AddAttribute(&Attribute{Name: "two", Value: "2"})

	if tag.Attributes().Name != "two" {
		t.Fatalf("expected last added attribute first, got %q", tag.Attributes().Name)
	}
	if tag.Attributes().Next().Name != "one" {
		t.Fatalf("expected %q second, got %q", "one", tag.Attributes().Next().Name)
	}
}

func TestAttributeDuplicatesAllowed(t *testing.T) {
	n := &Node{Name: "a"}
	n.AddAttribute(&Attribute{Name: "x", Value: "2"})
	n.AddAttribute(&Attribute{Name: "x", Value: "1"})

	// first match wins, duplicates are a legal input shape
	value, ok := n.Attr("x")
	if !ok || value != "1" {
		t.Fatalf("expected first match %q, got %q (found=%v)", "1", value, ok)
	}
}

func TestPopAttributeTransfersOwnership(t *testing.T) {
	tag := &Tag{Name: "a"}
	tag.AddAttribute(&Attribute{Name: "x", Value: "1"})
	tag.AddAttribute(&Attribute{Name: "y", Value: "2"})

	n := nodeFromTag(tag)

	if tag.Attributes() != nil {
		t.Fatal("tag still owns attributes after transfer")
	}
	// double reversal: node ends up in source order
	if n.Attributes().Name != "x" || n.Attributes().Next().Name != "y" {
		t.Fatalf("wrong attribute order: %s, %s", n.Attributes().Name, n.Attributes().Next().Name)
	}
	if n.Attributes().Next().Next() != nil {
		t.Fatal("popped attribute kept its old link")
	}
}

func TestAttributeCopyFrom(t *testing.T) {
	dst := &Attribute{Name: "old", Value: "old", next: &Attribute{Name: "tail"}}
	src := &Attribute{Name: "new", Value: "fresh"}

	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	if dst.Name != "new" || dst.Value != "fresh" {
		t.Fatalf("copy missed: %s=%q", dst.Name, dst.Value)
	}
	if dst.Next() == nil || dst.Next().Name != "tail" {
		t.Fatal("copy must not touch the list link")
	}
}

func TestAttributeNilTargets(t *testing.T) {
	var a *Attribute

	if err := a.SetName("x"); err == nil {
		t.Error("SetName on nil attribute must fail")
	}
	if err := a.SetValue("x"); err == nil {
		t.Error("SetValue on nil attribute must fail")
	}
	if err := a.CopyFrom(&Attribute{}); err == nil {
		t.Error("CopyFrom into nil attribute must fail")
	}
	if err := (&Attribute{}).CopyFrom(nil); err == nil {
		t.Error("CopyFrom nil source must fail")
	}
}

func TestReadAttribute(t *testing.T) {
	p := NewParser(strings.NewReader(`name="value"`))

	attr, err := p.readAttribute()
	if err != nil {
		t.Fatal(err)
	}
	if attr.Name != "name" || attr.Value != "value" {
		t.Fatalf("got %s=%q", attr.Name, attr.Value)
	}
}

func TestReadAttributeMalformed(t *testing.T) {
	for _, in := range []string{`name`, `name=value"`, `name="value`, `name>`} {
		p := NewParser(strings.NewReader(in))
		if _, err := p.readAttribute(); err == nil {
			t.Errorf("input %q: expected an error", in)
		}
	}
}
