package xmlparser

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "xmlParser/1.0" {
			t.Errorf("user agent %q", ua)
		}
		w.Write([]byte(Declaration + "\n<feed><entry>one</entry></feed>\n"))
	}))
	defer srv.Close()

	client := NewClient()
	doc, err := client.FetchParse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	if doc.Path != srv.URL {
		t.Fatalf("path %q", doc.Path)
	}
	if got := doc.GetString("feed/entry$", ""); got != "one" {
		t.Fatalf("got %q, want %q", got, "one")
	}
}

func TestFetchParseWithoutDeclaration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<feed><entry>one</entry></feed>"))
	}))
	defer srv.Close()

	doc, err := NewClient().FetchParse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	if doc.Root().Name != "feed" {
		t.Fatalf("root %q", doc.Root().Name)
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient()
	client.SetRetryMax(0)

	if _, err := client.Fetch(srv.URL); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestClientUserAgent(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("User-Agent")
		w.Write([]byte("<a/>"))
	}))
	defer srv.Close()

	client := NewClient()
	client.SetUserAgent("custom/2.0")
	if _, err := client.Fetch(srv.URL); err != nil {
		t.Fatal(err)
	}
	if seen != "custom/2.0" {
		t.Fatalf("user agent %q", seen)
	}
}
