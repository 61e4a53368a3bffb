package main

import (
	"log"
	"os"

	"github.com/hashicorp/go-hclog"

	xmlparser "github.com/fxbalu/xmlParser"
)

func main() {
	doc, err := xmlparser.Load("config.xml",
		xmlparser.WithLogger(hclog.Default()),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer doc.Close()

	// typed lookups fall back to the given default
	width := doc.GetInt("config/window/width$", 800)
	title := doc.GetString("config/window:title", "untitled")
	debug := doc.GetBool("config/debug$", false)
	println(width, title, debug)

	// node search with an attribute predicate
	if screen, err := doc.FindNode("screen?id=main"); err == nil {
		screen.Dump(os.Stdout)
	}
}
