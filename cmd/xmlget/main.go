package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	xmlparser "github.com/fxbalu/xmlParser"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := hclog.New(&hclog.LoggerOptions{
		Name:  "xmlget",
		Level: hclog.LevelFromString(os.Getenv("XMLGET_LOG")),
	})

	c := cli.NewCLI("xmlget", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"get": func() (cli.Command, error) {
			return &getCommand{log: log}, nil
		},
		"node": func() (cli.Command, error) {
			return &nodeCommand{log: log}, nil
		},
		"tree": func() (cli.Command, error) {
			return &treeCommand{log: log}, nil
		},
	}

	exit, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return exit
}

// load opens the document named by -file, honoring the shared flags.
func load(log hclog.Logger, file string, bufLen int) (*xmlparser.Document, error) {
	if file == "" {
		return nil, fmt.Errorf("missing -file")
	}
	return xmlparser.Load(file,
		xmlparser.WithLogger(log),
		xmlparser.WithBufferLength(bufLen),
	)
}

type getCommand struct {
	log hclog.Logger
}

func (c *getCommand) Synopsis() string {
	return "Resolve a value path against a document"
}

func (c *getCommand) Help() string {
	return strings.TrimSpace(`
Usage: xmlget get -file=FILE [options] PATH

  Resolves a value path ("root/foo/bar$" for text, "root/foo/bar:attr" for
  an attribute) and prints the result.

Options:

  -file=FILE     Document to load.
  -type=TYPE     One of string, int, bool, float. Default: string.
  -default=VAL   Printed when the path resolves to nothing.
  -buffer=N      Scratch buffer length. Default: 200.
`)
}

func (c *getCommand) Run(args []string) int {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)
	file := flags.String("file", "", "")
	typ := flags.String("type", "string", "")
	def := flags.String("default", "", "")
	bufLen := flags.Int("buffer", xmlparser.DefaultBufferLength, "")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one PATH argument expected")
		return 1
	}
	path := flags.Arg(0)

	doc, err := load(c.log, *file, *bufLen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer doc.Close()

	switch *typ {
	case "string":
		fmt.Println(doc.GetString(path, *def))
	case "int":
		var d int
		fmt.Sscanf(*def, "%d", &d)
		fmt.Println(doc.GetInt(path, d))
	case "bool":
		fmt.Println(doc.GetBool(path, *def == "true"))
	case "float":
		var d float64
		fmt.Sscanf(*def, "%g", &d)
		fmt.Println(doc.GetFloat(path, d))
	default:
		fmt.Fprintf(os.Stderr, "unknown type %q\n", *typ)
		return 1
	}
	return 0
}

type nodeCommand struct {
	log hclog.Logger
}

func (c *nodeCommand) Synopsis() string {
	return "Find a node by name and attribute predicate"
}

func (c *nodeCommand) Help() string {
	return strings.TrimSpace(`
Usage: xmlget node -file=FILE [options] PATH

  Resolves a node-search path ("foo", "foo?attr=value/bar") against the
  root's children and prints the matched node.

Options:

  -file=FILE     Document to load.
  -buffer=N      Scratch buffer length. Default: 200.
`)
}

func (c *nodeCommand) Run(args []string) int {
	flags := flag.NewFlagSet("node", flag.ContinueOnError)
	file := flags.String("file", "", "")
	bufLen := flags.Int("buffer", xmlparser.DefaultBufferLength, "")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one PATH argument expected")
		return 1
	}

	doc, err := load(c.log, *file, *bufLen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer doc.Close()

	n, err := doc.FindNode(flags.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(n)
	return 0
}

type treeCommand struct {
	log hclog.Logger
}

func (c *treeCommand) Synopsis() string {
	return "Print a document's whole tree"
}

func (c *treeCommand) Help() string {
	return strings.TrimSpace(`
Usage: xmlget tree -file=FILE

  Parses the document and prints the reconstructed tree.

Options:

  -file=FILE     Document to load.
  -buffer=N      Scratch buffer length. Default: 200.
`)
}

func (c *treeCommand) Run(args []string) int {
	flags := flag.NewFlagSet("tree", flag.ContinueOnError)
	file := flags.String("file", "", "")
	bufLen := flags.Int("buffer", xmlparser.DefaultBufferLength, "")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	doc, err := load(c.log, *file, *bufLen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer doc.Close()

	if err := doc.Root().Dump(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
