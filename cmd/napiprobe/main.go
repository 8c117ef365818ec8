// Command napiprobe resolves the Node-API surface of a library and
// reports which operations it exports.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/symbols"
)

func main() {
	var (
		libPath     = flag.String("lib", "", "Library exporting Node-API (default: this executable)")
		method      = flag.String("method", "", "Probe one operation by export or short name")
		list        = flag.Bool("list", false, "List every operation and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log symbol resolution")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	lib, err := open(*libPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer lib.Close()

	api, err := napi.Bind(lib, napi.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if err := runInteractive(api, lib.Path()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		fmt.Fprintln(os.Stderr, "stdout is not a terminal, listing instead")
		*list = true
	}

	if *method != "" {
		if err := probeOne(os.Stdout, api, *method); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	probes := probeAll(api)
	fmt.Printf("Library: %s\n", lib.Path())
	if *list {
		fmt.Println()
		writeTable(os.Stdout, probes)
		return
	}
	fmt.Printf("Resolved %d of %d operations\n", resolvedCount(probes), len(probes))
	fmt.Println("Use -list to see every operation.")
}

func open(path string) (*symbols.NativeLibrary, error) {
	if path == "" {
		return symbols.Self()
	}
	return symbols.Open(path)
}
