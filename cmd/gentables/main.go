// Command gentables builds a finite field's discrete-log tables and
// writes them to a cache directory for later loading with
// galois.LoadCachedTables, generalizing the teacher's tablegen.go
// (which hardcoded a choice between a 16-bit and a 32-bit GF(2^k))
// to an arbitrary (p, k, generator) triple.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/aishutin-labs/galoisfactor/galois"
)

func main() {
	p := flag.Uint("p", 2, "field characteristic")
	k := flag.Uint("k", 16, "field extension degree")
	generator := flag.String("generator", "", "comma-separated low-to-high coefficients of the primitive generator polynomial (length k+1, leading coefficient 1)")
	dir := flag.String("dir", "tables", "cache directory to write the log/antilog tables into")
	flag.Parse()

	if *generator == "" {
		fmt.Fprintln(os.Stderr, "gentables: -generator is required")
		os.Exit(1)
	}
	g, err := parseGenerator(*generator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gentables: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Building GF(%d^%d) tables...\n", *p, *k)
	bar := progressbar.Default(-1)
	field, err := galois.NewField(uint32(*p), uint32(*k), g)
	bar.Finish()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gentables: %s\n", err)
		os.Exit(1)
	}

	if err := field.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "gentables: generator failed verification: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("Writing tables to disk...")
	if err := galois.SaveTables(field, *dir); err != nil {
		fmt.Fprintf(os.Stderr, "gentables: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote tables for GF(%d^%d) to %s\n", *p, *k, *dir)
}

func parseGenerator(s string) ([]uint32, error) {
	parts := strings.Split(s, ",")
	g := make([]uint32, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid generator coefficient %q: %w", part, err)
		}
		g[i] = uint32(v)
	}
	return g, nil
}
