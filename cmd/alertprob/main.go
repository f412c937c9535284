// alertprob converts a detection threshold plus modifiers into the
// probability that a submarine is alerted during a turn.
//
// Usage:
//
//	alertprob [flags] THRESHOLD
//
// Each detection point rolls 2d6 plus its own modifier against the
// threshold; the submarine makes one additional check at threshold minus
// its modifier. The alert probability is printed to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ntguardian/TacSubGame/internal/alert"
)

func main() {
	subMod := flag.Int("submod", 0, "Submarine-side modifier")
	dpMod := flag.String("dpmod", "0,0", "Comma-separated detection point modifiers (empty for none)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] THRESHOLD\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	threshold, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalf("Invalid threshold %q: %v", flag.Arg(0), err)
	}

	mods, err := alert.ParseModifiers(*dpMod)
	if err != nil {
		log.Fatalf("Invalid detection point modifiers: %v", err)
	}

	fmt.Println(alert.Probability(threshold, *subMod, mods))
}
