// Command egcdemo builds a random edge-group instance and reports how many
// colors each coloring strategy needs against the instance's lower bound.
//
// Example:
//
//	egcdemo -inputs 12 -outputs 16 -edges 80 -groups 3 -seed 7
//	egcdemo -strategy flow -loglevel verbose
package main

import (
	"flag"
	"fmt"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/katalvlaran/grafix/builder"
	"github.com/katalvlaran/grafix/egcolor"
)

var (
	niFlag     = flag.Int("inputs", 10, "number of inputs")
	noFlag     = flag.Int("outputs", 12, "number of outputs")
	mFlag      = flag.Int("edges", 60, "number of edges")
	groupsFlag = flag.Int("groups", 3, "max groups per input")
	seedFlag   = flag.Int64("seed", 1, "rng seed (0 = fixed default)")
	stratFlag  = flag.String("strategy", "all", "greedy|layered|random|flow|all")
	printFlag  = flag.Bool("print", false, "print the instance and the best coloring")
)

// strategies in report order.
var strategies = []struct {
	name  string
	strat egcolor.Strategy
}{
	{"greedy", egcolor.GreedyStrategy},
	{"layered", egcolor.LayeredStrategy},
	{"random", egcolor.RandomStrategy(0)},
	{"flow", egcolor.FlowStrategy},
}

func main() {
	cli.Main()

	g, err := builder.RandomBigraph(*niFlag, *noFlag, *mFlag, *seedFlag)
	if err != nil {
		log.Fatalf("building graph: %v", err)
	}
	eg, err := builder.RandomGroups(g, *groupsFlag, *seedFlag)
	if err != nil {
		log.Fatalf("grouping edges: %v", err)
	}
	log.Infof("instance: %d inputs, %d outputs, %d edges, %d groups",
		g.Ni(), g.No(), g.M(), eg.NumGroups())
	if *printFlag {
		fmt.Println(eg)
	}

	lb := egcolor.LowerBound(eg)
	ub := egcolor.UpperBound(eg)
	log.Infof("color bounds: lower %d, greedy upper %d", lb, ub)

	var best *egcolor.EdgeGroupColors
	bestC := 0
	ran := false
	for _, s := range strategies {
		if *stratFlag != "all" && *stratFlag != s.name {
			continue
		}
		ran = true
		seeded := s.strat
		if s.name == "random" {
			seeded = egcolor.RandomStrategy(*seedFlag)
		}
		egc, colors, ok := egcolor.Solve(eg, seeded, egcolor.SolveOptions{Seed: *seedFlag})
		if !ok {
			log.Warnf("%-8s no complete coloring within %d colors", s.name, colors)

			continue
		}
		fmt.Printf("%-8s %d colors (lower bound %d)\n", s.name, colors, lb)
		if best == nil || colors < bestC {
			best, bestC = egc, colors
		}
	}
	if !ran {
		log.Errf("unknown strategy %q", *stratFlag)
		os.Exit(1)
	}
	if *printFlag && best != nil {
		fmt.Println(best)
	}
}
