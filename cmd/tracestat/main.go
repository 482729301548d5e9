package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/marinescroller/telemetry"
)

func main() {
	top := flag.Int("top", 0, "only print the N most frequent pairs (0 = all)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tracestat [-top N] trace.csv")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to open trace: %v", err)
	}
	defer f.Close()

	records, err := telemetry.Read(f)
	if err != nil {
		log.Fatal(err)
	}

	stats := telemetry.Summarize(records)
	if *top > 0 && *top < len(stats) {
		stats = stats[:*top]
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MOVER\tOBSTACLE\tAXIS\tHITS\tMAX CORRECTION\tTICKS")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.3f\t%d-%d\n", s.Mover, s.Obstacle, s.Axis, s.Hits, s.MaxCorrection, s.FirstTick, s.LastTick)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
	log.Printf("tracestat: %d records, %d pairs", len(records), len(stats))
}
