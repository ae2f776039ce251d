package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/lintang-b-s/nearest-pointset/pkg/datastructure"
	pointset_di "github.com/lintang-b-s/nearest-pointset/pkg/di/pointset"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	numPoints  = flag.Int("n", 100000, "number of random points in the point set")
	numQueries = flag.Int("q", 10000, "number of random nearest queries")
	seed       = flag.Uint64("seed", 1, "random seed for points and queries")
	lo         = flag.Float64("min", 0, "minimum coordinate")
	hi         = flag.Float64("max", 1000, "maximum coordinate")
)

func newBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func main() {
	flag.Parse()

	points := pointset_di.RandomPoints(*seed, *numPoints, *lo, *hi)
	queries := pointset_di.RandomPoints(*seed+1, *numQueries, *lo, *hi)

	start := time.Now()
	naive, err := datastructure.NewNaivePointSet(points)
	if err != nil {
		log.Fatal(err)
	}
	naiveBuild := time.Since(start)

	start = time.Now()
	kd, err := datastructure.NewKDTreePointSet(points)
	if err != nil {
		log.Fatal(err)
	}
	kdBuild := time.Since(start)

	fmt.Println("")
	bar := newBar(len(queries), "[cyan][1/2]Querying kd-tree...")
	kdAnswers := make([]datastructure.Point, len(queries))
	start = time.Now()
	for i, q := range queries {
		kdAnswers[i], err = kd.Nearest(q.X, q.Y)
		if err != nil {
			log.Fatal(err)
		}
		bar.Add(1)
	}
	kdQuery := time.Since(start)
	fmt.Println("")

	bar = newBar(len(queries), "[cyan][2/2]Querying linear scan...")
	mismatch := 0
	start = time.Now()
	for i, q := range queries {
		want, err := naive.Nearest(q.X, q.Y)
		if err != nil {
			log.Fatal(err)
		}
		if want.DistanceSquared(q) != kdAnswers[i].DistanceSquared(q) {
			mismatch++
		}
		bar.Add(1)
	}
	naiveQuery := time.Since(start)
	fmt.Println("")

	fmt.Printf("points: %d, queries: %d, kd-tree height: %d\n", kd.Size(), len(queries), kd.Height())
	fmt.Printf("build   kd-tree: %v, linear scan: %v\n", kdBuild, naiveBuild)
	fmt.Printf("queries kd-tree: %v, linear scan: %v\n", kdQuery, naiveQuery)
	if mismatch > 0 {
		log.Fatalf("%d kd-tree answers differ from linear scan", mismatch)
	}
	fmt.Println("all kd-tree answers match linear scan")
}
