package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aweris/geoslice"
	"github.com/aweris/geoslice/flight"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <base>",
	Short: "Fly a simulated sensor sweep over a dataset",
	Long: "Run a spiral flight path over the dataset's center, fetching each " +
		"waypoint's window through an LRU cache, and report frame and cache stats.",
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

var (
	simWaypoints int
	simPasses    int
	simFOV       float64
	simRadius    float64
	simCacheCap  int
)

func init() {
	simulateCmd.Flags().IntVar(&simWaypoints, "waypoints", 20, "waypoints per pass")
	simulateCmd.Flags().IntVar(&simPasses, "passes", 2, "times to fly the same path")
	simulateCmd.Flags().Float64Var(&simFOV, "fov", 60, "sensor field of view, degrees")
	simulateCmd.Flags().Float64Var(&simRadius, "radius", 0.001, "spiral radius growth per waypoint, degrees")
	simulateCmd.Flags().IntVar(&simCacheCap, "cache", geoslice.DefaultCacheCapacity, "cache capacity, bytes")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	base := args[0]
	zone := getZone()

	r, err := geoslice.Open(base)
	if err != nil {
		return err
	}
	defer r.Close()

	tr := geoslice.NewTransform(r.Metadata().Transform, zone)
	centerLat, centerLon := tr.PixelToLatLon(r.Width()/2, r.Height()/2)

	path := flight.Spiral(centerLat, centerLon,
		flight.WithWaypoints(simWaypoints),
		flight.WithFOV(simFOV),
		flight.WithRadius(simRadius),
	)
	windows := path.Windows(tr)

	cache := geoslice.NewCache(simCacheCap)
	frames, skipped := 0, 0

	for pass := 0; pass < simPasses; pass++ {
		for _, w := range windows {
			if !w.Valid(r.Width(), r.Height()) {
				skipped++
				continue
			}
			if _, ok := cache.Get(w.X, w.Y, w.Width, w.Height); ok {
				frames++
				continue
			}
			view, err := r.GetWindow(w.X, w.Y, w.Width, w.Height)
			if err != nil {
				return err
			}
			cache.Put(w.X, w.Y, w.Width, w.Height, view.Bytes())
			frames++
		}
	}

	fmt.Fprintf(os.Stderr, "frames: %d  skipped: %d\n", frames, skipped)
	fmt.Fprintf(os.Stderr, "cache:  %d hits, %d misses, %d/%d bytes resident\n",
		cache.Hits(), cache.Misses(), cache.Size(), cache.Capacity())
	return nil
}
