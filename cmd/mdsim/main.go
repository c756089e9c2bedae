package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mdsim/internal/analysis"
	"github.com/san-kum/mdsim/internal/config"
	"github.com/san-kum/mdsim/internal/gui"
	"github.com/san-kum/mdsim/internal/metrics"
	"github.com/san-kum/mdsim/internal/sim"
	"github.com/san-kum/mdsim/internal/storage"
	"github.com/san-kum/mdsim/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	particles  int
	box        float64
	epsilon    float64
	sigma      float64
	mass       float64
	cutoff     float64
	seed       int64
	configFile string
	preset     string
	outFile    string
	particle   int
	numRuns    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mdsim",
		Short: "Lennard-Jones molecular dynamics in a reflective box",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mdsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store the trajectory",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the same configuration across consecutive seeds",
		RunE:  runSweep,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&numRuns, "runs", 4, "number of seeded runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one particle's coordinates over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particle, "particle", 0, "particle index")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "displacement and velocity-spectrum analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a trajectory as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	vizCmd := &cobra.Command{
		Use:   "viz [run_id]",
		Short: "play back a stored trajectory in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  vizRun,
	}

	guiCmd := &cobra.Command{
		Use:   "gui [run_id]",
		Short: "play back a stored trajectory in a 3D window",
		Args:  cobra.ExactArgs(1),
		RunE:  guiRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in configurations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, sweepCmd, listCmd, plotCmd, analyzeCmd,
		exportCSVCmd, exportJSONCmd, vizCmd, guiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	cmd.Flags().Float64Var(&box, "box", config.DefaultBox, "cubic box edge length")
	cmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "potential well depth")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "characteristic length")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "particle mass")
	cmd.Flags().Float64Var(&cutoff, "cutoff", 2.5*config.DefaultSigma, "interaction cutoff radius")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in configuration")
}

// resolveConfig layers preset, config file and explicit flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("box") {
		cfg.Box = box
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Sigma = sigma
	}
	if cmd.Flags().Changed("mass") {
		cfg.Mass = mass
	}
	if cmd.Flags().Changed("cutoff") {
		cfg.Cutoff = cutoff
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewEnergyDrift(),
		metrics.NewTemperature(),
		metrics.NewMomentum(),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.New(cfg.SimConfig())
	for _, m := range defaultMetrics() {
		runner.AddMetric(m)
	}

	fmt.Printf("running %d particles for %d steps...\n", cfg.Particles, cfg.Steps)
	start := time.Now()

	result, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.SimConfig(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", numRuns)
	}

	ensemble := sim.NewEnsemble(cfg.SimConfig(), numRuns, cfg.Seed)
	ensemble.Metrics = defaultMetrics

	results, err := ensemble.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tENERGY_DRIFT\tTEMPERATURE\tMOMENTUM")
	for i, result := range results {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\n",
			cfg.Seed+int64(i),
			result.Metrics["energy_drift"],
			result.Metrics["temperature"],
			result.Metrics["momentum"],
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSTEPS\tPARTICLES\tDT\tBOX\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.4f\t%.1f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Particles,
			run.Dt,
			run.Box,
			run.Seed,
		)
	}
	return w.Flush()
}

// loadRun fetches both halves of a stored run, turning a missing trajectory
// into a user-facing hint rather than a bare syscall error.
func loadRun(runID string) (*storage.RunMetadata, sim.Trajectory, error) {
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("run %s not found in %s; run the simulation first", runID, dataDir)
		}
		return nil, nil, err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("trajectory for run %s is missing; run the simulation first", runID)
		}
		return nil, nil, err
	}
	return meta, traj, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if particle < 0 || particle >= meta.Particles {
		return fmt.Errorf("particle index %d out of range [0, %d)", particle, meta.Particles)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", len(traj))

	axes := []string{"x", "y", "z"}
	for axis := 0; axis < 3; axis++ {
		data := make([]float64, len(traj))
		for step := range traj {
			data[step] = traj[step][particle][axis]
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(8), asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("particle %d %s vs time", particle, axes[axis])))
		fmt.Println(chart)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(traj) < 2 {
		return fmt.Errorf("run %s is too short to analyze", meta.ID)
	}

	msd := analysis.MeanSquaredDisplacement(traj)
	fmt.Println(asciigraph.Plot(msd,
		asciigraph.Height(8), asciigraph.Width(70),
		asciigraph.Caption("mean squared displacement")))
	fmt.Println()

	speeds := analysis.Velocities(traj, meta.Dt)
	spectrum := analysis.PowerSpectrum(speeds)
	if len(spectrum) > 1 {
		fmt.Println(asciigraph.Plot(spectrum[1:],
			asciigraph.Height(8), asciigraph.Width(70),
			asciigraph.Caption("mean speed power spectrum (DC removed)")))
	}

	acf := analysis.Autocorrelation(speeds)
	decayed := len(acf)
	for lag, v := range acf {
		if v < 0.5 {
			decayed = lag
			break
		}
	}
	fmt.Printf("\nfinal MSD: %.4f\n", msd[len(msd)-1])
	fmt.Printf("speed autocorrelation drops below 0.5 at lag %d\n", decayed)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	out, closeOut, err := openOut()
	if err != nil {
		return err
	}
	defer closeOut()
	return storage.ExportCSV(out, meta, traj)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	out, closeOut, err := openOut()
	if err != nil {
		return err
	}
	defer closeOut()
	return storage.ExportJSON(out, meta, traj)
}

func openOut() (*os.File, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func vizRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return viz.Run(meta, traj)
}

func guiRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	gui.Run(meta, traj)
	return nil
}
