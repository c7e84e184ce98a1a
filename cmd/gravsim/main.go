package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/gravity"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/scenario"
	"github.com/san-kum/gravsim/internal/store"
	"github.com/san-kum/gravsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	steps      int
	frameRate  int
	noValidate bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "N-body gravity simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().IntVar(&steps, "steps", 0, "step count (0 = scenario default)")
	runCmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip NaN/Inf state checks")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored run coordinates",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.ListPresets() {
				sc := scenario.GetPreset(name)
				fmt.Printf("%-16s G=%-12g dt=%-8g bodies=%d\n", name, sc.G, sc.Dt, len(sc.Bodies))
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenario(args []string) (*scenario.Scenario, error) {
	if configFile != "" {
		return scenario.Load(configFile)
	}
	name := "sun-earth-moon"
	if len(args) > 0 {
		name = args[0]
	}
	sc := scenario.GetPreset(name)
	if sc == nil {
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", name, scenario.ListPresets())
	}
	return sc, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}

	sim, err := sc.Build()
	if err != nil {
		return err
	}

	n := sc.Steps
	if steps > 0 {
		n = steps
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := gravity.NewRunner(sim)
	runner.AddMetric(metrics.NewEnergyDrift())
	runner.AddMetric(metrics.NewMomentumDrift())

	fmt.Printf("running %s for %d steps (G=%g, dt=%g)...\n", sc.Name, n, sim.G(), sim.Dt())
	start := time.Now()

	result, err := runner.Run(context.Background(), gravity.RunConfig{
		Steps:         n,
		ValidateState: !noValidate,
		Record:        true,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(sc.Name, sim, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d, simulated time: %.2fs\n", result.StepsTaken, sim.Time())
	fmt.Println("\nmetrics:")
	fmt.Printf("  energy_drift: %.6g\n", result.Metrics["energy_drift"])
	fmt.Printf("  momentum_drift: %.6g\n", result.Metrics["momentum_drift"])

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args)
	if err != nil {
		return err
	}

	sim, err := sc.Build()
	if err != nil {
		return err
	}

	m := viz.NewModel(sim, sc.Build, sc.Name, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSTEPS\tDT\tG\tBODIES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4g\t%.4g\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.G,
			len(run.Bodies),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(states))

	// One plot per body coordinate pair (x and y), six columns per body.
	axisLabels := []string{"x", "y"}
	for bi, name := range meta.Bodies {
		for axis, label := range axisLabels {
			col := bi*6 + axis
			if col >= len(states[0]) {
				continue
			}
			data := make([]float64, len(states))
			for i := range states {
				data[i] = states[i][col]
			}
			graph := asciigraph.Plot(data,
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("%s %s vs time", name, label)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range meta.Bodies {
		header = append(header,
			name+"_x", name+"_y", name+"_z",
			name+"_vx", name+"_vy", name+"_vz")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'g', -1, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	return store.ExportJSONStdout(meta, states, times)
}
