package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Alper-bit/QTunelling-API/internal/analysis"
	"github.com/Alper-bit/QTunelling-API/internal/config"
	"github.com/Alper-bit/QTunelling-API/internal/encode"
	"github.com/Alper-bit/QTunelling-API/internal/qsim"
	"github.com/Alper-bit/QTunelling-API/internal/server"
	"github.com/Alper-bit/QTunelling-API/internal/storage"
	"github.com/Alper-bit/QTunelling-API/internal/viz"
)

var (
	dataDir    string
	configFile string
	addr       string

	mass         float64
	hbar         float64
	xmin         float64
	xmax         float64
	gridN        int
	momentum     float64
	sigma        float64
	x0           float64
	barrierStart float64
	barrierEnd   float64
	dt           float64
	tMax         float64
	numSteps     int
	maxFrames    int

	saveRun      bool
	outFile      string
	jsonOut      bool
	plotMomentum bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qtunnel",
		Short: "quantum wave packet tunneling simulator",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qtunnel", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one simulation and print a summary",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")
	runCmd.Flags().StringVar(&outFile, "out", "", "write the binary payload to a file")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the legacy JSON payload to stdout")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the final probability density",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}
	addParamFlags(plotCmd)
	plotCmd.Flags().BoolVar(&plotMomentum, "momentum", false, "plot the momentum-space density instead")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play the evolution in the terminal",
		RunE:  runLive,
	}
	addParamFlags(liveCmd)

	rootCmd.AddCommand(serveCmd, runCmd, listCmd, plotCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", qsim.DefaultMass, "particle mass")
	cmd.Flags().Float64Var(&hbar, "hbar", qsim.DefaultHbar, "reduced Planck constant")
	cmd.Flags().Float64Var(&xmin, "xmin", qsim.DefaultXMin, "domain lower bound")
	cmd.Flags().Float64Var(&xmax, "xmax", qsim.DefaultXMax, "domain upper bound")
	cmd.Flags().IntVar(&gridN, "n", qsim.DefaultN, "grid intervals")
	cmd.Flags().Float64Var(&momentum, "momentum", qsim.DefaultMomentum, "initial momentum")
	cmd.Flags().Float64Var(&sigma, "sigma", qsim.DefaultSigma, "initial packet width")
	cmd.Flags().Float64Var(&x0, "x0", qsim.DefaultX0, "initial center position")
	cmd.Flags().Float64Var(&barrierStart, "barrier-start", qsim.DefaultBarrierLo, "barrier start")
	cmd.Flags().Float64Var(&barrierEnd, "barrier-end", qsim.DefaultBarrierHi, "barrier end")
	cmd.Flags().Float64Var(&dt, "dt", qsim.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&tMax, "tmax", qsim.DefaultTMax, "total simulated time")
	cmd.Flags().IntVar(&numSteps, "steps", 0, "time sample count (0 derives from dt and tmax)")
	cmd.Flags().IntVar(&maxFrames, "max-frames", qsim.DefaultMaxFrames, "frame budget after downsampling")
}

func paramsFromFlags() qsim.SimulationParameters {
	return qsim.SimulationParameters{
		Mass:         mass,
		Hbar:         hbar,
		XMin:         xmin,
		XMax:         xmax,
		N:            gridN,
		Momentum:     momentum,
		Sigma:        sigma,
		X0:           x0,
		BarrierStart: barrierStart,
		BarrierEnd:   barrierEnd,
		Dt:           dt,
		TMax:         tMax,
		NumTimeSteps: numSteps,
		MaxFrames:    maxFrames,
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, logger).Start(ctx)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := qsim.NewEngine(cfg.Engine.BarrierHeight)
	result, err := engine.Run(paramsFromFlags())
	if err != nil {
		return err
	}

	if jsonOut {
		body, err := encode.Legacy{}.Encode(result)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(body)
		return err
	}

	payload, err := encode.Binary{}.Encode(result)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := os.WriteFile(outFile, payload, 0644); err != nil {
			return err
		}
		fmt.Printf("payload written to %s (%d bytes)\n", outFile, len(payload))
	}

	last := result.Frames[len(result.Frames)-1]
	split := analysis.Split(result, last)

	fmt.Printf("grid points: %d (interior %d)\n", len(result.X), len(result.Interior))
	fmt.Printf("frames: %d (t up to %.4f)\n", len(result.Frames), last.Time)
	fmt.Printf("barrier: [%g, %g] height %g\n", result.Params.BarrierStart, result.Params.BarrierEnd, result.BarrierHeight)
	fmt.Printf("final norm: %.6f\n", qsim.Norm(last.Psi, result.Step))
	fmt.Printf("reflected: %.4f  inside: %.4f  transmitted: %.4f\n", split.Reflected, split.Inside, split.Transmitted)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Params:        result.Params,
			BarrierHeight: result.BarrierHeight,
			GridSize:      len(result.Interior),
			FrameCount:    len(result.Frames),
			Reflected:     split.Reflected,
			Transmitted:   split.Transmitted,
		}, payload)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tN\tFRAMES\tMOMENTUM\tREFLECTED\tTRANSMITTED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\t%.4f\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Params.N,
			run.FrameCount,
			run.Params.Momentum,
			run.Reflected,
			run.Transmitted,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	psi, step, err := finalFrame(args)
	if err != nil {
		return err
	}

	var data []float64
	caption := "final probability density |psi|^2"
	if plotMomentum {
		_, data = analysis.MomentumDensity(psi, step)
		caption = "momentum-space density |phi(k)|^2"
	} else {
		data = qsim.Density(psi)
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(90),
		asciigraph.Caption(caption),
	))
	return nil
}

// finalFrame returns the last-frame wavefunction either from a saved run or
// from a fresh computation over the parameter flags.
func finalFrame(args []string) ([]complex128, float64, error) {
	if len(args) == 1 {
		st := storage.New(dataDir)
		meta, err := st.Load(args[0])
		if err != nil {
			return nil, 0, err
		}
		raw, err := st.LoadPayload(args[0])
		if err != nil {
			return nil, 0, err
		}
		payload, err := encode.DecodeBinary(raw)
		if err != nil {
			return nil, 0, err
		}
		if len(payload.Frames) == 0 {
			return nil, 0, fmt.Errorf("run %s has no frames", args[0])
		}
		last := payload.Frames[len(payload.Frames)-1]
		psi := make([]complex128, len(last))
		for i, c := range last {
			psi[i] = complex128(c)
		}
		step := (meta.Params.XMax - meta.Params.XMin) / float64(meta.Params.N)
		return psi, step, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, 0, err
	}
	result, err := qsim.NewEngine(cfg.Engine.BarrierHeight).Run(paramsFromFlags())
	if err != nil {
		return nil, 0, err
	}
	return result.Frames[len(result.Frames)-1].Psi, result.Step, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	result, err := qsim.NewEngine(cfg.Engine.BarrierHeight).Run(paramsFromFlags())
	if err != nil {
		return err
	}
	return viz.Run(result)
}
