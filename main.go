package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"

	"github.com/olivierh59500/backdrop/internal/config"
	"github.com/olivierh59500/backdrop/internal/engine"
	"github.com/olivierh59500/backdrop/internal/game"
	"github.com/olivierh59500/backdrop/internal/report"
	"github.com/olivierh59500/backdrop/internal/surface"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	particles  int
	seed       int64
	flow       float64
	frames     int
	statFrames int
	width      int
	height     int
	outFile    string
	writeFile  string
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backdrop",
		Short: "animated grid and particle background",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return game.Run(cfg, configFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&particles, "particles", config.DefaultParticleCount, "number of particles")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().Float64Var(&flow, "flow", 0, "noise flow field strength (0 = off)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames headlessly and write the last one as PNG",
		RunE:  renderFrames,
	}
	renderCmd.Flags().IntVar(&frames, "frames", 120, "frames to simulate")
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWindowWidth, "surface width")
	renderCmd.Flags().IntVar(&height, "height", config.DefaultWindowHeight, "surface height")
	renderCmd.Flags().StringVar(&outFile, "out", "backdrop.png", "output PNG")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "simulate frames and plot connections per frame",
		RunE:  frameStats,
	}
	statsCmd.Flags().IntVar(&statFrames, "frames", 600, "frames to simulate")
	statsCmd.Flags().IntVar(&width, "width", config.DefaultWindowWidth, "surface width")
	statsCmd.Flags().IntVar(&height, "height", config.DefaultWindowHeight, "surface height")
	statsCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "plot height in rows")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  showConfig,
	}
	configCmd.Flags().StringVar(&writeFile, "write", "", "also save the configuration to this file")

	rootCmd.AddCommand(renderCmd, statsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads --config when given and lets explicit flags override it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.ParticleCount = particles
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("flow") {
		cfg.Flow.Strength = flow
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func renderFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg, width, height)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	canvas := surface.NewCanvas(width, height)
	var s engine.Stepper
	eng.Animate(canvas, &s)
	if err := s.Run(ctx, frames); err != nil {
		return err
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, canvas.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", outFile, err)
	}
	log.Printf("wrote frame %d to %s", eng.Frame(), outFile)
	return nil
}

func frameStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	stats := make([]engine.Stats, 0, statFrames)
	eng, err := engine.New(cfg, width, height, engine.WithFrameHook(func(st engine.Stats) {
		stats = append(stats, st)
	}))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	var s engine.Stepper
	eng.Animate(surface.Discard{W: width, H: height}, &s)
	if err := s.Run(ctx, statFrames); err != nil {
		return err
	}

	fmt.Print(report.Frames(stats, 72, plotHeight))
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Println(report.Config(cfg))
	fmt.Print(string(data))

	if writeFile != "" {
		if err := config.Save(writeFile, cfg); err != nil {
			return err
		}
		log.Printf("saved config to %s", writeFile)
	}
	return nil
}
