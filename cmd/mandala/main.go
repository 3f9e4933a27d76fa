// Command mandala opens a window rendering a biometric mandala, optionally
// loading and live-reloading named presets from a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lumafield/mandala"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		width       int
		height      int
		preset      string
		presetsFile string
		watch       bool
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "mandala",
		Short: "Render a biometric-driven mandala",
		Long: "Renders a generative radial visualization driven by six biometric\n" +
			"inputs. Presets can be applied by name and loaded from a YAML file;\n" +
			"with --watch the file is reloaded on change.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if debug {
				var err error
				logger, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync()
			}

			engine := mandala.NewEngine(mandala.EngineConfig{
				Viewport: mandala.Viewport{Width: float64(width), Height: float64(height)},
				Logger:   logger,
			})
			engine.OnNotice = func(msg string) {
				logger.Warn(msg)
			}

			// Preset table updates arrive from the watcher goroutine; drain
			// them on the update thread so the engine stays single-threaded.
			tables := make(chan map[string]mandala.Biometrics, 1)

			if presetsFile != "" {
				table, err := mandala.LoadPresetFile(presetsFile)
				if err != nil {
					return err
				}
				engine.RegisterPresets(table)

				if watch {
					stop, err := mandala.WatchPresets(presetsFile, func(t map[string]mandala.Biometrics) {
						select {
						case tables <- t:
						default:
						}
					})
					if err != nil {
						return err
					}
					defer stop()
				}
			}

			if preset != "" {
				if err := engine.ApplyPreset(preset); err != nil {
					return err
				}
			}

			return mandala.Run(engine, mandala.RunConfig{
				Title:     "Mandala",
				Width:     width,
				Height:    height,
				Resizable: true,
				UpdateFunc: func() error {
					select {
					case t := <-tables:
						engine.RegisterPresets(t)
						logger.Info("presets reloaded", zap.Int("count", len(t)))
					default:
					}
					return nil
				},
			})
		},
	}

	cmd.Flags().IntVar(&width, "width", 800, "window width in pixels")
	cmd.Flags().IntVar(&height, "height", 800, "window height in pixels")
	cmd.Flags().StringVar(&preset, "preset", "", "apply a named preset at startup")
	cmd.Flags().StringVar(&presetsFile, "presets", "", "YAML file of additional presets")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the presets file on change")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable development logging")
	return cmd
}
