package cmd

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/board2go/board2go/cmd/global"
	"github.com/board2go/board2go/internal/configuration"
	"github.com/board2go/board2go/internal/scale"
	"github.com/board2go/board2go/internal/system"
	"github.com/board2go/board2go/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var monitorSamples int

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Plot network and disk throughput",
	Long: `Samples the host like the daemon does and plots the network and disk
throughput. The y axis follows the adaptive scale of each series.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		global.LoadAndValidateConfig()
		config := configuration.CurrentConfig.Metrics

		sampler := system.NewSampler(system.HostSource{}, config)
		network := newHistory(monitorSamples)
		disk := newHistory(monitorSamples)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)

		tick := time.NewTicker(config.PollingRate)
		defer tick.Stop()

		for {
			sample := sampler.Sample(time.Now())
			network.append(math.Max(sample.Upload, sample.Download))
			disk.append(math.Max(sample.DiskRead, sample.DiskWrite))

			// clear screen
			ui.Printf("\033[H\033[2J")
			ui.Printfln("CPU %.1f%%  RAM %.1f%%  Disk %.1f%%", sample.CpuPercent, sample.RamPercent, sample.DiskPercent)
			ui.Printfln("%s", plotHistory(network, sampler.Network.State(),
				fmt.Sprintf("%s down %.2f MB/s, up %.2f MB/s", sample.Interface, sample.Download, sample.Upload)))
			ui.Printfln("%s", plotHistory(disk, sampler.Disk.State(),
				fmt.Sprintf("disk read %.2f MB/s, write %.2f MB/s", sample.DiskRead, sample.DiskWrite)))

			select {
			case <-sig:
				return
			case <-tick.C:
			}
		}
	},
}

// history keeps the last values of a series for plotting.
type history struct {
	size   int
	values []float64
}

func newHistory(size int) *history {
	return &history{size: size}
}

func (h *history) append(value float64) {
	h.values = append(h.values, value)
	if len(h.values) > h.size {
		h.values = h.values[len(h.values)-h.size:]
	}
}

func plotHistory(h *history, s scale.State, caption string) string {
	return asciigraph.Plot(h.values,
		asciigraph.Height(8),
		asciigraph.Width(h.size),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(s.CurrentMax),
		asciigraph.Caption(fmt.Sprintf("%s (scale %.2f)", caption, s.CurrentMax)),
	)
}

func init() {
	monitorCmd.Flags().IntVarP(&monitorSamples, "samples", "n", 60, "Number of samples to plot")
	rootCmd.AddCommand(monitorCmd)
}
