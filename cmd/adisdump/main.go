// adisdump reads an ADIS16490 through a UART-to-SPI bridge and prints
// scaled burst samples. It is the quickest way to check wiring, bridge
// firmware, and sensor health from a workstation.
//
// Usage:
//
//	adisdump --port /dev/ttyUSB0 --count 100 --interval 10ms
//	adisdump --config rig.yaml --reset
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sensordrivers/go-adis16490/adis"
	"github.com/sensordrivers/go-adis16490/config"
	"github.com/sensordrivers/go-adis16490/logging"
	"github.com/sensordrivers/go-adis16490/protocol"
	"github.com/sensordrivers/go-adis16490/scale"
	"github.com/sensordrivers/go-adis16490/serialbridge"
)

const resetRecovery = 500 * time.Millisecond

var (
	flagConfig   string
	flagPort     string
	flagBaud     int
	flagCount    int
	flagInterval time.Duration
	flagReset    bool
	flagSelfTest bool
)

var rootCmd = &cobra.Command{
	Use:          "adisdump",
	Short:        "Dump scaled ADIS16490 burst samples from a serial-bridged sensor",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagConfig, "config", "c", "", "device profile (YAML)")
	f.StringVarP(&flagPort, "port", "p", "", "bridge serial port (overrides profile)")
	f.IntVarP(&flagBaud, "baud", "b", 0, "bridge baud rate (overrides profile)")
	f.IntVarP(&flagCount, "count", "n", 0, "number of samples to dump (0 = until interrupted)")
	f.DurationVarP(&flagInterval, "interval", "i", 10*time.Millisecond, "sampling interval")
	f.BoolVar(&flagReset, "reset", false, "pulse the hardware reset line before sampling")
	f.BoolVar(&flagSelfTest, "self-test", false, "run the sensor self test before sampling")
}

func run(cmd *cobra.Command, args []string) error {
	profile := config.Default()
	if flagConfig != "" {
		p, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		profile = *p
	}
	if flagPort != "" {
		profile.Bridge.Port = flagPort
	}
	if flagBaud > 0 {
		profile.Bridge.Baud = flagBaud
	}

	log := logrus.New()
	log.SetLevel(logging.ParseLevel(profile.LogLevel))

	bridge, err := serialbridge.Open(profile.Bridge.Port, profile.Bridge.Baud, profile.Bridge.ReadTimeout())
	if err != nil {
		return err
	}
	defer bridge.Close()

	opts := append(profile.Options(),
		adis.WithLogger(logging.New(log)),
		adis.WithResetLine(bridge),
	)
	dev := adis.New(bridge, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagReset {
		if err := dev.Reset(ctx, resetRecovery); err != nil {
			return err
		}
	}

	if err := dev.VerifyProduct(ctx); err != nil {
		return err
	}

	info, err := dev.FirmwareRevision(ctx)
	if err != nil {
		return err
	}
	serial, err := dev.SerialNumber(ctx)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"firmware": fmt.Sprintf("0x%04X", info.Revision),
		"year":     fmt.Sprintf("0x%04X", info.Year),
		"serial":   fmt.Sprintf("0x%04X", serial),
	}).Info("sensor identified")

	if flagSelfTest {
		if err := dev.SelfTest(ctx); err != nil {
			return err
		}
		log.Info("self test passed")
	}

	samples := 0
	err = dev.Poll(ctx, flagInterval, func(s protocol.BurstSample) {
		ps := scale.FromBurst(s)
		fmt.Printf("gyro[%8.3f %8.3f %8.3f]deg/s accel[%9.1f %9.1f %9.1f]mg temp %6.2fC diag 0x%04X\n",
			ps.GyroX, ps.GyroY, ps.GyroZ,
			ps.AccelX, ps.AccelY, ps.AccelZ,
			ps.Temp, uint16(ps.DiagStatus))

		samples++
		if flagCount > 0 && samples >= flagCount {
			stop()
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.WithField("samples", samples).Info("done")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
