// Command ev3ctl drives a Lego EV3 brick over an RFCOMM serial link.
//
// Usage:
//
//	ev3ctl [flags]
//
// Flags:
//
//	-config string      Configuration file path
//	-device string      Serial device node (default from config, /dev/rfcomm0)
//	-baud int           Baud rate
//	-layer int          Daisy-chain layer 0-3
//	-capture string     Write a protocol capture to this file
//	-log-level string   Log level: debug, info, warn, error
//	-log-format string  Log format: text, json
//	-keepalive duration Keep-alive probe interval, 0 disables
//	-exec string        Run ';'-separated commands and exit
//
// Examples:
//
//	# Interactive shell on the default device
//	ev3ctl
//
//	# Spin motor A one revolution and beep, recording the session
//	ev3ctl -capture run.ev3log -exec "move A 50 360; tone 440 200"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/ev3-protocol/ev3-go/cmd/ev3ctl/interactive"
	"github.com/ev3-protocol/ev3-go/pkg/config"
	"github.com/ev3-protocol/ev3-go/pkg/connection"
	"github.com/ev3-protocol/ev3-go/pkg/ev3"
	"github.com/ev3-protocol/ev3-go/pkg/log"
	"github.com/ev3-protocol/ev3-go/pkg/transport"
)

var (
	configPath  = flag.String("config", "", "Configuration file path")
	device      = flag.String("device", "", "Serial device node")
	baud        = flag.Int("baud", 0, "Baud rate")
	layer       = flag.Int("layer", 0, "Daisy-chain layer 0-3")
	capturePath = flag.String("capture", "", "Write a protocol capture to this file")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat   = flag.String("log-format", "", "Log format: text, json")
	keepAlive   = flag.Duration("keepalive", 0, "Keep-alive probe interval, 0 disables")
	execLine    = flag.String("exec", "", "Run ';'-separated commands and exit")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.Logging.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	connID := uuid.NewString()

	var capture log.Logger
	if cfg.Capture.Path != "" {
		fl, err := log.NewFileLogger(cfg.Capture.Path)
		if err != nil {
			return fmt.Errorf("failed to open capture file: %w", err)
		}
		defer fl.Close()
		capture = fl
		logger.Info("capturing protocol", "path", cfg.Capture.Path, "conn_id", connID)
	}
	if strings.EqualFold(cfg.Logging.Level, "debug") {
		capture = log.NewMultiLogger(capture, log.NewSlogAdapter(logger))
	}

	tr := transport.NewSerialTransport(transport.SerialConfig{
		Device:   cfg.Serial.Device,
		BaudRate: cfg.Serial.BaudRate,
	})
	tr.SetLogger(logger)
	tr.SetCapture(capture, connID)

	brick := ev3.New(ev3.Config{
		Transport: tr,
		Layer:     cfg.Serial.Layer,
		Capture:   capture,
		Logger:    logger,
		Connection: connection.Config{
			ID:     connID,
			Device: cfg.Serial.Device,
		},
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("connecting", "device", cfg.Serial.Device, "service", brick.ServiceUUID().String())
	if err := brick.Initialise(ctx); err != nil {
		return err
	}
	defer func() {
		if err := brick.Disconnect(); err != nil {
			logger.Error("disconnect failed", "error", err)
		}
	}()

	if cfg.KeepAlive.Interval > 0 {
		monitor := ev3.NewMonitor(cfg.KeepAlive.Monitor(), brick, func() {
			logger.Error("brick not responding", "after", cfg.KeepAlive.Monitor().DetectionDelay().String())
			cancel()
		})
		monitor.Start(ctx)
		defer monitor.Stop()
	}

	shell := interactive.New(brick, os.Stdout)

	if *execLine != "" {
		for _, line := range strings.Split(*execLine, ";") {
			if ctx.Err() != nil {
				break
			}
			if shell.Execute(ctx, line) {
				break
			}
		}
		return nil
	}

	return shell.Run(ctx, cancel)
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			cfg.Serial.Device = *device
		case "baud":
			cfg.Serial.BaudRate = *baud
		case "layer":
			cfg.Serial.Layer = *layer
		case "capture":
			cfg.Capture.Path = *capturePath
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		case "keepalive":
			cfg.KeepAlive.Interval = *keepAlive
		}
	})
}
