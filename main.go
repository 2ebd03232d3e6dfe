/*
 * OS simulator - command-line driver.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/cardsim/ossim/internal/config"
	"github.com/cardsim/ossim/internal/phase1"
	"github.com/cardsim/ossim/internal/phase2"
	"github.com/cardsim/ossim/internal/tracelog"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Enable debug logging")
	optInteractive := getopt.BoolLong("interactive", 'i', "Run phase2 as an interactive console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("phase1|phase2 <input> <output>")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logFile *os.File
	if *optLogFile != "" {
		var err error
		logFile, err = os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cannot create log file:", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	Logger = slog.New(tracelog.NewHandler(logFile, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(Logger)

	args := getopt.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "expected a phase1 or phase2 subcommand")
		getopt.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*optConfig)
	if err != nil {
		Logger.Error("loading configuration: " + err.Error())
		os.Exit(1)
	}

	switch args[0] {
	case "phase1":
		runPhase1(args[1:], cfg)
	case "phase2":
		runPhase2(args[1:], cfg, *optInteractive)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		os.Exit(1)
	}
}

func runPhase1(args []string, cfg *config.Config) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "phase1 requires <input> <output>")
		os.Exit(1)
	}

	jobText, err := os.ReadFile(args[0])
	if err != nil {
		Logger.Error("reading job file: " + err.Error())
		os.Exit(1)
	}

	Logger.Info("phase1 run starting", "input", args[0])
	trace := phase1.Run(string(jobText), cfg.Phase1.MemWords, Logger)

	if err := os.WriteFile(args[1], []byte(trace), 0o644); err != nil {
		Logger.Error("writing trace file: " + err.Error())
		os.Exit(1)
	}
	Logger.Info("phase1 run complete", "output", args[1])
}

func runPhase2(args []string, cfg *config.Config, interactive bool) {
	if interactive {
		trace := phase2.RunInteractive(cfg.Phase2, Logger)
		if len(args) == 2 {
			if err := os.WriteFile(args[1], []byte(trace), 0o644); err != nil {
				Logger.Error("writing trace file: " + err.Error())
				os.Exit(1)
			}
		}
		return
	}

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "phase2 requires <input> <output>")
		os.Exit(1)
	}

	scriptText, err := os.ReadFile(args[0])
	if err != nil {
		Logger.Error("reading script file: " + err.Error())
		os.Exit(1)
	}

	Logger.Info("phase2 run starting", "input", args[0])
	trace := phase2.Run(string(scriptText), cfg.Phase2, Logger)

	if err := os.WriteFile(args[1], []byte(trace), 0o644); err != nil {
		Logger.Error("writing trace file: " + err.Error())
		os.Exit(1)
	}
	Logger.Info("phase2 run complete", "output", args[1])
}
