// Filter list optimizer takes an Adblock-style domain block list file,
// drops comments, invalid rules and rules covered by country code domain suffixes,
// and overwrites the file with a sorted, deduplicated rule list under a fresh header.

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/database64128/filterlist-go"
	"github.com/database64128/filterlist-go/logging"
	"github.com/database64128/filterlist-go/rulelist"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version  bool
	zapConf  string
	logLevel zapcore.Level
)

func init() {
	flag.BoolVar(&version, "version", false, "Print version information and exit")
	flag.StringVar(&zapConf, "zapConf", "console", "Preset name or path to the JSON configuration file for building the zap logger.\nAvailable presets: console, console-nocolor, console-notime, systemd, production, development")
	flag.TextVar(&logLevel, "logLevel", zapcore.InfoLevel, "Log level for the console and systemd presets.\nAvailable levels: debug, info, warn, error, dpanic, panic, fatal")
}

func main() {
	flag.Parse()

	if version {
		os.Stdout.WriteString("filterlist-go " + filterlist.Version + "\n")
		if info, ok := debug.ReadBuildInfo(); ok {
			os.Stdout.WriteString(info.String())
		}
		return
	}

	if flag.NArg() != 1 {
		os.Stdout.WriteString("Usage: filterlist-go [options] <filter list file>\n")
		os.Exit(1)
	}
	name := flag.Arg(0)

	logger, err := logging.NewZapLogger(zapConf, logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	result, err := rulelist.OptimizeFile(name)
	if err != nil {
		logger.Fatal("Failed to optimize filter list",
			zap.String("file", name),
			zap.Error(err),
		)
	}

	logger.Info("Optimized filter list",
		zap.String("file", name),
		zap.Int("ruleCount", result.RuleCount),
		zap.String("rulesDigest", hex.EncodeToString(result.Digest[:])),
	)
}
