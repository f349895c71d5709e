// evapiso
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/hydroiso/evapiso-go/evapiso"
)

func main() {
	parser := argparse.NewParser("evapiso", "Computes Craig-Gordon evaporative isotope enrichment (2H, 18O) for a water body")

	input := parser.StringPositional(&argparse.Options{
		Required: true,
		Help:     "YAML dataset with climate records and model parameters"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "output CSV path (stdout if empty)"})

	mode := parser.Selector("", "mode", []string{"sweep", "seasonal"}, &argparse.Options{
		Default: "sweep",
		Help:    "computation mode: single-volume sweep or 12-month seasonal series"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("evapiso")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	ds, err := evapiso.LoadDataset(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})

	if *mode == "sweep" {
		logger.Infof("single-volume sweep: %d steps to x=%g", ds.Sweep.Steps, ds.Sweep.Xmax)

		xs, err := evapiso.XRange(ds.Sweep.Steps, ds.Sweep.Xmax)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		res, err := evapiso.Sweep(ds.SingleClimate(), ds.Config(), xs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if slope, err := res.Derived.Slope(); err == nil {
			logger.Infof("approximate evaporation line slope: %.3f", slope)
		} else {
			logger.Warnf("evaporation line slope: %v", err)
		}

		res.ToCSV(buf)
	} else {
		logger.Infof("seasonal series: xmean=%g fampl=%g shift=%g", ds.Seasonal.Xmean, ds.Seasonal.Fampl, ds.Seasonal.Shift)

		xs, err := evapiso.EvaporationRatios(ds.Seasonal.Xmean, ds.Seasonal.Fampl, ds.Seasonal.Shift)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		res, err := evapiso.Seasonal(ds.MonthlyClimates(), xs, ds.Config())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if line, err := res.EvaporationLine(); err == nil {
			logger.Infof("evaporation line: d2H = %.3f*d18O + %.3f", line.Slope, line.Intercept)
			if x, y, err := evapiso.Intersection(line, evapiso.GlobalMeteoricWaterLine); err == nil {
				logger.Infof("GMWL intersection: d18O=%.3f d2H=%.3f", x, y)
			}
		} else {
			logger.Warnf("evaporation line fit: %v", err)
		}

		res.ToCSV(buf)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("CSV saved: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}
}
