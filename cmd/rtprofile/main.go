// Command rtprofile applies the 1-D reduction-to-pole transform to a
// delimited profile file and writes the table back with an appended rtp
// column.
//
// Usage:
//
//	rtprofile [flags] profile.csv
//
// The input must have a header row. Distance and anomaly columns are picked
// by name; without -distance/-anomaly the tool falls back to fuzzy matching
// on common column names.
//
// Examples:
//
//	rtprofile -dx 10 -inc 42.3 -dec 0.9719 -azimuth 90 profile.csv
//	rtprofile -distance x -anomaly nT -dx 25 -inc -60 -o out.csv profile.csv
//	rtprofile -dx 10 -inc 42.3 -azimuth 90 -flip profile.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-geomag/geomag/rtp"
)

func main() {
	distanceCol := flag.String("distance", "", "distance column name (default: fuzzy match)")
	anomalyCol := flag.String("anomaly", "", "anomaly column name (default: fuzzy match)")
	dx := flag.Float64("dx", 10, "sampling interval in meters")
	inc := flag.Float64("inc", 90, "field inclination in degrees")
	dec := flag.Float64("dec", 0, "field declination in degrees")
	azimuth := flag.Float64("azimuth", 0, "profile azimuth in degrees east of north")
	alpha := flag.Float64("alpha", 0.1, "tukey taper fraction, 0 disables")
	pad := flag.Int("pad", 2, "minimum padding factor before rounding to a power of two")
	flip := flag.Bool("flip", false, "negate the result (amplitude mirror)")
	output := flag.String("o", "", "output file (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rtprofile [flags] profile.csv\n\n")
		fmt.Fprintf(os.Stderr, "Applies the 1-D reduction-to-pole transform to a profile table\n")
		fmt.Fprintf(os.Stderr, "and appends the result as an rtp column.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	err := run(flag.Arg(0), *output, options{
		distanceCol: *distanceCol,
		anomalyCol:  *anomalyCol,
		dx:          *dx,
		geom: rtp.FieldGeometry{
			InclinationDeg: *inc,
			DeclinationDeg: *dec,
			AzimuthDeg:     *azimuth,
		},
		alpha: *alpha,
		pad:   *pad,
		flip:  *flip,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	distanceCol string
	anomalyCol  string
	dx          float64
	geom        rtp.FieldGeometry
	alpha       float64
	pad         int
	flip        bool
}

func run(inPath, outPath string, opts options) error {
	header, rows, err := loadTable(inPath)
	if err != nil {
		return err
	}

	distIdx, err := pickColumn(header, opts.distanceCol, "distance", "x")
	if err != nil {
		return fmt.Errorf("distance column: %w", err)
	}

	anomIdx, err := pickColumn(header, opts.anomalyCol, "anomaly", "y")
	if err != nil {
		return fmt.Errorf("anomaly column: %w", err)
	}

	if distIdx == anomIdx {
		return fmt.Errorf("distance and anomaly columns must differ (both %q)", header[distIdx])
	}

	distance, err := parseColumn(rows, distIdx, header[distIdx])
	if err != nil {
		return err
	}

	anomaly, err := parseColumn(rows, anomIdx, header[anomIdx])
	if err != nil {
		return err
	}

	result, err := rtp.ReduceToPole(distance, anomaly, opts.dx, opts.geom,
		rtp.WithTaperAlpha(opts.alpha),
		rtp.WithPaddingFactor(opts.pad),
	)
	if err != nil {
		return err
	}

	if opts.flip {
		result = rtp.Negate(result)
	}

	return writeTable(outPath, header, rows, result)
}

func loadTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s: need a header row and at least one data row", path)
	}

	return records[0], records[1:], nil
}

// pickColumn resolves a column index by exact name, or falls back to a
// case-insensitive substring match as the interactive workflow does.
func pickColumn(header []string, name string, fallbacks ...string) (int, error) {
	if name != "" {
		for i, h := range header {
			if h == name {
				return i, nil
			}
		}

		return 0, fmt.Errorf("no column named %q (have %s)", name, strings.Join(header, ", "))
	}

	for _, want := range fallbacks {
		for i, h := range header {
			if strings.Contains(strings.ToLower(h), want) {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("no column matching %s (have %s); use -distance/-anomaly",
		strings.Join(fallbacks, " or "), strings.Join(header, ", "))
}

func parseColumn(rows [][]string, idx int, name string) ([]float64, error) {
	out := make([]float64, len(rows))

	for i, row := range rows {
		if idx >= len(row) {
			return nil, fmt.Errorf("row %d has no column %q", i+1, name)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", i+1, name, err)
		}

		out[i] = v
	}

	return out, nil
}

func writeTable(path string, header []string, rows [][]string, result []float64) error {
	out := os.Stdout

	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		out = f
	}

	w := csv.NewWriter(out)

	err := w.Write(append(append([]string(nil), header...), "rtp"))
	if err != nil {
		return err
	}

	for i, row := range rows {
		rec := append(append([]string(nil), row...), strconv.FormatFloat(result[i], 'f', 6, 64))

		err = w.Write(rec)
		if err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
