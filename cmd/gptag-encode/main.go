// Command gptag-encode renders GP-Tag fiducial marker images from pose
// parameters given on the command line or in a batch YAML manifest.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/golang/geo/s1"
	"github.com/google/uuid"
	"github.com/gp-tag/gptag-encoder/export"
	"github.com/gp-tag/gptag-encoder/gptag"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	var (
		lat       = pflag.Float64("lat", 0, "Latitude in degrees, -90..90.")
		lon       = pflag.Float64("lon", 0, "Longitude in degrees, -180..180.")
		alt       = pflag.Float64("alt", 0, "Altitude in meters, -10000..10000.")
		qx        = pflag.Float64("qx", 0, "Quaternion x component, -1..1.")
		qy        = pflag.Float64("qy", 0, "Quaternion y component, -1..1.")
		qz        = pflag.Float64("qz", 0, "Quaternion z component, -1..1.")
		qw        = pflag.Float64("qw", 1, "Quaternion w component, -1..1.")
		accuracy  = pflag.Int("accuracy", 0, "Accuracy class, 0..3.")
		scale     = pflag.Float64("scale", 0.36, "Scale in cells/mm, 0..3.6.")
		tagID     = pflag.Int("tag-id", 0, "Tag identifier, 0..4095.")
		versionID = pflag.Int("version-id", 0, "Format version, 0..15.")
		unitPx    = pflag.Int("unit-px", 4, "Module size in pixels (U), >= 1.")
		out       = pflag.String("out", "gptag.png", "Output image path.")
		format    = pflag.StringP("format", "f", "png", "Output format: png or ppm.")
		batch     = pflag.StringP("batch", "b", "", "Batch YAML manifest path; when set, all other pose flags are ignored.")
		verbose   = pflag.BoolP("verbose", "v", false, "Print a per-tag summary after encoding.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logger := log.New(os.Stderr)
	runID := uuid.New()
	logger = logger.With("run_id", runID.String())

	var jobs []renderJob
	var err error
	if *batch != "" {
		jobs, err = loadBatch(*batch)
		if err != nil {
			logger.Error("failed to load batch manifest", "path", *batch, "err", err)
			os.Exit(1)
		}
	} else {
		jobs = []renderJob{{
			Out:    *out,
			Format: *format,
			Params: gptag.Params{
				Latitude:   s1.Angle(*lat) * s1.Degree,
				Longitude:  s1.Angle(*lon) * s1.Degree,
				Altitude:   *alt,
				Quaternion: [4]float64{*qx, *qy, *qz, *qw},
				Accuracy:   *accuracy,
				Scale:      *scale,
				TagID:      *tagID,
				VersionID:  *versionID,
				U:          *unitPx,
			},
		}}
	}

	printer := message.NewPrinter(language.English)
	for _, job := range jobs {
		if err := renderOne(logger, printer, job, *verbose); err != nil {
			logger.Error("encode failed", "out", job.Out, "err", err)
			os.Exit(1)
		}
	}
}

func renderOne(logger *log.Logger, printer *message.Printer, job renderJob, verbose bool) error {
	img, err := gptag.Encode(job.Params)
	if err != nil {
		return err
	}

	format := job.Format
	if format == "" {
		format = "png"
	}
	exporter, err := export.Get(format)
	if err != nil {
		return fmt.Errorf("format %q: %w", format, err)
	}

	f, err := os.Create(job.Out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", job.Out, err)
	}
	defer f.Close()

	if err := exporter.Encode(f, img); err != nil {
		return err
	}

	logger.Info("encoded tag", "tag_id", job.Params.TagID, "u", job.Params.U, "out", job.Out)
	if verbose {
		side := 36 * job.Params.U
		printer.Printf("tag_id=%d version_id=%d U=%d image=%dx%d -> %s\n",
			job.Params.TagID, job.Params.VersionID, job.Params.U, side, side, job.Out)
	}
	return nil
}
