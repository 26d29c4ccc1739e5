package main

import (
	"fmt"
	"os"

	"github.com/golang/geo/s1"
	"github.com/gp-tag/gptag-encoder/gptag"
	"gopkg.in/yaml.v3"
)

// renderJob is one tag to encode and where to write it.
type renderJob struct {
	Out    string
	Format string
	Params gptag.Params
}

// batchEntry is the YAML shape of one manifest record; reproduces the
// pose-list batch generation of original_source's mobile generator
// script as a manifest file instead of an in-app loop.
type batchEntry struct {
	Out       string  `yaml:"out"`
	Format    string  `yaml:"format"`
	Lat       float64 `yaml:"lat"`
	Lon       float64 `yaml:"lon"`
	Alt       float64 `yaml:"alt"`
	QX        float64 `yaml:"qx"`
	QY        float64 `yaml:"qy"`
	QZ        float64 `yaml:"qz"`
	QW        float64 `yaml:"qw"`
	Accuracy  int     `yaml:"accuracy"`
	Scale     float64 `yaml:"scale"`
	TagID     int     `yaml:"tag_id"`
	VersionID int     `yaml:"version_id"`
	UnitPx    int     `yaml:"unit_px"`
}

type batchManifest struct {
	Tags []batchEntry `yaml:"tags"`
}

func loadBatch(path string) ([]renderJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch manifest: %w", err)
	}

	var manifest batchManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing batch manifest: %w", err)
	}

	jobs := make([]renderJob, 0, len(manifest.Tags))
	for _, e := range manifest.Tags {
		u := e.UnitPx
		if u == 0 {
			u = 4
		}
		jobs = append(jobs, renderJob{
			Out:    e.Out,
			Format: e.Format,
			Params: gptag.Params{
				Latitude:   s1.Angle(e.Lat) * s1.Degree,
				Longitude:  s1.Angle(e.Lon) * s1.Degree,
				Altitude:   e.Alt,
				Quaternion: [4]float64{e.QX, e.QY, e.QZ, e.QW},
				Accuracy:   e.Accuracy,
				Scale:      e.Scale,
				TagID:      e.TagID,
				VersionID:  e.VersionID,
				U:          u,
			},
		})
	}
	return jobs, nil
}
