package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// descriptor describes an artifact on disk for the apply and record commands.
// JSON documents are accepted too, being valid YAML.
type descriptor struct {
	Kind     string `yaml:"kind"`
	Filename string `yaml:"filename,omitempty"`
	// Dir is the reviewed directory; defaults to the directory of Filename.
	Dir string `yaml:"dir,omitempty"`

	Bads []string `yaml:"bads,omitempty"`

	Tmin      float64    `yaml:"tmin,omitempty"`
	Tmax      float64    `yaml:"tmax,omitempty"`
	Events    []int      `yaml:"events,omitempty"`
	Selection []int      `yaml:"selection,omitempty"`
	DropLog   [][]string `yaml:"drop_log,omitempty"`

	ChNames     []string       `yaml:"ch_names,omitempty"`
	FitParams   map[string]any `yaml:"fit_params,omitempty"`
	NComponents *float64       `yaml:"n_components,omitempty"`
	Highpass    float64        `yaml:"highpass,omitempty"`
	Lowpass     float64        `yaml:"lowpass,omitempty"`
	Sfreq       float64        `yaml:"sfreq,omitempty"`
	Exclude     []int          `yaml:"exclude,omitempty"`
}

// loadDescriptor reads the descriptor at path. Relative file names are
// resolved against the descriptor's own directory.
func loadDescriptor(path string) (*descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("invalid descriptor %s: %w", path, err)
	}

	base := filepath.Dir(path)
	if d.Filename != "" && !filepath.IsAbs(d.Filename) {
		d.Filename = filepath.Join(base, d.Filename)
	}
	if d.Dir != "" && !filepath.IsAbs(d.Dir) {
		d.Dir = filepath.Join(base, d.Dir)
	}
	if d.Dir == "" {
		if d.Filename != "" {
			d.Dir = filepath.Dir(d.Filename)
		} else {
			d.Dir = base
		}
	}
	return &d, nil
}

// artifact builds the artifact named by Kind.
func (d *descriptor) artifact() (core.Artifact, error) {
	kind, err := core.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case core.KindRaw:
		return &core.Raw{Filename: d.Filename, Bads: d.Bads}, nil
	case core.KindEpochs:
		return &core.Epochs{
			Filename:  d.Filename,
			Tmin:      d.Tmin,
			Tmax:      d.Tmax,
			Events:    d.Events,
			Selection: d.Selection,
			DropLog:   d.DropLog,
			Bads:      d.Bads,
		}, nil
	default:
		return &core.ICA{
			Filename:    d.Filename,
			ChNames:     d.ChNames,
			FitParams:   d.FitParams,
			NComponents: d.NComponents,
			Highpass:    d.Highpass,
			Lowpass:     d.Lowpass,
			Sfreq:       d.Sfreq,
			Exclude:     d.Exclude,
		}, nil
	}
}

// describe is the inverse of artifact, used to print reconciled artifacts.
func describe(a core.Artifact) *descriptor {
	switch a := a.(type) {
	case *core.Raw:
		return &descriptor{Kind: string(core.KindRaw), Filename: a.Filename, Bads: a.Bads}
	case *core.Epochs:
		return &descriptor{
			Kind:      string(core.KindEpochs),
			Filename:  a.Filename,
			Tmin:      a.Tmin,
			Tmax:      a.Tmax,
			Events:    a.Events,
			Selection: a.Selection,
			DropLog:   a.DropLog,
			Bads:      a.Bads,
		}
	case *core.ICA:
		return &descriptor{
			Kind:        string(core.KindICA),
			Filename:    a.Filename,
			ChNames:     a.ChNames,
			FitParams:   a.FitParams,
			NComponents: a.NComponents,
			Highpass:    a.Highpass,
			Lowpass:     a.Lowpass,
			Sfreq:       a.Sfreq,
			Exclude:     a.Exclude,
		}
	}
	return nil
}
