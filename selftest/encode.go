package selftest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/hesscov/matrix"
)

// Format names a Report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned by ParseFormat and Encode.
var ErrUnknownFormat = errors.New("selftest: unknown report format")

// ParseFormat maps a flag value to a Format; "" means FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// document is the structured form shared by the JSON, YAML and TOML encoders.
type document struct {
	Step        float64     `json:"step" yaml:"step" toml:"step"`
	Inverter    string      `json:"inverter" yaml:"inverter" toml:"inverter"`
	Evaluations int         `json:"evaluations" yaml:"evaluations" toml:"evaluations"`
	CacheHits   int         `json:"cache_hits" yaml:"cache_hits" toml:"cache_hits"`
	Residual    float64     `json:"inverse_residual" yaml:"inverse_residual" toml:"inverse_residual"`
	Summary     Summary     `json:"summary" yaml:"summary" toml:"summary"`
	Eigenvalues []float64   `json:"eigenvalues" yaml:"eigenvalues" toml:"eigenvalues"`
	StdDev      []float64   `json:"std_dev" yaml:"std_dev" toml:"std_dev"`
	True        [][]float64 `json:"true_cov" yaml:"true_cov" toml:"true_cov"`
	Measured    [][]float64 `json:"meas_cov" yaml:"meas_cov" toml:"meas_cov"`
	FracDiff    [][]float64 `json:"frac_diff" yaml:"frac_diff" toml:"frac_diff"`
	Correlation [][]float64 `json:"correlation" yaml:"correlation" toml:"correlation"`
}

func (r *Report) document() (document, error) {
	sum, err := r.Summary()
	if err != nil {
		return document{}, err
	}
	doc := document{
		Step:        r.Step,
		Inverter:    r.Inverter,
		Evaluations: r.Stats.Evaluations,
		CacheHits:   r.Stats.CacheHits,
		Residual:    r.Residual,
		Summary:     sum,
		Eigenvalues: r.Eigenvalues,
		StdDev:      r.StdDev,
	}
	for _, dst := range []struct {
		to   *[][]float64
		from *matrix.Dense
	}{
		{&doc.True, r.True},
		{&doc.Measured, r.Measured},
		{&doc.FracDiff, r.FracDiff},
		{&doc.Correlation, r.Correlation},
	} {
		if *dst.to, err = matrix.ToRows(dst.from); err != nil {
			return document{}, err
		}
	}

	return doc, nil
}

// Encode writes r to w in the given format.
func (r *Report) Encode(w io.Writer, format Format) error {
	if format == FormatText || format == "" {
		_, err := r.WriteTo(w)

		return err
	}

	doc, err := r.document()
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = sonic.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("selftest: encode %s: %w", format, err)
	}
	_, err = w.Write(data)

	return err
}
