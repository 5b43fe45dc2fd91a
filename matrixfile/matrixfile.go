// SPDX-License-Identifier: MIT

// Package matrixfile reads and writes SmallMatrix values as YAML documents.
//
// Document shape:
//
//	rows: 2
//	cols: 3
//	order: F          # F | C, default F
//	start_index: 1    # 0 | 1, default 1
//	values:           # row-major literal; vectors may use a flat list
//	  - [1, 2, 3]
//	  - [4, 5, 6]
//
// Values are always written in logical row-major order whatever the storage
// order, so a document can be re-read with a different order without change.
package matrixfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smallmat/internal/logging"
	"github.com/katalvlaran/smallmat/matrix"
)

// ErrBadDocument is returned for structurally invalid documents.
var ErrBadDocument = errors.New("matrixfile: malformed document")

// Doc is the YAML form of a float64 SmallMatrix.
type Doc struct {
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"`
	Order      string `yaml:"order,omitempty"`
	StartIndex *int   `yaml:"start_index,omitempty"`
	Values     Values `yaml:"values"`
}

// Values holds either a nested row-major literal or a flat vector literal.
// Exactly one of Nested and Flat is set after decoding.
type Values struct {
	Nested [][]float64
	Flat   []float64
}

// UnmarshalYAML accepts a sequence of sequences (nested) or a sequence of
// scalars (flat).
func (v *Values) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("values at line %d: want a sequence: %w", n.Line, ErrBadDocument)
	}
	if len(n.Content) > 0 && n.Content[0].Kind == yaml.ScalarNode {
		return n.Decode(&v.Flat)
	}

	return n.Decode(&v.Nested)
}

// MarshalYAML writes each row (or the flat list) in flow style.
func (v Values) MarshalYAML() (interface{}, error) {
	if v.Flat != nil {
		return flowSeq(v.Flat), nil
	}
	out := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range v.Nested {
		out.Content = append(out.Content, flowSeq(row))
	}

	return out, nil
}

func flowSeq(vals []float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, x := range vals {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(x)})
	}

	return n
}

// formatFloat renders the shortest exact form ("3", "0.5", "1e+21") and the
// YAML spellings of the non-finite values.
func formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return ".nan"
	case math.IsInf(x, 1):
		return ".inf"
	case math.IsInf(x, -1):
		return "-.inf"
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Layout resolves the document layout, applying the F / 1-based defaults.
//
// Errors:
//   - matrix.ErrInvalidArgument for an unknown order or start index;
//     matrix.ErrInvalidDimensions for non-positive extents.
func (d *Doc) Layout() (matrix.Layout, error) {
	opts := make([]matrix.Option, 0, 2)
	if d.Order != "" {
		o, err := matrix.ParseOrder(d.Order)
		if err != nil {
			return matrix.Layout{}, err
		}
		opts = append(opts, matrix.WithOrder(o))
	}
	if d.StartIndex != nil {
		if s := *d.StartIndex; s != 0 && s != 1 {
			return matrix.Layout{}, fmt.Errorf("start_index %d: %w", s, matrix.ErrInvalidArgument)
		}
		opts = append(opts, matrix.WithStartIndex(*d.StartIndex))
	}

	return matrix.NewLayout(d.Rows, d.Cols, opts...)
}

// Matrix builds the SmallMatrix described by the document.
//
// Errors:
//   - Layout errors; ErrBadDocument when values are missing;
//     matrix.ErrShapeMismatch / matrix.ErrDimensionMismatch from the literal.
func (d *Doc) Matrix(opts ...matrix.Option) (*matrix.SmallMatrix[float64], error) {
	l, err := d.Layout()
	if err != nil {
		return nil, err
	}
	switch {
	case d.Values.Flat != nil:
		return matrix.FromVector(l, d.Values.Flat, opts...)
	case d.Values.Nested != nil:
		return matrix.FromRows(l, d.Values.Nested, opts...)
	default:
		return nil, fmt.Errorf("values missing: %w", ErrBadDocument)
	}
}

// FromMatrix describes m as a document. Vectors use the flat form.
func FromMatrix(m *matrix.SmallMatrix[float64]) (*Doc, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	s := m.StartIndex()
	d := &Doc{Rows: m.Rows(), Cols: m.Cols(), Order: m.Order().String(), StartIndex: &s}
	if m.IsVector() {
		d.Values.Flat = make([]float64, 0, m.Size())
		m.Do(func(_, _ int, v float64) bool {
			d.Values.Flat = append(d.Values.Flat, v)
			return true
		})
		return d, nil
	}
	d.Values.Nested = m.ToRows()

	return d, nil
}

// Decode parses one document from r.
func Decode(r io.Reader) (*Doc, error) {
	var d Doc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty input: %w", ErrBadDocument)
		}
		return nil, fmt.Errorf("failed to parse matrix document: %w", err)
	}

	return &d, nil
}

// Encode writes d to w with two-space indentation.
func Encode(w io.Writer, d *Doc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode matrix document: %w", err)
	}

	return enc.Close()
}

// Load reads the matrix stored at path.
func Load(path string, opts ...matrix.Option) (*matrix.SmallMatrix[float64], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix: %w", err)
	}
	d, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := d.Matrix(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Named("matrixfile").Debug("loaded",
		zap.String("path", path),
		zap.Stringer("layout", m.Layout()),
	)

	return m, nil
}

// Save writes m to path (mode 0644), replacing any existing file.
func Save(path string, m *matrix.SmallMatrix[float64]) error {
	d, err := FromMatrix(m)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, d); err != nil {
		return err
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write matrix: %w", err)
	}

	return nil
}
