// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smallmat/matrix"
	"github.com/katalvlaran/smallmat/matrix/ops"
	"github.com/katalvlaran/smallmat/matrixfile"
)

// inspectReport is the YAML form of `smallmat inspect`.
type inspectReport struct {
	Type   string      `yaml:"type"`
	Layout string      `yaml:"layout"`
	Size   int         `yaml:"size"`
	Sum    float64     `yaml:"sum"`
	Prod   float64     `yaml:"prod"`
	Trace  *float64    `yaml:"trace,omitempty"`
	Det    *float64    `yaml:"det,omitempty"`
	Values [][]float64 `yaml:"values,flow"`
}

func newInspectCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a matrix with its layout and reductions",
		Long: `Loads a matrix document and prints its values together with the layout,
the element sum and product, and the trace and determinant when the matrix
is square.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixfile.Load(args[0])
			if err != nil {
				return err
			}
			rep := inspectOf(m)

			if o.output == outputYAML {
				return writeYAML(cmd.OutOrStdout(), rep)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, renderMatrix(m))
			fmt.Fprintln(w, renderSummary(rep))

			return nil
		},
	}
}

func inspectOf(m *matrix.SmallMatrix[float64]) inspectReport {
	rep := inspectReport{
		Type:   m.TypeName(),
		Layout: m.Layout().String(),
		Size:   m.Size(),
		Sum:    m.Sum(),
		Prod:   m.Prod(),
		Values: m.ToRows(),
	}
	if tr, err := m.Trace(); err == nil {
		rep.Trace = &tr
	}
	if det, err := ops.Det(m); err == nil {
		rep.Det = &det
	}

	return rep
}

// writeYAML encodes v with the two-space indentation used by matrixfile.
func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return enc.Close()
}
