// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/smallmat/matrix"
	"github.com/katalvlaran/smallmat/matrixfile"
)

// compareReport is the YAML form of `smallmat compare`.
type compareReport struct {
	Equal       bool    `yaml:"equal"`
	AllClose    bool    `yaml:"allclose"`
	AlmostEqual bool    `yaml:"almost_equal"`
	RTol        float64 `yaml:"rtol"`
	ATol        float64 `yaml:"atol"`
	ULP         int     `yaml:"ulp"`
}

func newCompareCmd(o *rootOptions) *cobra.Command {
	var (
		rtol, atol float64
		ulp        int
	)
	cmd := &cobra.Command{
		Use:   "compare FILE FILE",
		Short: "Compare two matrices exactly and within tolerances",
		Long: `Compares two matrices of identical layout three ways:
  equal         exact layout and values
  allclose      |a-b| <= atol + rtol*|b| for every element
  almost_equal  |a-b| <= eps*|a+b|*ulp for every element

The second document is converted to the storage order of the first, so
documents that differ only in order compare by value.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrixfile.Load(args[0])
			if err != nil {
				return err
			}
			b, err := matrixfile.Load(args[1])
			if err != nil {
				return err
			}
			if b, err = b.ConvertOrder(a.Order()); err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			rep := compareReport{Equal: a.Equal(b), RTol: rtol, ATol: atol, ULP: ulp}
			if rep.AllClose, err = a.AllClose(b, rtol, atol); err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			if rep.AlmostEqual, err = a.AlmostEqualULP(b, ulp); err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			o.logger.Debug("compared", zap.Stringer("layout", a.Layout()), zap.Bool("equal", rep.Equal))

			if o.output == outputYAML {
				return writeYAML(cmd.OutOrStdout(), rep)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderCompare(rep))

			return nil
		},
	}
	cmd.Flags().Float64Var(&rtol, "rtol", matrix.DefaultRTol, "relative tolerance for allclose")
	cmd.Flags().Float64Var(&atol, "atol", matrix.DefaultATol, "absolute tolerance for allclose")
	cmd.Flags().IntVar(&ulp, "ulp", matrix.DefaultULP, "units of machine epsilon for almost_equal")

	return cmd
}
