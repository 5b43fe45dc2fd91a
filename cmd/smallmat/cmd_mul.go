// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/smallmat/matrix"
	"github.com/katalvlaran/smallmat/matrixfile"
)

func newMulCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mul FILE FILE...",
		Short: "Multiply matrices left to right",
		Long: `Loads every document and prints their product, associating left to right:
  smallmat mul A.yaml B.yaml C.yaml   # (A*B)*C

Operands may use different storage orders but must share the start index.
The result takes the layout of the first operand.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms := make([]*matrix.SmallMatrix[float64], 0, len(args))
			for _, path := range args {
				m, err := matrixfile.Load(path)
				if err != nil {
					return err
				}
				ms = append(ms, m)
			}
			p, err := matrix.Product(ms...)
			if err != nil {
				return fmt.Errorf("mul: %w", err)
			}
			o.logger.Debug("product", zap.Int("operands", len(ms)), zap.Stringer("layout", p.Layout()))

			if o.output == outputYAML {
				d, err := matrixfile.FromMatrix(p)
				if err != nil {
					return err
				}
				return matrixfile.Encode(cmd.OutOrStdout(), d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMatrix(p))

			return nil
		},
	}
}
