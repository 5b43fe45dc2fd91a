// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smallmat/matrix/ops"
	"github.com/katalvlaran/smallmat/matrixfile"
)

func newInvCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inv FILE",
		Short: "Invert a square matrix",
		Long: `Prints the inverse of a square matrix, computed by LU factorization with
partial pivoting. The inverse keeps the layout of the input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixfile.Load(args[0])
			if err != nil {
				return err
			}
			inv, err := ops.Inverse(m)
			if err != nil {
				return fmt.Errorf("inv: %w", err)
			}

			if o.output == outputYAML {
				d, err := matrixfile.FromMatrix(inv)
				if err != nil {
					return err
				}
				return matrixfile.Encode(cmd.OutOrStdout(), d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMatrix(inv))

			return nil
		},
	}
}
