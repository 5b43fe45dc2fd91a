// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smallmat/device"
	"github.com/katalvlaran/smallmat/matrix"
	"github.com/katalvlaran/smallmat/matrixfile"
	"github.com/katalvlaran/smallmat/ndarray"
)

// exportReport describes an exported array: where it lives and how its
// bytes are laid out.
type exportReport struct {
	Target      string `yaml:"target"` // host | device
	Device      string `yaml:"device,omitempty"`
	Aliased     *bool  `yaml:"aliased,omitempty"`
	Order       string `yaml:"order"`
	Copy        bool   `yaml:"copy"`
	Shape       [2]int `yaml:"shape,flow"`
	Strides     [2]int `yaml:"strides,flow"` // bytes
	TypeStr     string `yaml:"typestr"`
	Version     int    `yaml:"version"`
	CContiguous bool   `yaml:"c_contiguous"`
	FContiguous bool   `yaml:"f_contiguous"`
}

type exportFlags struct {
	order  string
	copy   bool
	device bool
}

func newExportCmd(o *rootOptions) *cobra.Command {
	f := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export a matrix as an array and print its descriptor",
		Long: `Exports the matrix through the array interface and prints the resulting
descriptor (shape, byte strides, typestr, contiguity) as YAML.

Without --device the target follows device.have_gpu from the configuration;
--order and --copy default to export.order and export.copy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("order") {
				f.order = o.cfg.Export.Order
			}
			if !cmd.Flags().Changed("copy") {
				f.copy = o.cfg.Export.Copy
			}
			order, err := matrix.ParseOrder(f.order)
			if err != nil {
				return err
			}
			m, err := matrixfile.Load(args[0])
			if err != nil {
				return err
			}

			var arr ndarray.ArrayLike
			if f.device {
				arr, err = m.ToDevice(f.copy, order)
			} else {
				arr, err = m.ToArray(f.copy, order)
			}
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			return writeYAML(cmd.OutOrStdout(), exportOf(arr, order, f.copy))
		},
	}
	cmd.Flags().StringVar(&f.order, "order", matrix.DefaultExportOrder.String(), "export order: F or C")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "export a decoupled copy")
	cmd.Flags().BoolVar(&f.device, "device", false, "export through the active device backend")

	return cmd
}

// exportOf builds the report and releases device arrays once described.
func exportOf(arr ndarray.ArrayLike, order matrix.Order, copy bool) exportReport {
	ai := arr.ArrayInterface()
	rep := exportReport{
		Target:      "host",
		Order:       order.String(),
		Copy:        copy,
		Shape:       ai.Shape,
		Strides:     ai.Strides,
		TypeStr:     ai.TypeStr,
		Version:     ai.Version,
		CContiguous: arr.IsCContiguous(),
		FContiguous: arr.IsFContiguous(),
	}
	if d, ok := arr.(device.Array); ok {
		aliased := d.Aliased()
		rep.Target, rep.Device, rep.Aliased = "device", d.Device(), &aliased
		d.Release()
	}

	return rep
}
