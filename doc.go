// SPDX-License-Identifier: MIT

// Package smallmat is a toolbox for small, fixed-size dense matrices whose
// storage order and index base are part of the type's layout.
//
// 🚀 What is smallmat?
//
//	A pure-Go library and CLI that brings together:
//		• SmallMatrix: R×C values in column-major (F) or row-major (C) order,
//		  indexed from 0 or 1, with bounds-checked access
//		• Arithmetic: add, sub, scale, multiply, Frobenius dot, transpose
//		• Reductions: sum, product, trace, AllClose and ULP comparison
//		• Factorizations: LU with pivoting, determinant, solve, inverse
//		• Interop: zero-copy host views, device arrays, gonum bridge
//
// Under the hood the code is organized as:
//
//	matrix/       SmallMatrix, layouts, options, sentinel errors
//	matrix/ops/   LU, Det, Solve, Inverse
//	ndarray/      strided 2-D host views and the array-interface descriptor
//	device/       accelerator registry; device/emulated is a host-memory backend
//	config/       process-wide settings (have_gpu, export defaults, logging)
//	matrixfile/   YAML documents for matrices
//	cmd/smallmat  inspect, mul, inv, compare and export from the shell
//
// Quick example (1-based, column-major, the defaults):
//
//	    ┌       ┐
//	    │ 1  2  │   At(1,2) == 2
//	    │ 3  4  │   storage: [1 3 2 4]
//	    └       ┘
//
//	go install github.com/katalvlaran/smallmat/cmd/smallmat@latest
package smallmat
