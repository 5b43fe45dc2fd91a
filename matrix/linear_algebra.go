// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels on SmallMatrix (add, sub, negation,
// scaling, multiplication, Frobenius dot, transpose).
//
// Purpose:
//   - Define operation tags and the shared error wrapper used across the package.
//   - Keep kernels deterministic: fixed loop orders, element-type accumulation.
//
// Notes:
//   - Every operation except ScaleInPlace and TransposeInPlace returns a new
//     instance; operands are never mutated.
//   - Element-wise kernels require identical Order and StartIndex (see
//     ValidateSameLayout), so both buffers are walked with one flat index.
//     Mul only requires equal StartIndex.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd              = "Add"
	opSub              = "Sub"
	opNeg              = "Neg"
	opMul              = "Mul"
	opProduct          = "Product"
	opScale            = "Scale"
	opDot              = "Dot"
	opTranspose        = "Transpose"
	opTransposeInPlace = "TransposeInPlace"
	opIdentity         = "Identity"
	opFromRows         = "FromRows"
	opFromVector       = "FromVector"
	opFromArray        = "FromArray"
	opConvertOrder     = "ConvertOrder"
	opSum              = "Sum"
	opProd             = "Prod"
	opTrace            = "Trace"
	opAllClose         = "AllClose"
	opAlmostEqual      = "AlmostEqualULP"
	opAllCloseTo       = "AllCloseTo"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes element-wise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b) (extents and layout).
//   - Stage 2: single flat loop 0..n-1; equal layouts make offsets coincide.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrLayoutMismatch wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Element](a, b *SmallMatrix[T], sign T, opTag string) (*SmallMatrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := a.derive(a.layout)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum A + B as a fresh matrix.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (extents differ), ErrLayoutMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *SmallMatrix[T]) Add(b *SmallMatrix[T]) (*SmallMatrix[T], error) {
	return addSub(m, b, 1, opAdd)
}

// Sub computes the element-wise difference A - B as a fresh matrix.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrLayoutMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *SmallMatrix[T]) Sub(b *SmallMatrix[T]) (*SmallMatrix[T], error) {
	return addSub(m, b, -1, opSub)
}

// Neg returns -A (element-wise sign flip).
func (m *SmallMatrix[T]) Neg() (*SmallMatrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res := m.derive(m.layout)
	for idx, v := range m.data {
		res.data[idx] = -v
	}

	return res, nil
}

// Scale returns A*s as a fresh matrix.
func (m *SmallMatrix[T]) Scale(s T) (*SmallMatrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.derive(m.layout)
	for idx, v := range m.data {
		res.data[idx] = v * s
	}

	return res, nil
}

// ScalarMul returns s*A. Scalar multiplication commutes: ScalarMul(s, A)
// equals A.Scale(s) element-wise.
func ScalarMul[T Element](s T, m *SmallMatrix[T]) (*SmallMatrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.derive(m.layout)
	for idx, v := range m.data {
		res.data[idx] = s * v
	}

	return res, nil
}

// ScaleInPlace multiplies every element by s (A *= s) and returns the
// receiver for chaining. A nil receiver is a no-op returning nil.
func (m *SmallMatrix[T]) ScaleInPlace(s T) *SmallMatrix[T] {
	if m == nil {
		return nil
	}
	for idx := range m.data {
		m.data[idx] *= s
	}

	return m
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows, equal start index).
//   - Stage 2: fixed i→j→k triple loop through layout offsets, accumulating in T.
//
// Behavior highlights:
//   - The result takes the left operand's order, start index and policy.
//   - No zero skipping: IEEE propagation (0*Inf = NaN) is preserved.
//
// Inputs:
//   - A (receiver): r × n; B: n × c.
//
// Returns:
//   - *SmallMatrix[T]: new r × c matrix.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (inner extents differ),
//     ErrLayoutMismatch (start indices differ).
//
// Determinism:
//   - Fixed loop order; each C[i,j] sums k ascending.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Chains associate left-to-right; use Product(A, B, C) for A*B*C.
func (m *SmallMatrix[T]) Mul(b *SmallMatrix[T]) (*SmallMatrix[T], error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	la, lb := m.layout, b.layout
	lr := la
	lr.Cols = lb.Cols
	res := m.derive(lr)

	var (
		i, j, k int
		acc     T
	)
	for i = 0; i < la.Rows; i++ {
		for j = 0; j < lb.Cols; j++ {
			acc = 0
			for k = 0; k < la.Cols; k++ {
				acc += m.data[la.offset(i, k)] * b.data[lb.offset(k, j)]
			}
			res.data[lr.offset(i, j)] = acc
		}
	}

	return res, nil
}

// Product folds Mul left-to-right over ms: Product(A, B, C) = (A*B)*C.
//
// Errors:
//   - ErrInvalidArgument for an empty list; any Mul error tagged with the
//     position of the failing operand.
func Product[T Element](ms ...*SmallMatrix[T]) (*SmallMatrix[T], error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opProduct, ErrInvalidArgument)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	acc := ms[0].Clone()
	var err error
	for pos := 1; pos < len(ms); pos++ {
		if acc, err = acc.Mul(ms[pos]); err != nil {
			return nil, matrixErrorf(opProduct, fmt.Errorf("operand %d: %w", pos, err))
		}
	}

	return acc, nil
}

// Dot returns the Frobenius inner product Σ A[i,j]*B[i,j] (not matrix multiplication).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrLayoutMismatch.
//
// Complexity: Time O(r*c), Space O(1).
func (m *SmallMatrix[T]) Dot(b *SmallMatrix[T]) (T, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	var acc T
	for idx, v := range m.data {
		acc += v * b.data[idx]
	}

	return acc, nil
}

// Transpose returns a new matrix with rows and columns swapped (Aᵀ), keeping
// the storage order, start index and policy.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *SmallMatrix[T]) Transpose() (*SmallMatrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	src := m.layout
	res := m.derive(src.Transposed())
	m.transposeInto(res.data, res.layout)

	return res, nil
}

// TransposeInPlace swaps the receiver's extents and reorders its buffer so the
// logical contents become Aᵀ. The backing slice is rewritten in place, so
// live host views alias the reordered storage. Returns the receiver for
// chaining; a nil receiver is a no-op returning nil.
//
// Complexity: Time O(r*c), Space O(r*c) scratch.
func (m *SmallMatrix[T]) TransposeInPlace() *SmallMatrix[T] {
	if m == nil {
		return nil
	}

	dst := m.layout.Transposed()
	scratch := make([]T, len(m.data))
	m.transposeInto(scratch, dst)
	copy(m.data, scratch)
	m.layout = dst
	logger().Debug(opTransposeInPlace, layoutField(dst))

	return m
}

// transposeInto writes Aᵀ into buf laid out by dst (dst = m.layout.Transposed()).
func (m *SmallMatrix[T]) transposeInto(buf []T, dst Layout) {
	src := m.layout
	var r, c int
	for r = 0; r < src.Rows; r++ {
		for c = 0; c < src.Cols; c++ {
			buf[dst.offset(c, r)] = m.data[src.offset(r, c)]
		}
	}
}
