package mathutil

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a square N×N grid of float64 stored row-major. At(x, y) addresses
// column x of row y, so the translation of an affine 4×4 transform lives in
// column 3.
//
// Matrix values are immutable: every operation allocates a fresh grid, so
// assigning or passing a Matrix never aliases another Matrix's storage.
type Matrix struct {
	n int
	m []float64
}

func newMatrix(n int) Matrix {
	return Matrix{n: n, m: make([]float64, n*n)}
}

// get and set skip bounds checks; set is only used on freshly built grids.
func (a Matrix) get(x, y int) float64 {
	return a.m[y*a.n+x]
}

func (a Matrix) set(x, y int, v float64) {
	a.m[y*a.n+x] = v
}

// Zero returns an n×n matrix of zeros.
func Zero(n int) (Matrix, error) {
	if n < 1 {
		return Matrix{}, fmt.Errorf("mathutil: matrix size %d: %w", n, ErrInvalidArgument)
	}
	return newMatrix(n), nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (Matrix, error) {
	out, err := Zero(n)
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < n; i++ {
		out.set(i, i, 1)
	}
	return out, nil
}

func identity4() Matrix {
	out := newMatrix(4)
	for i := 0; i < 4; i++ {
		out.set(i, i, 1)
	}
	return out
}

// Translate returns a 4×4 identity with the translation column set from v.
func Translate(v Vec3) Matrix {
	out := identity4()
	out.set(3, 0, v[0])
	out.set(3, 1, v[1])
	out.set(3, 2, v[2])
	return out
}

// FromRows builds a matrix from row slices. All rows must have the same length
// as the number of rows.
func FromRows(rows [][]float64) (Matrix, error) {
	n := len(rows)
	if n < 1 {
		return Matrix{}, fmt.Errorf("mathutil: matrix size %d: %w", n, ErrInvalidArgument)
	}
	out := newMatrix(n)
	for y, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("mathutil: row %d has %d columns, want %d: %w", y, len(row), n, ErrInvalidArgument)
		}
		copy(out.m[y*n:(y+1)*n], row)
	}
	return out, nil
}

// Size returns N. The zero Matrix has size 0 and is not usable.
func (a Matrix) Size() int {
	return a.n
}

func (a Matrix) checkIndex(x, y int) error {
	if x < 0 || x >= a.n || y < 0 || y >= a.n {
		return fmt.Errorf("mathutil: index (%d,%d) out of range for %dx%d matrix: %w", x, y, a.n, a.n, ErrInvalidArgument)
	}
	return nil
}

// At returns the element in column x of row y.
func (a Matrix) At(x, y int) (float64, error) {
	if err := a.checkIndex(x, y); err != nil {
		return 0, err
	}
	return a.get(x, y), nil
}

// With returns a copy of a with column x of row y set to v.
func (a Matrix) With(x, y int, v float64) (Matrix, error) {
	if err := a.checkIndex(x, y); err != nil {
		return Matrix{}, err
	}
	out := a.Clone()
	out.set(x, y, v)
	return out, nil
}

// Clone duplicates the backing grid.
func (a Matrix) Clone() Matrix {
	out := Matrix{n: a.n, m: make([]float64, len(a.m))}
	copy(out.m, a.m)
	return out
}

// Rows returns a copy of the grid as row slices.
func (a Matrix) Rows() [][]float64 {
	rows := make([][]float64, a.n)
	for y := range rows {
		rows[y] = append([]float64(nil), a.m[y*a.n:(y+1)*a.n]...)
	}
	return rows
}

// MatMul returns a × b, the transform that applies b first and then a.
func MatMul(a, b Matrix) (Matrix, error) {
	if a.n != b.n || a.n < 1 {
		return Matrix{}, fmt.Errorf("mathutil: multiply %dx%d by %dx%d: %w", a.n, a.n, b.n, b.n, ErrInvalidArgument)
	}
	n := a.n
	out := newMatrix(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			var sum float64
			for i := 0; i < n; i++ {
				sum += a.get(i, y) * b.get(x, i)
			}
			out.set(x, y, sum)
		}
	}
	return out, nil
}

// mustMul composes matrices already known to share a size.
func mustMul(a, b Matrix) Matrix {
	out, err := MatMul(a, b)
	if err != nil {
		panic(err)
	}
	return out
}

// Div divides every element by s.
func (a Matrix) Div(s float64) Matrix {
	out := newMatrix(a.n)
	for i, v := range a.m {
		out.m[i] = v / s
	}
	return out
}

// TransformPoint applies the full affine transform, translation column
// included. A 3×3 matrix has no translation and acts linearly.
func (a Matrix) TransformPoint(p Vec3) (Vec3, error) {
	out, err := a.TransformVector(p)
	if err != nil {
		return Vec3{}, err
	}
	if a.n >= 4 {
		out[0] += a.get(3, 0)
		out[1] += a.get(3, 1)
		out[2] += a.get(3, 2)
	}
	return out, nil
}

// TransformVector applies only the linear part of the transform.
func (a Matrix) TransformVector(v Vec3) (Vec3, error) {
	if a.n < 3 {
		return Vec3{}, fmt.Errorf("mathutil: transform with %dx%d matrix: %w", a.n, a.n, ErrInvalidArgument)
	}
	return Vec3{
		a.get(0, 0)*v[0] + a.get(1, 0)*v[1] + a.get(2, 0)*v[2],
		a.get(0, 1)*v[0] + a.get(1, 1)*v[1] + a.get(2, 1)*v[2],
		a.get(0, 2)*v[0] + a.get(1, 2)*v[1] + a.get(2, 2)*v[2],
	}, nil
}

func (a Matrix) Transpose() Matrix {
	out := newMatrix(a.n)
	for y := 0; y < a.n; y++ {
		for x := 0; x < a.n; x++ {
			out.set(y, x, a.get(x, y))
		}
	}
	return out
}

// DropXY returns the (N-1)×(N-1) submatrix with column x and row y removed.
func (a Matrix) DropXY(x, y int) (Matrix, error) {
	if err := a.checkIndex(x, y); err != nil {
		return Matrix{}, err
	}
	if a.n < 2 {
		return Matrix{}, fmt.Errorf("mathutil: drop from 1x1 matrix: %w", ErrInvalidArgument)
	}
	return a.dropXY(x, y), nil
}

func (a Matrix) dropXY(x, y int) Matrix {
	out := newMatrix(a.n - 1)
	oy := 0
	for iy := 0; iy < a.n; iy++ {
		if iy == y {
			continue
		}
		ox := 0
		for ix := 0; ix < a.n; ix++ {
			if ix == x {
				continue
			}
			out.set(ox, oy, a.get(ix, iy))
			ox++
		}
		oy++
	}
	return out
}

// Determinant uses closed forms for N ≤ 4 and cofactor expansion along the
// first column above that. The zero Matrix has determinant 0.
func (a Matrix) Determinant() float64 {
	m := a.m
	switch a.n {
	case 0:
		return 0
	case 1:
		return m[0]
	case 2:
		return m[0]*m[3] - m[1]*m[2]
	case 3:
		return m[0]*(m[4]*m[8]-m[5]*m[7]) -
			m[1]*(m[3]*m[8]-m[5]*m[6]) +
			m[2]*(m[3]*m[7]-m[4]*m[6])
	case 4:
		// Laplace expansion over the complementary 2×2 minors of rows 0-1 and 2-3.
		s0 := m[0]*m[5] - m[1]*m[4]
		s1 := m[0]*m[6] - m[2]*m[4]
		s2 := m[0]*m[7] - m[3]*m[4]
		s3 := m[1]*m[6] - m[2]*m[5]
		s4 := m[1]*m[7] - m[3]*m[5]
		s5 := m[2]*m[7] - m[3]*m[6]

		c5 := m[10]*m[15] - m[11]*m[14]
		c4 := m[9]*m[15] - m[11]*m[13]
		c3 := m[9]*m[14] - m[10]*m[13]
		c2 := m[8]*m[15] - m[11]*m[12]
		c1 := m[8]*m[14] - m[10]*m[12]
		c0 := m[8]*m[13] - m[9]*m[12]

		return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	}
	var sum float64
	for i := 0; i < a.n; i++ {
		term := a.get(0, i) * a.dropXY(0, i).Determinant()
		if i%2 == 1 {
			term = -term
		}
		sum += term
	}
	return sum
}

// DeterminantExpand computes the determinant by cofactor expansion along the
// first column all the way down to 1×1, without any closed form.
func (a Matrix) DeterminantExpand() float64 {
	switch a.n {
	case 0:
		return 0
	case 1:
		return a.m[0]
	}
	var sum float64
	for i := 0; i < a.n; i++ {
		term := a.get(0, i) * a.dropXY(0, i).DeterminantExpand()
		if i%2 == 1 {
			term = -term
		}
		sum += term
	}
	return sum
}

// Minors returns the matrix of first minors. The minor of a 1×1 matrix is the
// empty determinant, 1.
func (a Matrix) Minors() Matrix {
	out := newMatrix(a.n)
	if a.n == 1 {
		out.m[0] = 1
		return out
	}
	for y := 0; y < a.n; y++ {
		for x := 0; x < a.n; x++ {
			out.set(x, y, a.dropXY(x, y).Determinant())
		}
	}
	return out
}

// CheckerboardSign negates every element whose row and column parities differ.
func (a Matrix) CheckerboardSign() Matrix {
	out := newMatrix(a.n)
	for y := 0; y < a.n; y++ {
		for x := 0; x < a.n; x++ {
			v := a.get(x, y)
			if (x^y)&1 == 1 {
				v = -v
			}
			out.set(x, y, v)
		}
	}
	return out
}

func (a Matrix) Cofactor() Matrix {
	return a.Minors().CheckerboardSign()
}

func (a Matrix) Adjugate() Matrix {
	return a.Cofactor().Transpose()
}

// Inverse returns Adjugate / Determinant, or ErrSingular when the determinant
// is exactly zero.
func (a Matrix) Inverse() (Matrix, error) {
	if a.n < 1 {
		return Matrix{}, fmt.Errorf("mathutil: inverse of empty matrix: %w", ErrInvalidArgument)
	}
	det := a.Determinant()
	if det == 0 {
		return Matrix{}, fmt.Errorf("mathutil: inverse of %dx%d matrix: %w", a.n, a.n, ErrSingular)
	}
	return a.Adjugate().Div(det), nil
}

// Equal reports whether a and b have the same size and every element differs
// by at most eps.
func (a Matrix) Equal(b Matrix, eps float64) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.m {
		if math.Abs(a.m[i]-b.m[i]) > eps {
			return false
		}
	}
	return true
}

func (a Matrix) String() string {
	var sb strings.Builder
	for y := 0; y < a.n; y++ {
		sb.WriteByte('[')
		for x := 0; x < a.n; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", a.get(x, y))
		}
		sb.WriteByte(']')
		if y < a.n-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
