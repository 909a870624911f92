package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	r, c := A.Dims()
	if r != 3 || c != 3 {
		Te.Errorf("Wrong dimensions: %dx%d", r, c)
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("NewMatrix accepted a slice of length 4")
	}
	_, err = NewMatrix(nil)
	if err == nil {
		Te.Error("NewMatrix accepted a nil slice")
	}
}

func TestVecView(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Error(err)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Changes in the view are not reflected in the viewed matrix")
	}
}

func TestAddSubVec(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Error(err)
	}
	vec, _ := NewMatrix([]float64{10, 20, 30})
	B := Zeros(2)
	B.AddVec(A, vec)
	if B.At(0, 0) != 11 || B.At(1, 2) != 36 {
		Te.Error("Wrong AddVec result", B)
	}
	C := Zeros(2)
	C.SubVec(B, vec)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(C.At(i, j)-A.At(i, j)) > appzero {
				Te.Error("SubVec did not undo AddVec", A, C)
			}
		}
	}
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Error("x cross y is not z:", z)
	}
	if x.Dot(y) != 0 {
		Te.Error("x dot y is not zero")
	}
	if math.Abs(z.Dot(z)-1) > appzero {
		Te.Error("z dot z is not one")
	}
}

func TestUnit(Te *testing.T) {
	a, _ := NewMatrix([]float64{3, 0, 4})
	u := Zeros(1)
	if err := u.Unit(a); err != nil {
		Te.Error(err)
	}
	if math.Abs(u.Norm()-1) > appzero {
		Te.Error("Unit vector does not have norm 1:", u.Norm())
	}
	zero := Zeros(1)
	if err := u.Unit(zero); err == nil {
		Te.Error("Unit accepted a zero vector")
	}
}

func TestDist(Te *testing.T) {
	a, _ := NewMatrix([]float64{0, 0, 0})
	b, _ := NewMatrix([]float64{0, 3, 4})
	if math.Abs(Dist(a, b)-5) > appzero {
		Te.Error("Wrong distance:", Dist(a, b))
	}
}
