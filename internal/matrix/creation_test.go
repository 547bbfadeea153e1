package matrix

import (
	"errors"
	"testing"
)

func TestZeros(t *testing.T) {
	m, err := Zeros(Shape{Rows: 2, Cols: 3}, Uint8)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	if !m.Shape().Equal(Shape{Rows: 2, Cols: 3}) {
		t.Errorf("Zeros shape = %v, want (2, 3)", m.Shape())
	}
	if m.DType() != Uint8 {
		t.Errorf("Zeros dtype = %v, want uint8", m.DType())
	}
	for i, v := range m.AsUint8() {
		if v != 0 {
			t.Errorf("Zeros[%d] = %v, want 0", i, v)
		}
	}
}

func TestZerosFloat32(t *testing.T) {
	m, err := Zeros(Vec(4), Float32)
	if err != nil {
		t.Fatalf("Zeros failed: %v", err)
	}
	for i, v := range m.AsFloat32() {
		if v != 0 {
			t.Errorf("Zeros[%d] = %v, want 0", i, v)
		}
	}
}

func TestOnes(t *testing.T) {
	m, err := Ones(Vec(5), Int16)
	if err != nil {
		t.Fatalf("Ones failed: %v", err)
	}
	if m.Rows() != 1 || m.Cols() != 5 {
		t.Errorf("Ones shape = %v, want (1, 5)", m.Shape())
	}
	for i, v := range m.AsInt16() {
		if v != 1 {
			t.Errorf("Ones[%d] = %v, want 1", i, v)
		}
	}
}

func TestOnesFloat32(t *testing.T) {
	m, err := Ones(Shape{Rows: 2, Cols: 2}, Float32)
	if err != nil {
		t.Fatalf("Ones failed: %v", err)
	}
	for i, v := range m.AsFloat32() {
		if v != 1 {
			t.Errorf("Ones[%d] = %v, want 1", i, v)
		}
	}
}

func TestFull(t *testing.T) {
	m, err := Full(Shape{Rows: 3, Cols: 2}, 7, Uint16)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	for i, v := range m.AsUint16() {
		if v != 7 {
			t.Errorf("Full[%d] = %v, want 7", i, v)
		}
	}
}

func TestArange(t *testing.T) {
	m, err := Arange(0, 5, Float32)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}
	if m.Rows() != 1 || m.Cols() != 5 {
		t.Errorf("Arange shape = %v, want (1, 5)", m.Shape())
	}
	for i, v := range m.AsFloat32() {
		if v != float32(i) {
			t.Errorf("Arange[%d] = %v, want %v", i, v, i)
		}
	}
}

func TestArangeEmptyRange(t *testing.T) {
	var shapeErr *ShapeError
	if _, err := Arange(5, 5, Int8); !errors.As(err, &shapeErr) {
		t.Errorf("Arange(5, 5) error = %v, want ShapeError", err)
	}
}

func TestEyeIdentity(t *testing.T) {
	m, err := Eye(3, 0, 0, Float32)
	if err != nil {
		t.Fatalf("Eye failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if m.At(i, j) != want {
				t.Errorf("Eye[%d, %d] = %v, want %v", i, j, m.At(i, j), want)
			}
		}
	}
}

func TestEyeOffset(t *testing.T) {
	tests := []struct {
		name string
		k    int
		want []uint8
	}{
		{"upper", 1, []uint8{
			0, 1, 0,
			0, 0, 1,
			0, 0, 0,
		}},
		{"lower", -1, []uint8{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
		}},
		{"off the matrix", 3, []uint8{
			0, 0, 0,
			0, 0, 0,
			0, 0, 0,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Eye(3, 0, tt.k, Uint8)
			if err != nil {
				t.Fatalf("Eye failed: %v", err)
			}
			got := m.AsUint8()
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Eye(3, k=%d)[%d] = %v, want %v", tt.k, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEyeRectangular(t *testing.T) {
	// Row count comes from m, column count from n.
	m, err := Eye(4, 2, 0, Int16)
	if err != nil {
		t.Fatalf("Eye failed: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 4 {
		t.Fatalf("Eye(4, m=2) shape = %v, want (2, 4)", m.Shape())
	}
	want := []int16{
		1, 0, 0, 0,
		0, 1, 0, 0,
	}
	got := m.AsInt16()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Eye(4, m=2)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCreationInvalidShape(t *testing.T) {
	var shapeErr *ShapeError
	if _, err := Zeros(Shape{Rows: 0, Cols: 3}, Float32); !errors.As(err, &shapeErr) {
		t.Errorf("Zeros with zero rows: error = %v, want ShapeError", err)
	}
	if _, err := Ones(Shape{Rows: 2, Cols: -1}, Float32); !errors.As(err, &shapeErr) {
		t.Errorf("Ones with negative cols: error = %v, want ShapeError", err)
	}
}
