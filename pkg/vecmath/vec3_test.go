package vecmath

import "testing"

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("X x Y = %+v, want %+v", got, want)
	}
}

func TestVec3Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"unit x", Vec3{2, 0, 0}, Vec3{1, 0, 0}},
		{"unit y", Vec3{0, 5, 0}, Vec3{0, 1, 0}},
		{"zero vector stays zero", Vec3{}, Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if !approxEqual(got, tt.want) {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVec3SquaredLength(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.SquaredLength(); got != 25 {
		t.Errorf("SquaredLength() = %v, want 25", got)
	}
}

func TestVec3NegateRoundTrip(t *testing.T) {
	v := Vec3{1, -2, 3}
	if got := v.Negate().Negate(); got != v {
		t.Errorf("double negate = %+v, want %+v", got, v)
	}
}

func approxEqual(a, b Vec3) bool {
	const eps = 1e-9
	d := a.Sub(b)
	return d.SquaredLength() < eps
}
