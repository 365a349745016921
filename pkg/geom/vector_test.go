package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestDistance(t *testing.T) {
	a := Vector2D{X: 0, Y: 0}
	b := Vector2D{X: 3, Y: 4}

	if d := Distance(a, b); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}

	if d := Distance(a, a); d != 0 {
		t.Errorf("Expected distance 0 for same point, got %f", d)
	}
}

func TestNormalized(t *testing.T) {
	v := Vector2D{X: 10, Y: 0}
	n := v.Normalized()
	if n.X != 1 || n.Y != 0 {
		t.Errorf("Expected (1,0), got (%f,%f)", n.X, n.Y)
	}

	// Нулевой вектор не должен дать NaN
	z := Vector2D{}.Normalized()
	if math.IsNaN(z.X) || math.IsNaN(z.Y) {
		t.Error("Normalized zero vector produced NaN")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Value inside range should be unchanged")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("Value below range should clamp to lo")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("Value above range should clamp to hi")
	}
}

func TestVectorClamp(t *testing.T) {
	lo := Vector2D{X: 10, Y: 10}
	hi := Vector2D{X: 790, Y: 590}

	inside := Vector2D{X: 400, Y: 300}.Clamp(lo, hi)
	if inside.X != 400 || inside.Y != 300 {
		t.Errorf("Point inside rect should be unchanged, got (%f,%f)", inside.X, inside.Y)
	}

	// Оси зажимаются независимо
	corner := Vector2D{X: -5, Y: 900}.Clamp(lo, hi)
	if corner.X != 10 || corner.Y != 590 {
		t.Errorf("Expected (10,590), got (%f,%f)", corner.X, corner.Y)
	}
}

func TestSampleN(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	arr := []int{1, 2, 3, 4, 5}

	got := SampleN(rng, arr, 3)
	if len(got) != 3 {
		t.Fatalf("Expected 3 elements, got %d", len(got))
	}

	// Без повторений
	seen := map[int]bool{}
	for _, v := range got {
		if seen[v] {
			t.Errorf("Duplicate element %d in sample", v)
		}
		seen[v] = true
	}

	// Запрос больше, чем есть - возвращаем все
	if got := SampleN(rng, arr, 10); len(got) != 5 {
		t.Errorf("Expected all 5 elements, got %d", len(got))
	}

	// Исходный срез не перемешан
	for i, v := range []int{1, 2, 3, 4, 5} {
		if arr[i] != v {
			t.Fatal("SampleN mutated the source slice")
		}
	}
}
