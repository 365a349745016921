package geom

import "math"

// Vector2D - пара координат. Используется и для позиций, и для скоростей.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add возвращает сумму векторов, не меняя исходный.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub возвращает разность векторов.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale умножает вектор на скаляр.
func (v Vector2D) Scale(k float64) Vector2D {
	return Vector2D{X: v.X * k, Y: v.Y * k}
}

// Length длина вектора.
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized возвращает единичный вектор того же направления.
// Нулевой вектор остается нулевым (защита от деления на ноль).
func (v Vector2D) Normalized() Vector2D {
	l := v.Length()
	if l == 0 {
		return Vector2D{}
	}
	return Vector2D{X: v.X / l, Y: v.Y / l}
}

// Clamp зажимает обе координаты в прямоугольник [lo, hi] покомпонентно.
func (v Vector2D) Clamp(lo, hi Vector2D) Vector2D {
	return Vector2D{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
	}
}

// Distance расстояние между двумя точками.
func Distance(p1, p2 Vector2D) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp ограничивает значение отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
