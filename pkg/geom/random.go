package geom

import "math/rand"

// SampleN возвращает num случайных элементов среза без повторений.
// Исходный срез не меняется. Если элементов меньше num, вернутся все.
func SampleN[T any](rng *rand.Rand, arr []T, num int) []T {
	shuffled := make([]T, len(arr))
	copy(shuffled, arr)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if num > len(shuffled) {
		num = len(shuffled)
	}
	return shuffled[:num]
}
