package numeric

import "cmp"

// KthSmallest returns the k-th smallest element (zero based) of a using
// Wirth's algorithm. The slice is reordered in place.
func KthSmallest[T cmp.Ordered](a []T, k int) T {
	l, m := 0, len(a)-1
	for l < m {
		x := a[k]
		i, j := l, m
		for {
			for a[i] < x {
				i++
			}
			for x < a[j] {
				j--
			}
			if i <= j {
				a[i], a[j] = a[j], a[i]
				i++
				j--
			}
			if i > j {
				break
			}
		}
		if j < k {
			l = i
		}
		if k < i {
			m = j
		}
	}
	return a[k]
}

// Median returns the lower median of a via KthSmallest.
// a is reordered in place and must not be empty.
func Median[T cmp.Ordered](a []T) T {
	n := len(a)
	k := n / 2
	if n%2 == 0 {
		k--
	}
	return KthSmallest(a, k)
}
