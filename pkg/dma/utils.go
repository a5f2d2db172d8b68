package dma

func cleari32(a []int32) {
	for i := range a {
		a[i] = 0
	}
}

func alloci32(n int) []int32 {
	return make([]int32, n)
}
