package tree

// sortPairs sorts values ascending, permuting classes identically. It is a
// quicksort with an insertion-sort fallback for small ranges and a
// heapsort fallback bounded by recursion depth, avoiding the per-element
// interface-method overhead sort.Interface would add in this hot loop.
func sortPairs(values, classes []int) {
	n := len(values)
	if n < 2 {
		return
	}
	depth := 0
	for i := n; i > 0; i >>= 1 {
		depth++
	}
	quickSort(values, classes, 0, n-1, depth*2)
}

const insertionThreshold = 12

func quickSort(values, classes []int, lo, hi, depth int) {
	for hi-lo > insertionThreshold {
		if depth == 0 {
			heapSort(values, classes, lo, hi)
			return
		}
		depth--
		p := medianOfThreePivot(values, classes, lo, hi)
		p = partitionAround(values, classes, lo, hi, p)
		if p-lo < hi-p {
			quickSort(values, classes, lo, p-1, depth)
			lo = p + 1
		} else {
			quickSort(values, classes, p+1, hi, depth)
			hi = p - 1
		}
	}
	insertionSort(values, classes, lo, hi)
}

func medianOfThreePivot(values, classes []int, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if values[mid] < values[lo] {
		swap(values, classes, lo, mid)
	}
	if values[hi] < values[lo] {
		swap(values, classes, lo, hi)
	}
	if values[hi] < values[mid] {
		swap(values, classes, mid, hi)
	}
	return mid
}

func partitionAround(values, classes []int, lo, hi, p int) int {
	swap(values, classes, p, hi-1)
	pivot := values[hi-1]
	i := lo
	for j := lo; j < hi-1; j++ {
		if values[j] < pivot {
			swap(values, classes, i, j)
			i++
		}
	}
	swap(values, classes, i, hi-1)
	return i
}

func insertionSort(values, classes []int, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		v, c := values[i], classes[i]
		j := i - 1
		for j >= lo && values[j] > v {
			values[j+1] = values[j]
			classes[j+1] = classes[j]
			j--
		}
		values[j+1] = v
		classes[j+1] = c
	}
}

func heapSort(values, classes []int, lo, hi int) {
	n := hi - lo + 1
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(values, classes, i, n, lo)
	}
	for i := n - 1; i > 0; i-- {
		swap(values, classes, lo, lo+i)
		siftDown(values, classes, 0, i, lo)
	}
}

func siftDown(values, classes []int, root, n, lo int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && values[lo+child] < values[lo+child+1] {
			child++
		}
		if values[lo+root] >= values[lo+child] {
			return
		}
		swap(values, classes, lo+root, lo+child)
		root = child
	}
}

func swap(values, classes []int, i, j int) {
	values[i], values[j] = values[j], values[i]
	classes[i], classes[j] = classes[j], classes[i]
}
