// Package heapsort is the sort kernel under measurement: an in-place
// heap sort over signed 32-bit integers. It allocates nothing, so the
// timed window measures comparison and swap work only.
package heapsort

// Sort sorts data in place into non-decreasing order. Arrays of length
// 0 or 1 are no-ops.
func Sort(data []int32) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, 0, end)
	}
}

// siftDown restores the max-heap property for the subtree rooted at
// root, treating data[:end] as the heap.
func siftDown(data []int32, root, end int) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if child+1 < end && data[child+1] > data[child] {
			child++
		}
		if data[root] >= data[child] {
			return
		}
		data[root], data[child] = data[child], data[root]
		root = child
	}
}
