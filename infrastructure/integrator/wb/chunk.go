package wb

// chunkInt64 divide a lista em pedaços de no máximo size elementos. A API do
// WB Promote aceita até 50 campanhas (e 50 produtos) por chamada.
func chunkInt64(values []int64, size int) [][]int64 {
	if size <= 0 || len(values) <= size {
		if len(values) == 0 {
			return nil
		}
		return [][]int64{values}
	}

	chunks := make([][]int64, 0, (len(values)+size-1)/size)
	for start := 0; start < len(values); start += size {
		end := start + size
		if end > len(values) {
			end = len(values)
		}
		chunks = append(chunks, values[start:end])
	}
	return chunks
}
