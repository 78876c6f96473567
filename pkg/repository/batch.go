package repository

import "github.com/m-mizutani/goerr/v2"

// MaxBatchSize is the maximum number of items a single batch write accepts.
const MaxBatchSize = 25

// CheckBatch fails with ErrBatchLimit when n items can not be written in one call.
func CheckBatch(n int) error {
	if n > MaxBatchSize {
		return goerr.Wrap(ErrBatchLimit, "too many items for one batch write",
			goerr.V("items", n),
			goerr.V("limit", MaxBatchSize),
		)
	}
	return nil
}

// Chunk splits items into consecutive chunks of at most size items.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = MaxBatchSize
	}

	var chunks [][]T
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks
}
