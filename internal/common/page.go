package common

type Page[T any] struct {
	Items []T

	// Index is the 0-based index of the page after clamping.
	Index int
	Total int

	// Offset is the position of the first item of the page in the whole list.
	Offset int
}

// Paginate cuts the page-th page of items. Out of range pages are clamped to
// the first or last page, an empty list has a single empty page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = 1
	}

	index, total, offset := PageWindow(int64(len(items)), page, size)

	end := offset + size
	if end > len(items) {
		end = len(items)
	}

	var result []T
	if offset < end {
		result = items[offset:end]
	}

	return Page[T]{Items: result, Index: index, Total: total, Offset: offset}
}

// PageWindow is Paginate for lists which are read page by page from the
// store. It returns the clamped page index, the total pages and the offset to
// read from.
func PageWindow(count int64, page, size int) (index, total, offset int) {
	if size <= 0 {
		size = 1
	}

	total = int((count + int64(size) - 1) / int64(size))
	if total == 0 {
		total = 1
	}

	if page < 0 {
		page = 0
	}

	if page >= total {
		page = total - 1
	}

	return page, total, page * size
}
