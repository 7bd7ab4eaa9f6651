package catalog

type Page[T any] struct {
	Items      []T
	Page       int // 1-based, ya acotada a [1, TotalPages]
	TotalPages int // 0 si no hay items
	Total      int
}

// Paginate corta items en páginas de size (default PageSize).
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = PageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

// PageWindow devuelve los números de página a mostrar: como máximo width,
// centrados en current y siempre dentro de [1, total].
func PageWindow(current, total, width int) []int {
	if total <= 0 {
		return nil
	}
	if width <= 0 {
		width = PageWindowSize
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > total {
		end = total
		start = end - width + 1
		if start < 1 {
			start = 1
		}
	}

	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}
