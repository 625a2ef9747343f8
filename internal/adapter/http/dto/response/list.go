package response

// List is the envelope of every collection response.
type List[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func NewList[T any](items []T) List[T] {
	if items == nil {
		items = []T{}
	}
	return List[T]{Items: items, Total: len(items)}
}
