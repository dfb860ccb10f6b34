package ptr

// Ptr возвращает указатель на копию значения
func Ptr[T any](v T) *T {
	return &v
}

// Value возвращает значение по указателю или нулевое значение, если указатель nil
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// ValueOr возвращает значение по указателю или значение по умолчанию
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
