package util

func DefaultValue[T any]() T {
	var ret T
	return ret
}

func Pointer[T any](v T) *T {
	return &v
}
