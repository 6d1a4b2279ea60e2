package linkedlist

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyList       = errors.New("list is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotFound        = errors.New("value not found")
)

func fmtIndexOutOfRange(index int, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}

func fmtValueNotFound(value any) error {
	return fmt.Errorf("%w: %v", ErrNotFound, value)
}
