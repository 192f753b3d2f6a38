package ecs

import (
	"errors"
	"fmt"
)

// ErrUnknownEntity matches every *UnknownEntityError via errors.Is.
var ErrUnknownEntity = errors.New("unknown entity")

type UnknownEntityError struct {
	Entity EntityId
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity: %d", e.Entity)
}

func (e *UnknownEntityError) Is(target error) bool {
	return target == ErrUnknownEntity
}
