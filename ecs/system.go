package ecs

// System represents a behavior that reads entities from the frame's storage.
// A non-nil error aborts the dispatch it was returned from.
type System[A any] interface {
	Process(frame *Frame[A]) error
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[A any] func(frame *Frame[A]) error

func (f SystemFunc[A]) Process(frame *Frame[A]) error {
	return f(frame)
}

// Frame is the single value every system receives during a dispatch. All systems
// in one dispatch share the same Frame.
type Frame[A any] struct {
	Storage  *Storage
	Commands *Commands
	Args     A
}
