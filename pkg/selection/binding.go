package selection

// Binding is the caller-owned storage a picker reads and replaces.
type Binding[T any] interface {
	Get() T
	Set(T)
}

// State is a Binding that holds its value and calls OnChange after every Set.
//
// It plays the role of a stateful widget's field: the change callback is the
// place to schedule a rebuild.
type State[T any] struct {
	value    T
	onChange func(T)
}

// NewState returns a State holding initial. onChange may be nil.
func NewState[T any](initial T, onChange func(T)) *State[T] {
	return &State[T]{value: initial, onChange: onChange}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	return s.value
}

// Set replaces the value and notifies the change callback.
func (s *State[T]) Set(v T) {
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
}

// BindingFunc adapts a getter and setter pair to Binding.
type BindingFunc[T any] struct {
	GetFunc func() T
	SetFunc func(T)
}

// Get calls GetFunc, returning the zero value when it is nil.
func (b BindingFunc[T]) Get() T {
	if b.GetFunc == nil {
		var zero T
		return zero
	}
	return b.GetFunc()
}

// Set calls SetFunc if it is non-nil.
func (b BindingFunc[T]) Set(v T) {
	if b.SetFunc != nil {
		b.SetFunc(v)
	}
}
