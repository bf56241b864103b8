// Package guards provides ownership-tracking wrappers over reserved storage.
//
// Storage enters the package in an uninitialized form: slots are reserved but
// hold no live values yet. A one-way transition (Init, InitCopyOf) produces
// the initialized form, which gives access to the values and finalizes each
// of them exactly once when released. Transitions consume the guard they are
// called on, so storage can never be observed in both forms at once.
package guards

// Dropper is implemented by element types that need per-element cleanup when
// the storage holding them is released.
type Dropper interface {
	Drop()
}

func dropValue[T any](v *T) {
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}
