package guards

// tracked is the element type used to observe finalizations.
type tracked struct {
	value int
	hits  *int
}

func (t *tracked) Drop() {
	*t.hits++
}
