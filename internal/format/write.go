package format

// Writer accumulates serialized output.
type Writer struct {
	buf []byte
}

// NewWriter creates a writer with capacity for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) Len() int {
	return len(w.buf)
}
