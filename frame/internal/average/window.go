package average

// Window is a bounded rolling average of float samples.
// When full, every new sample evicts the oldest one.
type Window struct {
	samples []float64
	next    int
	sum     float64
}

func NewWindow(size int) *Window {
	if size < 1 {
		size = 1
	}

	return &Window{
		samples: make([]float64, 0, size),
	}
}

func (w *Window) Push(sample float64) {
	if len(w.samples) < cap(w.samples) {
		w.samples = append(w.samples, sample)
		w.sum += sample
		return
	}

	w.sum += sample - w.samples[w.next]
	w.samples[w.next] = sample
	w.next = (w.next + 1) % len(w.samples)
}

// Mean of current samples, 0 when empty
func (w *Window) Mean() float64 {
	if len(w.samples) == 0 {
		return 0
	}

	return w.sum / float64(len(w.samples))
}

func (w *Window) Len() int {
	return len(w.samples)
}

func (w *Window) Size() int {
	return cap(w.samples)
}

// Samples returns copy of samples from the oldest to the newest
func (w *Window) Samples() []float64 {
	out := make([]float64, 0, len(w.samples))
	out = append(out, w.samples[w.next:]...)
	out = append(out, w.samples[:w.next]...)

	return out
}

// Resize drops all samples and changes window capacity
func (w *Window) Resize(size int) {
	if size < 1 {
		size = 1
	}

	w.samples = make([]float64, 0, size)
	w.next = 0
	w.sum = 0
}

func (w *Window) Clear() {
	w.samples = w.samples[:0]
	w.next = 0
	w.sum = 0
}
