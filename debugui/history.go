package debugui

// History is a fixed-size ring of samples for ImGui plots.
type History struct {
	samples []float32
	next    int
	filled  bool
}

func NewHistory(size int) *History {
	return &History{samples: make([]float32, max(size, 1))}
}

func (h *History) Add(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// Ordered returns the samples oldest first. Slots never written are zero
// and come first.
func (h *History) Ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.next:])
	copy(out[n:], h.samples[:h.next])
	return out
}

// Average returns the mean of the written samples.
func (h *History) Average() float32 {
	written := h.samples[:h.next]
	if h.filled {
		written = h.samples
	}
	if len(written) == 0 {
		return 0
	}
	var sum float32
	for _, v := range written {
		sum += v
	}
	return sum / float32(len(written))
}
