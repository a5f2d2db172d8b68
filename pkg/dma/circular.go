package dma

// circular writes sample blocks into a double buffer, wrapping at the end and
// raising an event each time a half boundary is reached.
type circular struct {
	buffer []int32
	half   int
	pos    int
	cb     Callbacks
}

func newCircular(buffer []int32, cb Callbacks) (*circular, error) {
	if len(buffer) == 0 || len(buffer)%2 != 0 {
		return nil, ErrOddBuffer
	}
	return &circular{
		buffer: buffer,
		half:   len(buffer) / 2,
		cb:     cb,
	}, nil
}

// write never stops at a half boundary without firing its event, so a block
// spanning several halves raises every crossed event in order.
func (c *circular) write(samples []int32) {
	for len(samples) > 0 {
		end := len(c.buffer)
		if c.pos < c.half {
			end = c.half
		}

		n := copy(c.buffer[c.pos:end], samples)
		samples = samples[n:]
		c.pos += n

		switch c.pos {
		case c.half:
			if c.cb.HalfComplete != nil {
				c.cb.HalfComplete()
			}
		case len(c.buffer):
			c.pos = 0
			if c.cb.TransferComplete != nil {
				c.cb.TransferComplete()
			}
		}
	}
}
