package patlib

// BufferContext is an EvaluationContext over an in-memory byte buffer. Hosts
// that evaluate scripts against loaded data embed one; tests use it as the
// standard harness.
type BufferContext struct {
	Base    uint64
	Data    []byte
	Env     map[string]string
	Console *Console
}

// NewBufferContext wraps data with base address 0 and a silent console.
func NewBufferContext(data []byte) *BufferContext {
	return &BufferContext{
		Data:    data,
		Console: NewConsole(nil),
	}
}

func (c *BufferContext) Log(level LogLevel, msg string) {
	if c.Console != nil {
		c.Console.Log(level, msg)
	}
}

func (c *BufferContext) EnvVariable(name string) (string, bool) {
	v, ok := c.Env[name]
	return v, ok
}

func (c *BufferContext) DataBaseAddress() uint64 { return c.Base }

func (c *BufferContext) DataSize() uint64 { return uint64(len(c.Data)) }

// ReadData copies the addressed region into buf. Regions outside the buffer
// read as zero.
func (c *BufferContext) ReadData(address uint64, buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	if address < c.Base {
		return
	}
	off := address - c.Base
	if off >= uint64(len(c.Data)) {
		return
	}
	copy(buf, c.Data[off:])
}
