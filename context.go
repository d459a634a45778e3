package patlib

// LogLevel is a console severity.
type LogLevel uint8

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// EvaluationContext is the host facade handed to every builtin invocation.
// It exposes the console, environment variables and the loaded data to the
// function implementations. The bridge consumes it; the evaluator provides
// it. BufferContext is a ready-made implementation over an in-memory buffer.
type EvaluationContext interface {
	// Log writes a message to the evaluation console.
	Log(level LogLevel, msg string)

	// EnvVariable returns a host environment variable and a presence flag.
	EnvVariable(name string) (string, bool)

	// DataBaseAddress returns the base address of the loaded data.
	DataBaseAddress() uint64

	// DataSize returns the byte length of the loaded data.
	DataSize() uint64

	// ReadData fills buf with len(buf) bytes starting at address.
	// Out-of-range regions read as zero; signaling bounds violations is the
	// host's business, not the bridge's.
	ReadData(address uint64, buf []byte)
}

// FileMode selects how the host opens a file. The numeric values are part of
// the script-visible contract of std.file.open.
type FileMode uint8

const (
	FileModeRead   FileMode = 1
	FileModeWrite  FileMode = 2
	FileModeCreate FileMode = 3
)

// File is an open host file resource as seen by the std.file builtins.
// All operations act on the current position where one exists.
type File interface {
	// ReadString reads up to n bytes from the current position.
	ReadString(n int) (string, error)

	// WriteString writes data at the current position.
	WriteString(data string) error

	// Seek moves the position to offset bytes from the start.
	Seek(offset uint64) error

	// Size returns the byte length of the file.
	Size() (uint64, error)

	// SetSize truncates or extends the file to n bytes.
	SetSize(n uint64) error

	// Flush forces buffered writes to stable storage.
	Flush() error

	// Remove deletes the underlying file. The resource is unusable after.
	Remove() error

	// Close releases the resource.
	Close() error
}

// Net is the host network capability consumed by std.http.
type Net interface {
	// GetString fetches url and returns the response body.
	GetString(url string) (string, error)
}
