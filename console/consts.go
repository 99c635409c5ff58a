package console

const (
	// Default terminal width in characters, used when the window size
	// lookup fails or the output is not a TTY.
	defaultTermWidth = 80
)
