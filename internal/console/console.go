package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Console writes operator-facing notices and collects blocking
// acknowledgments from the keyboard.
type Console struct {
	input       io.Reader
	output      io.Writer
	interactive bool
}

func NewConsole(interactive bool) (instance *Console) {
	return &Console{
		input:       os.Stdin,
		output:      os.Stdout,
		interactive: interactive,
	}
}

// NewConsoleWith binds the console to the given streams.
func NewConsoleWith(input io.Reader, output io.Writer, interactive bool) (instance *Console) {
	return &Console{
		input:       input,
		output:      output,
		interactive: interactive,
	}
}

func (operatorConsole *Console) Notice(format string, arguments ...interface{}) {
	fmt.Fprintf(operatorConsole.output, format+"\n", arguments...)
}

// Acknowledge blocks until the operator presses Enter, so the console window
// does not close before the notice can be read when the launcher was started
// by double-click. In non-interactive mode it returns immediately.
func (operatorConsole *Console) Acknowledge() {
	if !operatorConsole.interactive {
		return
	}
	fmt.Fprint(operatorConsole.output, "Press Enter to exit...")
	reader := bufio.NewReader(operatorConsole.input)
	reader.ReadString('\n')
}
