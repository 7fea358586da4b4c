// Package input provides blocking line reads from standard input.
package input

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"
)

var stdinReader *bufio.Reader

// GetInput reads one line of input from stdin, without the trailing newline.
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')

	if err != nil {
		if err == io.EOF {
			// Treat a closed stdin like an explicit quit.
			return "quit"
		}
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	return strings.TrimRight(line, "\r\n")
}
