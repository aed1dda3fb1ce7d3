// Package shell builds the lines yman types into terminals. Every line that
// reaches a terminal goes through this package, so quoting lives in one place.
package shell

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// ProbeLine starts a short-lived child so the shell has a foreground
	// process whose environment can be read.
	ProbeLine = "sleep 1"

	// ClearLine wipes the injected setup lines from the screen.
	ClearLine = "clear"

	// DefaultChangeDir is the directory command. take creates the directory
	// when it is missing (zsh/oh-my-zsh); use "cd" for plain shells.
	DefaultChangeDir = "take"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Sender delivers literal text to a terminal session.
type Sender interface {
	SendText(session int, text string) error
}

// Apply types one line into a session and presses enter.
func Apply(s Sender, session int, line string) error {
	if strings.ContainsAny(line, "\r\n") {
		return fmt.Errorf("refusing to send multi-line text to session %d: %q", session, line)
	}
	if err := s.SendText(session, line+"\n"); err != nil {
		return fmt.Errorf("send to session %d: %w", session, err)
	}
	return nil
}

// Quote quotes s for the shell when it contains anything the shell would
// interpret. Plain words are returned unchanged. Strings with control
// characters use $'...' so the result stays on one line.
func Quote(s string) string {
	switch {
	case s == "":
		return "''"
	case hasControl(s):
		return ANSIQuote(s)
	case strings.HasPrefix(s, "="), strings.ContainsAny(s, " \t'\"\\$`(){}[]*?!;|&<>~#^"):
		return SingleQuote(s)
	}
	return s
}

// SingleQuote always wraps s in single quotes, escaping embedded ones.
func SingleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ANSIQuote writes s as a $'...' string with control characters escaped.
// bash and zsh expand it back to the exact bytes.
func ANSIQuote(s string) string {
	var b strings.Builder
	b.WriteString("$'")
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteString("'")
	return b.String()
}

func hasControl(s string) bool {
	for _, r := range s {
		if (r < 0x20 && r != '\t') || r == 0x7f {
			return true
		}
	}
	return false
}

// Join turns an argument vector back into a command line.
func Join(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	parts := make([]string, 0, len(argv))
	for _, a := range argv {
		parts = append(parts, Quote(a))
	}
	return strings.Join(parts, " ")
}

// ChangeDir returns the line that moves the shell into dir.
func ChangeDir(command, dir string) string {
	if command == "" {
		command = DefaultChangeDir
	}
	return command + " " + Quote(dir)
}

// IsIdentifier reports whether key can be exported by a POSIX shell.
func IsIdentifier(key string) bool {
	return identRe.MatchString(key)
}

// Export returns the line that exports key with value. Values with control
// characters are written with $'...'.
func Export(key, value string) (string, error) {
	if !IsIdentifier(key) {
		return "", fmt.Errorf("cannot export %q: not a shell identifier", key)
	}
	if hasControl(value) {
		return "export " + key + "=" + ANSIQuote(value), nil
	}
	return "export " + key + "=" + SingleQuote(value), nil
}
