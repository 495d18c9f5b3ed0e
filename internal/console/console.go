package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"curator/internal/services"
)

// Console reads operator input line by line and writes prompts and output.
// It satisfies the quota ledger's Confirmer interface.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	tty    bool
}

// New creates a console over the given streams. Color and hyperlink hints are
// enabled only when the output is a real terminal.
func New(in io.Reader, out io.Writer) *Console {
	tty := false
	if file, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
	}
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
		tty:    tty,
	}
}

// Default returns a console over stdin and stdout.
func Default() *Console {
	return New(os.Stdin, os.Stdout)
}

// IsTerminal reports whether output goes to an interactive terminal.
func (c *Console) IsTerminal() bool { return c.tty }

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line of output.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Prompt displays a label and reads one trimmed line. A closed input stream
// surfaces as an input error.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprintf(c.out, "%s ", label)
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", services.Wrap(services.ErrInput, "console", "prompt", label, err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question and re-prompts until it gets a recognizable
// answer.
func (c *Console) Confirm(prompt string) (bool, error) {
	for {
		answer, err := c.Prompt(prompt + " [y/n]")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(c.out, "Please answer y or n.")
		}
	}
}

// PromptInt reads an integer within [min, max], re-prompting on anything
// else.
func (c *Console) PromptInt(label string, min, max int) (int, error) {
	for {
		answer, err := c.Prompt(label)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(answer)
		if convErr != nil || value < min || value > max {
			fmt.Fprintf(c.out, "Enter a number between %d and %d.\n", min, max)
			continue
		}
		return value, nil
	}
}

// ParseSelection parses a 1-based selection expression like "1,3" or "2-5"
// or "1,3-4" against a list of max entries. The result is sorted, unique,
// and still 1-based. Out-of-range or malformed tokens produce an input
// error naming the offending token.
func ParseSelection(input string, max int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, services.Wrap(services.ErrInput, "console", "selection", "empty selection", nil)
	}

	picked := make(map[int]struct{})
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		low, high, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		if low < 1 || high > max || low > high {
			return nil, services.Wrap(services.ErrInput, "console", "selection",
				fmt.Sprintf("%q is outside 1-%d", token, max), nil)
		}
		for i := low; i <= high; i++ {
			picked[i] = struct{}{}
		}
	}
	if len(picked) == 0 {
		return nil, services.Wrap(services.ErrInput, "console", "selection", "empty selection", nil)
	}

	out := make([]int, 0, len(picked))
	for i := range picked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out, nil
}

func parseToken(token string) (int, int, error) {
	if low, high, found := strings.Cut(token, "-"); found {
		a, errA := strconv.Atoi(strings.TrimSpace(low))
		b, errB := strconv.Atoi(strings.TrimSpace(high))
		if errA != nil || errB != nil {
			return 0, 0, services.Wrap(services.ErrInput, "console", "selection",
				fmt.Sprintf("bad range %q", token), nil)
		}
		return a, b, nil
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, 0, services.Wrap(services.ErrInput, "console", "selection",
			fmt.Sprintf("bad index %q", token), nil)
	}
	return value, value, nil
}
