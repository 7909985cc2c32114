// Package shell provides the interactive prompt primitives: single and
// multi selection, paginated selection, confirmation, and acknowledgment.
// All prompts re-ask on invalid input and treat an interrupt signal or EOF
// as cancel.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
)

// Prompter reads user input line by line. A single reader goroutine feeds
// the lines channel so an interrupt signal can cancel a pending prompt
// without tearing down the process.
type Prompter struct {
	out   io.Writer
	lines chan string
	sig   chan os.Signal
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan string),
		sig:   make(chan os.Signal, 1),
	}
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			p.lines <- scanner.Text()
		}
		close(p.lines)
	}()
	return p
}

// WatchInterrupts routes SIGINT to the prompter so Ctrl-C at a prompt
// cancels the prompt instead of killing the process.
func (p *Prompter) WatchInterrupts() {
	signal.Notify(p.sig, os.Interrupt)
}

// ReadLine prints prompt and returns the next input line, trimmed.
// ok is false when the prompt was cancelled by an interrupt or input ended.
func (p *Prompter) ReadLine(prompt string) (line string, ok bool) {
	fmt.Fprint(p.out, prompt)
	select {
	case line, open := <-p.lines:
		if !open {
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-p.sig:
		fmt.Fprintln(p.out)
		return "", false
	}
}

// Choice prompts for a single number in [1, max]. Returns 0 on cancel
// (explicit "0", interrupt, or end of input); re-prompts on anything else
// that does not parse or is out of range.
func (p *Prompter) Choice(max int, prompt string) int {
	for {
		line, ok := p.ReadLine(fmt.Sprintf("%s (1-%d, or 0 to cancel): ", prompt, max))
		if !ok || line == "0" {
			return 0
		}
		val, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number")
			continue
		}
		if val >= 1 && val <= max {
			return val
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d\n", max)
	}
}

// MultiChoice prompts for comma-separated numbers in [1, max], or "all" for
// the full range. Returns nil on cancel. Out-of-range entries are reported
// and skipped; a token that is not a number at all re-prompts the whole
// input.
func (p *Prompter) MultiChoice(max int, prompt string) []int {
	for {
		line, ok := p.ReadLine(fmt.Sprintf("%s (e.g. 1,3,5 or 'all', or 0 to cancel): ", prompt))
		if !ok {
			return nil
		}
		line = strings.ToLower(line)
		if line == "0" {
			return nil
		}
		if line == "all" {
			all := make([]int, max)
			for i := range all {
				all[i] = i + 1
			}
			return all
		}

		picked, skipped, err := ParseSelections(line, max)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter valid numbers separated by commas")
			continue
		}
		for _, s := range skipped {
			fmt.Fprintf(p.out, "Skipping invalid choice: %d\n", s)
		}
		return picked
	}
}

// ParseSelections parses a comma-separated selection against [1, max].
// It returns the sorted set of unique in-range values and the out-of-range
// values that were skipped. A token that does not parse as an integer fails
// the whole input.
func ParseSelections(line string, max int) (picked, skipped []int, err error) {
	seen := make(map[int]struct{})
	for _, part := range strings.Split(line, ",") {
		val, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, nil, err
		}
		if val < 1 || val > max {
			skipped = append(skipped, val)
			continue
		}
		if _, dup := seen[val]; dup {
			continue
		}
		seen[val] = struct{}{}
		picked = append(picked, val)
	}
	sort.Ints(picked)
	return picked, skipped, nil
}

// PagedChoice shows labels in pages of pageSize and prompts until one is
// selected or the prompt is cancelled. "n"/"p" move between pages when a
// next/previous page exists. Returns the index into labels, or -1 on cancel
// or when there is nothing to choose from.
func (p *Prompter) PagedChoice(title string, labels []string, pageSize int) int {
	if len(labels) == 0 {
		return -1
	}
	totalPages := (len(labels) + pageSize - 1) / pageSize
	page := 0

	for {
		start := page * pageSize
		end := start + pageSize
		if end > len(labels) {
			end = len(labels)
		}
		pageLabels := labels[start:end]

		fmt.Fprintf(p.out, "\n%s (Page %d/%d):\n", title, page+1, totalPages)
		for i, label := range pageLabels {
			fmt.Fprintf(p.out, "  [%2d] %s\n", i+1, label)
		}

		var nav []string
		if page > 0 {
			nav = append(nav, "P=Prev")
		}
		if page < totalPages-1 {
			nav = append(nav, "N=Next")
		}
		nav = append(nav, "0=Cancel")

		prompt := fmt.Sprintf("Select (1-%d) [%s]: ", len(pageLabels), strings.Join(nav, ", "))
		line, ok := p.ReadLine(prompt)
		if !ok {
			return -1
		}
		line = strings.ToLower(line)

		switch {
		case line == "0":
			return -1
		case line == "p" && page > 0:
			page--
		case line == "n" && page < totalPages-1:
			page++
		default:
			choice, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintln(p.out, "Invalid input. Enter a number or navigation key.")
				continue
			}
			if choice < 1 || choice > len(pageLabels) {
				fmt.Fprintf(p.out, "Please enter a number between 1 and %d\n", len(pageLabels))
				continue
			}
			return start + choice - 1
		}
	}
}

// Confirm prompts with a y/n question and reports whether the answer was
// exactly "y". Anything else, including cancel, declines.
func (p *Prompter) Confirm(prompt string) bool {
	line, ok := p.ReadLine(prompt + " (y/n): ")
	return ok && strings.ToLower(line) == "y"
}

// Acknowledge waits for the user to press Enter.
func (p *Prompter) Acknowledge(prompt string) {
	p.ReadLine(prompt)
}
