package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestChoice_ValidSelection(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("3\n")
	assert.Equal(t, 3, p.Choice(5, "Select option"))
}

func TestChoice_Cancel(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("0\n")
	assert.Equal(t, 0, p.Choice(5, "Select option"))
}

func TestChoice_RepromptsOnInvalidInput(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("abc\n9\n2\n")

	assert.Equal(t, 2, p.Choice(5, "Select option"))
	assert.Contains(t, out.String(), "Please enter a valid number")
	assert.Contains(t, out.String(), "Please enter a number between 1 and 5")
}

func TestChoice_EndOfInputCancels(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("")
	assert.Equal(t, 0, p.Choice(5, "Select option"))
}

func TestMultiChoice_CommaSeparated(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("1,3,5\n")
	assert.Equal(t, []int{1, 3, 5}, p.MultiChoice(5, "Select ROMs"))
}

func TestMultiChoice_All(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("all\n")
	assert.Equal(t, []int{1, 2, 3}, p.MultiChoice(3, "Select ROMs"))
}

func TestMultiChoice_Cancel(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("0\n")
	assert.Empty(t, p.MultiChoice(3, "Select ROMs"))
}

func TestMultiChoice_SkipsOutOfRange(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("1,9,2\n")

	assert.Equal(t, []int{1, 2}, p.MultiChoice(5, "Select ROMs"),
		"out-of-range tokens are skipped, valid ones kept")
	assert.Contains(t, out.String(), "Skipping invalid choice: 9")
}

func TestMultiChoice_RepromptsOnUnparsableToken(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("1,x,3\n2\n")

	assert.Equal(t, []int{2}, p.MultiChoice(5, "Select ROMs"))
	assert.Contains(t, out.String(), "Please enter valid numbers separated by commas")
}

func TestParseSelections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		max     int
		picked  []int
		skipped []int
		wantErr bool
	}{
		{"sorted_unique", "3, 1, 3, 2", 5, []int{1, 2, 3}, nil, false},
		{"out_of_range_skipped", "1,7,0", 5, []int{1}, []int{7, 0}, false},
		{"all_skipped", "9", 5, nil, []int{9}, false},
		{"non_numeric_fails_whole_input", "1,two", 5, nil, nil, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			picked, skipped, err := ParseSelections(tt.line, tt.max)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.picked, picked)
			assert.Equal(t, tt.skipped, skipped)
		})
	}
}

func pagedLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "item"
	}
	return labels
}

func TestPagedChoice_FirstPageSelection(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("2\n")

	assert.Equal(t, 1, p.PagedChoice("Items", pagedLabels(20), 9))
	assert.Contains(t, out.String(), "(Page 1/3)")
	assert.Contains(t, out.String(), "N=Next")
	assert.NotContains(t, out.String(), "P=Prev", "no previous page exists on page one")
}

func TestPagedChoice_NavigatesToLaterPage(t *testing.T) {
	t.Parallel()

	// Page forward twice, back once, pick the first item of page two.
	p, out := newTestPrompter("n\nn\np\n1\n")

	assert.Equal(t, 9, p.PagedChoice("Items", pagedLabels(20), 9))
	assert.Contains(t, out.String(), "(Page 3/3)")
}

func TestPagedChoice_LastPageBounds(t *testing.T) {
	t.Parallel()

	// 20 items, page 3 holds items 19-20; "3" is out of range there.
	p, out := newTestPrompter("n\nn\n3\n2\n")

	assert.Equal(t, 19, p.PagedChoice("Items", pagedLabels(20), 9))
	assert.Contains(t, out.String(), "Please enter a number between 1 and 2")
}

func TestPagedChoice_NoItems(t *testing.T) {
	t.Parallel()

	// Nothing to choose from must return cancel immediately, without
	// rendering a page or consuming input.
	p, out := newTestPrompter("1\n")

	assert.Equal(t, -1, p.PagedChoice("Items", nil, 9))
	assert.Empty(t, out.String())
}

func TestPagedChoice_Cancel(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("0\n")
	assert.Equal(t, -1, p.PagedChoice("Items", pagedLabels(3), 9))
}

func TestPagedChoice_InvalidInputReprompts(t *testing.T) {
	t.Parallel()

	p, out := newTestPrompter("x\n1\n")

	assert.Equal(t, 0, p.PagedChoice("Items", pagedLabels(3), 9))
	assert.Contains(t, out.String(), "Invalid input. Enter a number or navigation key.")
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"yes\n", false},
		{"", false},
	}

	for _, tt := range tests {
		p, _ := newTestPrompter(tt.input)
		assert.Equal(t, tt.expected, p.Confirm("Proceed?"), "input %q", tt.input)
	}
}
