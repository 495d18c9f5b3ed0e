package console_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"curator/internal/console"
	"curator/internal/services"
)

func TestPromptTrimsInput(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("  Catan  \n"), &out)

	got, err := c.Prompt("Target name:")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if got != "Catan" {
		t.Fatalf("Prompt = %q, want %q", got, "Catan")
	}
	if !strings.Contains(out.String(), "Target name:") {
		t.Fatalf("prompt label missing from output: %q", out.String())
	}
}

func TestPromptClosedInput(t *testing.T) {
	c := console.New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := c.Prompt("anything"); !errors.Is(err, services.ErrInput) {
		t.Fatalf("expected input error on closed stream, got %v", err)
	}
}

func TestConfirmReprompts(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("maybe\nYES\n"), &out)

	ok, err := c.Confirm("Proceed?")
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if !ok {
		t.Fatal("expected confirmation")
	}
	if !strings.Contains(out.String(), "Please answer y or n.") {
		t.Fatalf("expected re-prompt notice, got %q", out.String())
	}
}

func TestConfirmNo(t *testing.T) {
	c := console.New(strings.NewReader("n\n"), &bytes.Buffer{})
	ok, err := c.Confirm("Proceed?")
	if err != nil || ok {
		t.Fatalf("Confirm = %v, %v; want false, nil", ok, err)
	}
}

func TestPromptIntRepromptsOutOfRange(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("abc\n99\n3\n"), &out)

	got, err := c.PromptInt("Pick:", 1, 5)
	if err != nil {
		t.Fatalf("PromptInt failed: %v", err)
	}
	if got != 3 {
		t.Fatalf("PromptInt = %d, want 3", got)
	}
	if strings.Count(out.String(), "Enter a number between 1 and 5.") != 2 {
		t.Fatalf("expected two re-prompts, got %q", out.String())
	}
}

func TestParseSelection(t *testing.T) {
	cases := []struct {
		input string
		max   int
		want  []int
	}{
		{"1", 5, []int{1}},
		{"1,3", 5, []int{1, 3}},
		{"2-4", 5, []int{2, 3, 4}},
		{"1,3-4, 2", 5, []int{1, 2, 3, 4}},
		{"3,3,3", 5, []int{3}},
	}
	for _, tc := range cases {
		got, err := console.ParseSelection(tc.input, tc.max)
		if err != nil {
			t.Errorf("ParseSelection(%q) failed: %v", tc.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseSelection(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseSelectionRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "0", "6", "2-1", "a", "1-b", "1,9"} {
		if _, err := console.ParseSelection(input, 5); !errors.Is(err, services.ErrInput) {
			t.Errorf("ParseSelection(%q): expected input error, got %v", input, err)
		}
	}
}
