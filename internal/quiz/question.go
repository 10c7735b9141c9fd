package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type Option struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type Question struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Block marks the question index at which a section header is shown.
type Block struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// Bank is the ordered, immutable question set loaded once at startup.
type Bank struct {
	Blocks    []Block    `json:"blocks"`
	Questions []Question `json:"questions"`
}

func LoadBank(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	var b Bank
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Bank) Validate() error {
	if len(b.Questions) == 0 {
		return errors.New("question bank is empty")
	}
	for i, q := range b.Questions {
		if len(q.Options) == 0 {
			return fmt.Errorf("question %d has no options", i+1)
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o.Text] {
				return fmt.Errorf("question %d has duplicate option %q", i+1, o.Text)
			}
			seen[o.Text] = true
		}
	}
	for _, bl := range b.Blocks {
		if bl.Index < 0 || bl.Index >= len(b.Questions) {
			return fmt.Errorf("block %q boundary %d is outside the bank", bl.Title, bl.Index)
		}
	}
	return nil
}

func (b *Bank) Len() int { return len(b.Questions) }

// BlockTitle returns the header for the question that opens a block, or "".
func (b *Bank) BlockTitle(index int) string {
	for _, bl := range b.Blocks {
		if bl.Index == index {
			return bl.Title
		}
	}
	return ""
}

// Match finds the option whose label equals text. Exact, case-sensitive.
func (q Question) Match(text string) (Option, bool) {
	for _, o := range q.Options {
		if o.Text == text {
			return o, true
		}
	}
	return Option{}, false
}
