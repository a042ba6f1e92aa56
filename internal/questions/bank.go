// Package questions deals trivia questions onto the board and remembers which
// ones have been used.
package questions

import (
	_ "embed"
	"fmt"

	"github.com/tatianab/homerun/internal/models"
)

//go:embed banks/bible.yaml
var defaultBank []byte

// DefaultBank returns the bank compiled into the binary.
func DefaultBank() (*models.Bank, error) {
	bank, err := models.ParseBank(defaultBank)
	if err != nil {
		return nil, fmt.Errorf("embedded bank: %w", err)
	}
	return bank, nil
}

// Load reads the bank at path, or the embedded bank when path is empty.
func Load(path string) (*models.Bank, error) {
	if path == "" {
		return DefaultBank()
	}
	return models.LoadBank(path)
}
