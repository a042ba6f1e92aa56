package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseBank decodes a YAML question bank and checks every question.
func ParseBank(data []byte) (*Bank, error) {
	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse bank YAML: %w", err)
	}
	if len(bank.Questions) == 0 {
		return nil, fmt.Errorf("bank %q has no questions", bank.Title)
	}
	for i, q := range bank.Questions {
		if !q.Type.Valid() {
			return nil, fmt.Errorf("question %d: unknown hit type %q", i+1, q.Type)
		}
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d: empty question text", i+1)
		}
		if strings.TrimSpace(q.Answer) == "" {
			return nil, fmt.Errorf("question %d: empty answer", i+1)
		}
	}
	return &bank, nil
}

// LoadBank reads a question bank from a YAML file.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	bank, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}

// Save writes the bank as <dir>/<short_name>.yaml.
func (b *Bank) Save(dir string) (string, error) {
	if b.ShortName == "" {
		return "", fmt.Errorf("bank %q has no short name", b.Title)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(b)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, b.ShortName+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ListBanks returns the short names of the banks stored in dir.
func ListBanks(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var banks []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		banks = append(banks, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	return banks, nil
}
