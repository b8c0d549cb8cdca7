package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScaffoldProject creates rpncalc.toml, a sample rates.yaml and a
// .gitignore entry for the key log directory in dir. Files that already
// exist are left untouched. Returns the list of created paths.
func ScaffoldProject(dir string) ([]string, error) {
	var created []string

	// rpncalc.toml
	tomlPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		if _, initErr := InitFile(dir); initErr != nil {
			return created, initErr
		}
		created = append(created, tomlPath)
	}

	// rates.yaml
	ratesPath := filepath.Join(dir, "rates.yaml")
	if _, err := os.Stat(ratesPath); os.IsNotExist(err) {
		if writeErr := os.WriteFile(ratesPath, []byte(ratesTemplate), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", ratesPath, writeErr)
		}
		created = append(created, ratesPath)
	}

	// .gitignore: keep key logs out of version control
	const gitignoreEntry = ".rpncalc/"
	gitignorePath := filepath.Join(dir, ".gitignore")
	existing, err := os.ReadFile(gitignorePath)
	if os.IsNotExist(err) {
		if writeErr := os.WriteFile(gitignorePath, []byte(gitignoreEntry+"\n"), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	} else if err != nil {
		return created, fmt.Errorf("scaffold: read %s: %w", gitignorePath, err)
	} else if !strings.Contains(string(existing), gitignoreEntry) {
		content := string(existing)
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content += "\n"
		}
		content += gitignoreEntry + "\n"
		if writeErr := os.WriteFile(gitignorePath, []byte(content), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	}

	return created, nil
}

const ratesTemplate = `# Currency rates: units of each currency per one unit of the base.
# rpncalc reloads this file whenever it changes.
date: "2024-01-02"
base: GB Pounds
rates:
  US Dollars: 1.27
  Euros: 1.16
  Swiss Francs: 1.08
  Japanese Yen: 179.5
`
