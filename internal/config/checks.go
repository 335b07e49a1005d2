package config

import (
	"fmt"
	"os"
)

// checkCorpusPath verifies the positional argument names a readable file.
func checkCorpusPath(path string) error {
	if path == "" {
		return fmt.Errorf("a corpus file argument is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("corpus file %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("corpus file %q is a directory", path)
	}
	return nil
}

// checkWarningConsistency rejects flag combinations that can't take effect:
// promoting warnings to errors when warnings are disabled would silently do
// nothing, which is more likely a typo than intent.
func checkWarningConsistency(cfg Config) error {
	if !cfg.Warnings && cfg.WarnAsError {
		return fmt.Errorf("--warn-as-error requires --warnings")
	}
	return nil
}

func validateOptions(opts *Options) (*Options, error) {
	if err := checkCorpusPath(opts.CorpusPath); err != nil {
		return nil, err
	}
	if err := checkWarningConsistency(opts.Config); err != nil {
		return nil, err
	}
	return opts, nil
}
