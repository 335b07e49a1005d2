package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oxhq/mrdocs/internal/config"
	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/diag"
	"github.com/oxhq/mrdocs/internal/pipeline"
)

func runFinalize(opts *config.Options) error {
	data, err := os.ReadFile(opts.CorpusPath)
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}

	c := corpus.New()
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing corpus: %w", err)
	}

	diags := pipeline.Run(c, opts.Config)
	events := diags.Events()

	config.PrintDiagnostics(events, opts.Config.JSONOutput)
	config.PrintSummary(events)

	out, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding finalized corpus: %w", err)
	}
	if opts.OutputPath == "" {
		fmt.Println(string(out))
	} else if err := os.WriteFile(opts.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.OutputPath, err)
	}

	if diags.HasErrors(opts.Config.WarnAsError) {
		n := 0
		for _, e := range events {
			if e.Severity == diag.SeverityError || (opts.Config.WarnAsError && e.Severity == diag.SeverityWarn) {
				n++
			}
		}
		return fmt.Errorf("finalize: %d diagnostic(s) at or above error severity", n)
	}
	return nil
}
