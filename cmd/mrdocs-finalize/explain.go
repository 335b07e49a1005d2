package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/lookup"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

func runExplain(corpusPath, reference, contextName string) error {
	data, err := os.ReadFile(corpusPath)
	if err != nil {
		return fmt.Errorf("reading corpus: %w", err)
	}

	c := corpus.New()
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing corpus: %w", err)
	}

	engine := lookup.New(c)

	context := symbolid.Global
	if contextName != "" {
		ctxInfo, err := engine.Lookup(symbolid.Global, contextName)
		if err != nil {
			return fmt.Errorf("resolving context %q: %w", contextName, err)
		}
		context = ctxInfo.ID
	}

	found, err := engine.Lookup(context, reference)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", reference, err)
	}

	loc := ""
	if len(found.Locations) > 0 {
		loc = fmt.Sprintf(" (%s:%d)", found.Locations[0].File, found.Locations[0].Line)
	}
	fmt.Printf("%s  %s  %s%s\n", found.ID, found.Kind, found.Name, loc)
	return nil
}
