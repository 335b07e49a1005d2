package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// Options is the parsed command line: a Config plus the positional
// corpus-file argument and whatever the CLI layer needs outside the
// finalizer's own options (input path, output path).
type Options struct {
	Config     Config
	CorpusPath string
	OutputPath string
}

// BuildConfigFromFlags parses args into Options. It never reads os.Args
// itself, so callers (and tests) control exactly what gets parsed.
func BuildConfigFromFlags(args []string) (*Options, error) {
	fs := pflag.NewFlagSet("mrdocs-finalize", pflag.ContinueOnError)
	fs.Usage = func() { PrintUsage(fs) }

	fs.BoolP("help", "h", false, "Show this help message and exit.")

	base := LoadFromEnv()
	extractPrivate := fs.Bool("extract-private", base.ExtractPrivate, "Inherit private base members.")
	extractImplicitSpecs := fs.Bool("extract-implicit-specializations", true, "Resolve base types via specialization id.")
	extractEmptyNS := fs.Bool("extract-empty-namespaces", base.ExtractEmptyNamespaces, "Retain namespaces with no members.")
	inheritMode := fs.String("inherit-base-members", base.InheritBaseMembers.String(), "never|reference|copy-dependencies|copy-all.")
	overloads := fs.Bool("overloads", base.Overloads, "Fold overloaded functions into overload sets.")
	sortMembers := fs.Bool("sort-members", base.SortMembers, "Enable the member sorter.")
	autoBrief := fs.Bool("auto-brief", base.AutoBrief, "Promote the first paragraph to a brief when none is written.")
	autoFnMeta := fs.Bool("auto-function-metadata", true, "Synthesize briefs/param names/param docs for undocumented functions.")

	warnings := fs.Bool("warnings", true, "Enable diagnostic emission.")
	warnAsError := fs.Bool("warn-as-error", base.WarnAsError, "Promote warnings to errors for exit-code purposes.")
	warnBrokenRef := fs.Bool("warn-broken-ref", true, "Warn on an unresolved @ref target.")
	warnIfUndocumented := fs.Bool("warn-if-undocumented", false, "Warn on undocumented declarations.")
	warnIfDocError := fs.Bool("warn-if-doc-error", true, "Warn on malformed Javadoc (bad @copydoc target, etc).")
	warnNoParamDoc := fs.Bool("warn-no-paramdoc", false, "Warn when a parameter has no documentation.")
	warnUndocEnumVal := fs.Bool("warn-if-undoc-enum-val", false, "Warn when an enum value has no documentation.")
	warnUnnamedParam := fs.Bool("warn-unnamed-param", false, "Warn on unnamed function parameters.")

	verbose := fs.BoolP("verbose", "v", base.Verbose, "Enable verbose output.")
	jsonOutput := fs.BoolP("json", "j", false, "Emit diagnostics as JSON instead of colored text.")
	output := fs.StringP("output", "o", "", "Write the finalized corpus to this path instead of stdout.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.Changed("help") {
		fs.Usage()
		return nil, flag.ErrHelp
	}

	mode, ok := ParseInheritMode(*inheritMode)
	if !ok {
		return nil, fmt.Errorf("invalid --inherit-base-members %q", *inheritMode)
	}

	targets := fs.Args()
	if len(targets) != 1 {
		return nil, fmt.Errorf("expected exactly one corpus file argument, got %d", len(targets))
	}

	cfg := base
	cfg.ExtractPrivate = *extractPrivate
	cfg.ExtractImplicitSpecializations = *extractImplicitSpecs
	cfg.ExtractEmptyNamespaces = *extractEmptyNS
	cfg.InheritBaseMembers = mode
	cfg.Overloads = *overloads
	cfg.SortMembers = *sortMembers
	cfg.AutoBrief = *autoBrief
	cfg.AutoFunctionMetadata = *autoFnMeta
	cfg.Warnings = *warnings
	cfg.WarnAsError = *warnAsError
	cfg.WarnBrokenRef = *warnBrokenRef
	cfg.WarnIfUndocumented = *warnIfUndocumented
	cfg.WarnIfDocError = *warnIfDocError
	cfg.WarnNoParamDoc = *warnNoParamDoc
	cfg.WarnIfUndocEnumVal = *warnUndocEnumVal
	cfg.WarnUnnamedParam = *warnUnnamedParam
	cfg.Verbose = *verbose
	cfg.JSONOutput = *jsonOutput

	return validateOptions(&Options{Config: cfg, CorpusPath: targets[0], OutputPath: *output})
}

func PrintUsage(fs *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "\nUsage: mrdocs-finalize [flags] <corpus.json>\n")
	fmt.Fprintf(os.Stderr, "\nFlags:\n")
	fs.PrintDefaults()
}
