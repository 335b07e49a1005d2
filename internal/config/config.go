// Package config defines the Config value the finalizer pipeline runs
// against, a pflag-based CLI builder for cmd/mrdocs-finalize, and the
// diagnostic/result printing helpers the CLI layer uses.
package config

import (
	"os"
	"strconv"
)

// InheritMode selects how base-class members are folded into a derived
// record's interface.
type InheritMode int

const (
	InheritNever InheritMode = iota
	InheritReference
	InheritCopyDependencies
	InheritCopyAll
)

func (m InheritMode) String() string {
	switch m {
	case InheritNever:
		return "never"
	case InheritReference:
		return "reference"
	case InheritCopyDependencies:
		return "copy-dependencies"
	case InheritCopyAll:
		return "copy-all"
	default:
		return "unknown"
	}
}

// ParseInheritMode parses the four recognized mode spellings.
func ParseInheritMode(s string) (InheritMode, bool) {
	switch s {
	case "never":
		return InheritNever, true
	case "reference":
		return InheritReference, true
	case "copy-dependencies":
		return InheritCopyDependencies, true
	case "copy-all":
		return InheritCopyAll, true
	default:
		return InheritNever, false
	}
}

// SortPolicy holds the member sorter's individually toggleable rules.
type SortPolicy struct {
	ConstructorsFirst bool
	DestructorsFirst  bool
	AssignmentsFirst  bool
	RelationalLast    bool
	ConversionsLast   bool
	CopyMoveOrdering  bool
}

// DefaultSortPolicy enables every sort rule.
func DefaultSortPolicy() SortPolicy {
	return SortPolicy{
		ConstructorsFirst: true,
		DestructorsFirst:  true,
		AssignmentsFirst:  true,
		RelationalLast:    true,
		ConversionsLast:   true,
		CopyMoveOrdering:  true,
	}
}

// Config is the set of options the finalizer pipeline consults.
type Config struct {
	ExtractPrivate                 bool
	ExtractImplicitSpecializations bool
	ExtractEmptyNamespaces         bool
	InheritBaseMembers             InheritMode
	Overloads                      bool
	SortMembers                    bool
	SortPolicy                     SortPolicy
	AutoBrief                      bool
	AutoFunctionMetadata           bool

	Warnings           bool
	WarnAsError        bool
	WarnBrokenRef      bool
	WarnIfUndocumented bool
	WarnIfDocError     bool
	WarnNoParamDoc     bool
	WarnIfUndocEnumVal bool
	WarnUnnamedParam   bool

	Verbose    bool
	JSONOutput bool
}

// Default returns the configuration a typical documentation build uses.
func Default() Config {
	return Config{
		ExtractPrivate:                 false,
		ExtractImplicitSpecializations: true,
		ExtractEmptyNamespaces:         false,
		InheritBaseMembers:             InheritReference,
		Overloads:                      true,
		SortMembers:                    true,
		SortPolicy:                     DefaultSortPolicy(),
		AutoBrief:                      true,
		AutoFunctionMetadata:           true,

		Warnings:           true,
		WarnAsError:        false,
		WarnBrokenRef:      true,
		WarnIfUndocumented: false,
		WarnIfDocError:     true,
		WarnNoParamDoc:     false,
		WarnIfUndocEnumVal: false,
		WarnUnnamedParam:   false,
	}
}

// LoadFromEnv overlays MRDOCS_*-prefixed environment variables onto Default,
// falling back silently to the default on a missing or malformed value —
// the same forgiving overlay behavior a .env file loaded by godotenv gets
// before cmd/mrdocs-finalize parses CLI flags on top of it.
func LoadFromEnv() Config {
	cfg := Default()

	if v, ok := lookupBool("MRDOCS_EXTRACT_PRIVATE"); ok {
		cfg.ExtractPrivate = v
	}
	if v, ok := lookupBool("MRDOCS_EXTRACT_EMPTY_NAMESPACES"); ok {
		cfg.ExtractEmptyNamespaces = v
	}
	if s := os.Getenv("MRDOCS_INHERIT_BASE_MEMBERS"); s != "" {
		if mode, ok := ParseInheritMode(s); ok {
			cfg.InheritBaseMembers = mode
		}
	}
	if v, ok := lookupBool("MRDOCS_OVERLOADS"); ok {
		cfg.Overloads = v
	}
	if v, ok := lookupBool("MRDOCS_SORT_MEMBERS"); ok {
		cfg.SortMembers = v
	}
	if v, ok := lookupBool("MRDOCS_AUTO_BRIEF"); ok {
		cfg.AutoBrief = v
	}
	if v, ok := lookupBool("MRDOCS_WARN_AS_ERROR"); ok {
		cfg.WarnAsError = v
	}
	if v, ok := lookupBool("MRDOCS_VERBOSE"); ok {
		cfg.Verbose = v
	}

	return cfg
}

func lookupBool(name string) (bool, bool) {
	s := os.Getenv(name)
	if s == "" {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}
