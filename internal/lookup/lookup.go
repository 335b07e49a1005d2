// Package lookup implements unqualified-name resolution of a reference
// string against the corpus, under C++ visibility rules, with a
// (context, name) result cache. See internal/refparser for the grammar the
// name string is parsed with.
package lookup

import (
	"fmt"
	"strings"

	"github.com/oxhq/mrdocs/internal/corpus"
	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/reference"
	"github.com/oxhq/mrdocs/internal/refparser"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// Reason classifies why a lookup failed.
type Reason int

const (
	ReasonContextNotFound Reason = iota
	ReasonParseFailed
	ReasonAmbiguous
	ReasonNotFound
)

// Error is the failure value Lookup returns; it is never wrapped, so callers
// may type-assert it to inspect Reason.
type Error struct {
	Reason Reason
	Detail string
}

func (e *Error) Error() string { return e.Detail }

// Engine resolves reference strings against a corpus, caching results.
type Engine struct {
	corpus *corpus.InfoSet
	cache  *cache
}

// New returns a lookup Engine over c with an empty cache.
func New(c *corpus.InfoSet) *Engine {
	return &Engine{corpus: c, cache: newCache()}
}

// Lookup resolves name against context per spec.md 4.D's algorithm: a
// leading "::" restarts at the global namespace; the cache is consulted and
// populated at every scope the walk visits; a parse failure is final; each
// candidate scope starting at context and widening to its parent chain is
// tried until one resolves every component of the parsed reference, or the
// walk reaches global and still fails.
func (e *Engine) Lookup(context symbolid.ID, name string) (*info.Info, error) {
	if strings.HasPrefix(name, "::") {
		context = symbolid.Global
		name = strings.TrimPrefix(name, "::")
	}
	return e.lookupCached(context, name)
}

func (e *Engine) lookupCached(context symbolid.ID, name string) (*info.Info, error) {
	if hit, result, err := e.cache.get(context, name); hit {
		return result, err
	}
	result, err := e.lookupUncached(context, name)
	e.cache.put(context, name, result, err)
	return result, err
}

func (e *Engine) lookupUncached(context symbolid.ID, name string) (*info.Info, error) {
	ctxInfo := e.corpus.Find(context)
	if ctxInfo == nil {
		return nil, &Error{Reason: ReasonContextNotFound, Detail: fmt.Sprintf("lookup: context %s not found", context)}
	}

	parsed := refparser.Parse(name)
	if !parsed.OK || parsed.Pos != len(name) {
		pos := parsed.Pos
		return nil, &Error{Reason: ReasonParseFailed, Detail: fmt.Sprintf("lookup: parse failed at offset %d in %q", pos, name)}
	}

	result, err := e.resolveAgainst(context, parsed.Ref)
	if err == nil {
		return result, nil
	}
	if ambiguous, ok := err.(*Error); ok && ambiguous.Reason == ReasonAmbiguous {
		return nil, err
	}
	if context.IsGlobal() {
		return nil, &Error{Reason: ReasonNotFound, Detail: fmt.Sprintf("lookup: no such name %q visible from %s", name, context)}
	}
	return e.lookupCached(ctxInfo.Parent, name)
}

// resolveAgainst walks ref's components starting from context, without
// retrying at a wider scope — that retry is lookupUncached's job. A
// resolved reference's id is the final component's id, except a function
// tail with no matching overload member still resolves to whatever the
// last component matched (the tail only narrows the candidate set when one
// is present).
func (e *Engine) resolveAgainst(context symbolid.ID, ref *reference.ParsedRef) (*info.Info, error) {
	cur := context
	for i, c := range ref.Components {
		isLast := i == len(ref.Components)-1
		var tail *reference.FunctionTail
		if isLast {
			tail = ref.Tail
		}
		member, err := e.matchComponent(cur, c, tail)
		if err != nil {
			return nil, err
		}
		cur = member.ID
	}
	return e.corpus.Find(cur), nil
}

// matchComponent resolves one component within parentID's member set, per
// spec.md 4.D's "Member matching" rules: a candidate pool built by
// transparently expanding overload sets, filtered through four predicates
// in priority order, falling through to typedef/using-type alias recursion
// and then transparent-entity recursion when no candidate matches.
func (e *Engine) matchComponent(parentID symbolid.ID, c reference.Component, tail *reference.FunctionTail) (*info.Info, error) {
	parent := e.corpus.Find(parentID)
	if parent == nil {
		return nil, &Error{Reason: ReasonNotFound, Detail: "lookup: parent scope vanished mid-resolution"}
	}

	direct := directMembers(e.corpus, parent)
	expanded := expandOverloads(e.corpus, direct)
	paramApplicable := tail != nil

	// Tiers that check the parameter list need the overload set's individual
	// constituents visible (each carries its own Params); tiers that don't
	// check parameters should resolve to the entity as named in the parent
	// scope — the overload-set entity itself when the name is overloaded —
	// rather than exploding into every constituent and reporting a bare
	// "foo" as ambiguous.
	tiers := []struct {
		pool []*info.Info
		pred func(*info.Info) bool
	}{
		{expanded, func(m *info.Info) bool {
			return nameMatches(m, c) && templateArgsMatch(m, c) && paramApplicable && paramListMatches(m, tail)
		}},
		{expanded, func(m *info.Info) bool {
			return nameMatches(m, c) && paramApplicable && paramListMatches(m, tail)
		}},
		{direct, func(m *info.Info) bool { return nameMatches(m, c) && templateArgsMatch(m, c) }},
		{direct, func(m *info.Info) bool { return nameMatches(m, c) }},
	}

	for _, tier := range tiers {
		var matched []*info.Info
		for _, cand := range tier.pool {
			if tier.pred(cand) {
				matched = append(matched, cand)
			}
		}
		if len(matched) == 0 {
			continue
		}
		if len(matched) > 1 {
			return nil, &Error{Reason: ReasonAmbiguous, Detail: fmt.Sprintf("lookup: %q is ambiguous in %s", componentText(c), parent.Name)}
		}
		return e.followAlias(matched[0])
	}

	for _, cand := range direct {
		if !cand.IsTransparent() {
			continue
		}
		if member, err := e.matchComponent(cand.ID, c, tail); err == nil {
			return member, nil
		}
	}

	return nil, &Error{Reason: ReasonNotFound, Detail: fmt.Sprintf("lookup: no member named %q in %s", componentText(c), parent.Name)}
}

// followAlias recurses into the aliased type's named symbol when m is a
// typedef or using-type, per spec.md 4.D.
func (e *Engine) followAlias(m *info.Info) (*info.Info, error) {
	if m.Kind != info.KindTypedef && m.Kind != info.KindUsingType {
		return m, nil
	}
	if m.Aliased == nil || m.Aliased.Name == nil || !m.Aliased.Name.Resolved() {
		return m, nil
	}
	target := e.corpus.Find(m.Aliased.Name.ID)
	if target == nil {
		return m, nil
	}
	return target, nil
}

// directMembers returns parent's direct members, unexpanded.
func directMembers(c *corpus.InfoSet, parent *info.Info) []*info.Info {
	var out []*info.Info
	for _, id := range corpus.AllMembers(parent) {
		if m := c.Find(id); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// expandOverloads returns direct plus, for every KindOverloads entity in
// direct, its constituent functions — the "transparently expanded ...
// unioned with the overload-set entity itself" pool spec.md 4.D describes
// for signature-matched resolution.
func expandOverloads(c *corpus.InfoSet, direct []*info.Info) []*info.Info {
	out := make([]*info.Info, 0, len(direct))
	for _, m := range direct {
		out = append(out, m)
		if m.Kind == info.KindOverloads {
			for _, sub := range m.OverloadMembers {
				if s := c.Find(sub); s != nil {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func componentText(c reference.Component) string {
	switch {
	case c.IsDestructor:
		return "~" + c.Identifier
	case c.IsConversion():
		return "operator <conversion>"
	case c.IsOperator():
		return "operator" + reference.GetOperatorName(c.Operator, c.OperatorSpelled)
	default:
		return c.Identifier
	}
}
