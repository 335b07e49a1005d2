package info

import "github.com/oxhq/mrdocs/internal/symbolid"

// Tranche is a bag of member ids bucketed by member category.
// Records have three tranches (one per access level) under Interface;
// namespaces have one.
type Tranche struct {
	Namespaces       []symbolid.ID
	Records          []symbolid.ID
	Typedefs         []symbolid.ID
	Enums            []symbolid.ID
	Functions        []symbolid.ID
	StaticFunctions  []symbolid.ID
	Variables        []symbolid.ID
	StaticVariables  []symbolid.ID
	Concepts         []symbolid.ID
	Guides           []symbolid.ID
	Usings           []symbolid.ID
	NamespaceAliases []symbolid.ID
	Friends          []symbolid.ID
}

// All returns every member id in the tranche, in a fixed category order
// (namespaces, records, typedefs, enums, functions, static functions,
// variables, static variables, concepts, guides, usings, aliases, friends).
// This order is the corpus's canonical category order; within a category,
// slice order is preserved (and is what the member sorter, internal/
// membersort, reorders).
func (t *Tranche) All() []symbolid.ID {
	var out []symbolid.ID
	out = append(out, t.Namespaces...)
	out = append(out, t.Records...)
	out = append(out, t.Typedefs...)
	out = append(out, t.Enums...)
	out = append(out, t.Functions...)
	out = append(out, t.StaticFunctions...)
	out = append(out, t.Variables...)
	out = append(out, t.StaticVariables...)
	out = append(out, t.Concepts...)
	out = append(out, t.Guides...)
	out = append(out, t.Usings...)
	out = append(out, t.NamespaceAliases...)
	out = append(out, t.Friends...)
	return out
}

// IsEmpty reports whether every category in t is empty.
func (t *Tranche) IsEmpty() bool {
	return len(t.All()) == 0
}

// RemoveID removes every occurrence of id from every category of t.
func (t *Tranche) RemoveID(id symbolid.ID) {
	t.Namespaces = removeID(t.Namespaces, id)
	t.Records = removeID(t.Records, id)
	t.Typedefs = removeID(t.Typedefs, id)
	t.Enums = removeID(t.Enums, id)
	t.Functions = removeID(t.Functions, id)
	t.StaticFunctions = removeID(t.StaticFunctions, id)
	t.Variables = removeID(t.Variables, id)
	t.StaticVariables = removeID(t.StaticVariables, id)
	t.Concepts = removeID(t.Concepts, id)
	t.Guides = removeID(t.Guides, id)
	t.Usings = removeID(t.Usings, id)
	t.NamespaceAliases = removeID(t.NamespaceAliases, id)
	t.Friends = removeID(t.Friends, id)
}

// ReplaceFunctions replaces the contiguous run of oldIDs appearing (in any
// order, as a set) within the function category with a single newID —
// used by the overload folder to collapse several function ids into one
// overloads id when it rewrites parent member lists.
// isStatic selects which of Functions/StaticFunctions to rewrite.
func (t *Tranche) ReplaceFunctions(oldIDs []symbolid.ID, newID symbolid.ID, isStatic bool) {
	bucket := &t.Functions
	if isStatic {
		bucket = &t.StaticFunctions
	}
	oldSet := make(map[symbolid.ID]bool, len(oldIDs))
	for _, id := range oldIDs {
		oldSet[id] = true
	}

	out := make([]symbolid.ID, 0, len(*bucket))
	inserted := false
	for _, id := range *bucket {
		if oldSet[id] {
			if !inserted {
				out = append(out, newID)
				inserted = true
			}
			continue
		}
		out = append(out, id)
	}
	if !inserted {
		out = append(out, newID)
	}
	*bucket = out
}

func removeID(ids []symbolid.ID, target symbolid.ID) []symbolid.ID {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// FunctionsOf returns the function bucket for isStatic (used by the
// overload folder, which groups static and non-static functions into
// separate overload sets).
func (t *Tranche) FunctionsOf(isStatic bool) []symbolid.ID {
	if isStatic {
		return t.StaticFunctions
	}
	return t.Functions
}

// AddByKind files id into the category k's members belong in, used by the
// base-member inheritor to add a referenced or rehomed inherited member
// into a derived record's tranche without a kind-specific branch at every
// call site.
func (t *Tranche) AddByKind(k Kind, isStatic bool, id symbolid.ID) {
	switch k {
	case KindNamespace:
		t.Namespaces = append(t.Namespaces, id)
	case KindRecord:
		t.Records = append(t.Records, id)
	case KindTypedef, KindUsingType:
		t.Typedefs = append(t.Typedefs, id)
	case KindEnum:
		t.Enums = append(t.Enums, id)
	case KindFunction, KindOverloads:
		if isStatic {
			t.StaticFunctions = append(t.StaticFunctions, id)
		} else {
			t.Functions = append(t.Functions, id)
		}
	case KindVariable, KindField:
		if isStatic {
			t.StaticVariables = append(t.StaticVariables, id)
		} else {
			t.Variables = append(t.Variables, id)
		}
	case KindConcept:
		t.Concepts = append(t.Concepts, id)
	case KindGuide:
		t.Guides = append(t.Guides, id)
	case KindUsing:
		t.Usings = append(t.Usings, id)
	case KindNamespaceAlias:
		t.NamespaceAliases = append(t.NamespaceAliases, id)
	case KindFriend:
		t.Friends = append(t.Friends, id)
	}
}
