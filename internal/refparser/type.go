package refparser

import "github.com/oxhq/mrdocs/internal/typesystem"

var builtinWidthKeywords = map[string]bool{
	"void": true, "bool": true, "char": true, "wchar_t": true,
	"char8_t": true, "char16_t": true, "char32_t": true,
	"int": true, "float": true, "double": true,
}

// specState accumulates a decl-specifier-seq per the combination rules in
// spec.md 4.B ("Declaration specifiers recognised"): at most one const, one
// volatile, one sign, one length-short, two length-longs; signed/unsigned
// combine only with integer widths or stand alone (implying int); short/
// long/long-long combine only with int (implicit) or, for long, double;
// auto and decltype are terminal and combine with nothing else.
type specState struct {
	cv         typesystem.CVQualifiers
	constN     int
	volatileN  int
	sign       string // "", "signed", "unsigned"
	length     string // "", "short", "long", "longlong"
	elaborated typesystem.TagKeyword
	isAuto     bool
	isDecltype bool
	decltypeOperand string
	typeName   string // builtin width keyword or identifier-derived type name
	name       *typesystem.Name
}

// parseDeclSpecifierSeq consumes the cv/sign/length/elaborated/auto/decltype
// specifier run and the trailing type-name, applying the combination rules.
// It always consumes at least one token on success; the caller (parseType)
// turns the result into a concrete Type.
func (p *parser) parseDeclSpecifierSeq() (*specState, bool) {
	return p.parseDeclSpecifierSeqCore(&specState{}, false)
}

// parseDeclSpecifierSeqCore consumes cv/sign/length/elaborated/auto/decltype/
// type-name tokens in a single well-ordered pass.
func (p *parser) parseDeclSpecifierSeqCore(st *specState, consumedAny bool) (*specState, bool) {
	for {
		p.skipWS()
		switch {
		case p.matchKeyword("const"):
			st.constN++
			if st.constN > 1 {
				return nil, p.fail()
			}
			st.cv.Const = true
			consumedAny = true
			continue
		case p.matchKeyword("volatile"):
			st.volatileN++
			if st.volatileN > 1 {
				return nil, p.fail()
			}
			st.cv.Volatile = true
			consumedAny = true
			continue
		case p.matchKeyword("signed"):
			if st.sign != "" {
				return nil, p.fail()
			}
			st.sign = "signed"
			consumedAny = true
			continue
		case p.matchKeyword("unsigned"):
			if st.sign != "" {
				return nil, p.fail()
			}
			st.sign = "unsigned"
			consumedAny = true
			continue
		case p.matchKeyword("short"):
			if st.length != "" {
				return nil, p.fail()
			}
			st.length = "short"
			consumedAny = true
			continue
		case p.matchKeyword("long"):
			switch st.length {
			case "":
				st.length = "long"
			case "long":
				st.length = "longlong"
			default:
				return nil, p.fail()
			}
			consumedAny = true
			continue
		case p.matchKeyword("typename"):
			consumedAny = true
			continue
		case p.matchKeyword("class"):
			if st.elaborated != typesystem.TagNone || st.typeName != "" {
				return nil, p.fail()
			}
			st.elaborated = typesystem.TagClass
			consumedAny = true
			continue
		case p.matchKeyword("struct"):
			if st.elaborated != typesystem.TagNone || st.typeName != "" {
				return nil, p.fail()
			}
			st.elaborated = typesystem.TagStruct
			consumedAny = true
			continue
		case p.matchKeyword("union"):
			if st.elaborated != typesystem.TagNone || st.typeName != "" {
				return nil, p.fail()
			}
			st.elaborated = typesystem.TagUnion
			consumedAny = true
			continue
		case p.matchKeyword("enum"):
			if st.elaborated != typesystem.TagNone || st.typeName != "" {
				return nil, p.fail()
			}
			st.elaborated = typesystem.TagEnum
			consumedAny = true
			continue
		case p.matchKeyword("auto"):
			if consumedAny && (st.sign != "" || st.length != "" || st.elaborated != typesystem.TagNone || st.typeName != "") {
				return nil, p.fail()
			}
			st.isAuto = true
			consumedAny = true
			return st, true
		case p.matchKeyword("decltype"):
			if consumedAny && (st.sign != "" || st.length != "" || st.elaborated != typesystem.TagNone || st.typeName != "") {
				return nil, p.fail()
			}
			operand, ok := p.balancedParens()
			if !ok {
				return nil, false
			}
			st.isDecltype = true
			st.decltypeOperand = operand
			consumedAny = true
			return st, true
		default:
			goto typeNameStage
		}
	}
typeNameStage:
	if st.typeName == "" && st.elaborated == typesystem.TagNone && !st.isAuto && !st.isDecltype {
		if p.eof() || !isIdentStart(p.s[p.pos]) {
			if !consumedAny {
				return nil, p.fail()
			}
			// A bare sign/length run implies "int" with no written name.
			st.typeName = "int"
			return st, true
		}
		if builtinAhead(p) {
			name, _ := p.parseIdentifier()
			st.typeName = name
			consumedAny = true
		} else {
			name, ok := p.parseQualifiedName()
			if !ok {
				return nil, false
			}
			st.name = name
			consumedAny = true
		}
	} else if st.elaborated != typesystem.TagNone {
		name, ok := p.parseQualifiedName()
		if !ok {
			return nil, false
		}
		st.name = name
	}

	if !consumedAny {
		return nil, p.fail()
	}
	if err := st.validate(); err != nil {
		return nil, p.fail()
	}
	return st, true
}

func builtinAhead(p *parser) bool {
	save := p.pos
	defer func() { p.pos = save }()
	id, ok := p.parseIdentifier()
	return ok && builtinWidthKeywords[id]
}

// validate enforces the sign/length combination rules once the full
// specifier run is known.
func (st *specState) validate() error {
	if st.sign != "" {
		switch st.typeName {
		case "", "char", "short", "int", "long", "longlong":
			// ok: alone, or with an integer width keyword.
		default:
			if st.typeName != "" || st.name != nil {
				return errCombination
			}
		}
		if st.name != nil {
			return errCombination
		}
	}
	if st.length != "" {
		if st.typeName != "" && st.typeName != "int" && !(st.length == "long" && st.typeName == "double") {
			return errCombination
		}
		if st.name != nil {
			return errCombination
		}
	}
	return nil
}

var errCombination = &combinationError{}

type combinationError struct{}

func (e *combinationError) Error() string { return "invalid decl-specifier combination" }

// buildType turns a validated specState into a concrete Type, applying the
// accumulated cv-qualification.
func (st *specState) buildType() typesystem.Type {
	t := typesystem.Type{Kind: st.cv}
	switch {
	case st.isAuto:
		t.Tag = typesystem.KindBuiltin
		t.Builtin = "auto"
	case st.isDecltype:
		t.Tag = typesystem.KindBuiltin
		if st.decltypeOperand == "auto" {
			t.Builtin = "decltype(auto)"
		} else {
			t.Builtin = "decltype(" + st.decltypeOperand + ")"
		}
	case st.elaborated != typesystem.TagNone:
		t.Tag = typesystem.KindTag
		t.TagKeyword = st.elaborated
		t.TagName = st.name
	case st.name != nil:
		t.Tag = typesystem.KindNamed
		t.Name = st.name
	default:
		t.Tag = typesystem.KindBuiltin
		t.Builtin = spellBuiltin(st.sign, st.length, st.typeName)
	}
	return t
}

func spellBuiltin(sign, length, typeName string) string {
	s := ""
	if sign != "" {
		s += sign + " "
	}
	switch length {
	case "short":
		s += "short "
	case "long":
		s += "long "
	case "longlong":
		s += "long long "
	}
	if typeName == "" {
		typeName = "int"
	}
	s += typeName
	return s
}

// parseQualifiedName parses ident ("::" ident)* with an optional
// template-argument list on the final segment, producing a Name chain —
// the same shape a reference.Component's identifier/template-args pair
// uses, but for a type position (e.g. a parameter type, a conversion
// target, a base-class name).
func (p *parser) parseQualifiedName() (*typesystem.Name, bool) {
	var prefix *typesystem.Name
	for {
		text, ok := p.parseIdentifier()
		if !ok {
			return nil, false
		}
		n := &typesystem.Name{Prefix: prefix, Text: text}

		save := p.pos
		if p.peekByte() == '<' {
			args, ok := p.parseTemplateArgList()
			if ok {
				n.IsSpecialization = true
				// Name.TemplateArgs holds types only; expression and
				// template-name arguments are not kept on the Name.
				for _, a := range args {
					if a.Type != nil {
						n.TemplateArgs = append(n.TemplateArgs, *a.Type)
					}
				}
			} else {
				p.pos = save
			}
		}

		save = p.pos
		p.skipWS()
		if p.matchLiteral("::") {
			p.skipWS()
			if !p.eof() && isIdentStart(p.s[p.pos]) {
				prefix = n
				continue
			}
			p.pos = save
		} else {
			p.pos = save
		}
		return n, true
	}
}

// parseType parses a full type: a decl-specifier-seq followed by an
// (optional) abstract declarator — used for template-type-arguments,
// conversion targets, and parameter types.
func (p *parser) parseType() (*typesystem.Type, bool) {
	st, ok := p.parseDeclSpecifierSeq()
	if !ok {
		return nil, false
	}
	base := st.buildType()
	return p.parseDeclarator(&base, true)
}
