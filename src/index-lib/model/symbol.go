package model

import (
	"strings"
	"time"
)

// SymbolKind classifies a symbol in the index.
type SymbolKind int

// Symbol kinds recorded by the unit ingester.
const (
	SymbolKindUnknown SymbolKind = iota
	SymbolKindModule
	SymbolKindNamespace
	SymbolKindNamespaceAlias
	SymbolKindMacro
	SymbolKindEnum
	SymbolKindStruct
	SymbolKindClass
	SymbolKindProtocol
	SymbolKindExtension
	SymbolKindUnion
	SymbolKindTypeAlias
	SymbolKindFunction
	SymbolKindVariable
	SymbolKindField
	SymbolKindEnumConstant
	SymbolKindInstanceMethod
	SymbolKindClassMethod
	SymbolKindStaticMethod
	SymbolKindInstanceProperty
	SymbolKindClassProperty
	SymbolKindStaticProperty
	SymbolKindConstructor
	SymbolKindDestructor
	SymbolKindConversionFunction
	SymbolKindParameter
	SymbolKindUsing
	SymbolKindConcept
	SymbolKindCommentTag
)

var _symbolKindNames = map[SymbolKind]string{
	SymbolKindUnknown:            "unknown",
	SymbolKindModule:             "module",
	SymbolKindNamespace:          "namespace",
	SymbolKindNamespaceAlias:     "namespace-alias",
	SymbolKindMacro:              "macro",
	SymbolKindEnum:               "enum",
	SymbolKindStruct:             "struct",
	SymbolKindClass:              "class",
	SymbolKindProtocol:           "protocol",
	SymbolKindExtension:          "extension",
	SymbolKindUnion:              "union",
	SymbolKindTypeAlias:          "type-alias",
	SymbolKindFunction:           "function",
	SymbolKindVariable:           "variable",
	SymbolKindField:              "field",
	SymbolKindEnumConstant:       "enum-constant",
	SymbolKindInstanceMethod:     "instance-method",
	SymbolKindClassMethod:        "class-method",
	SymbolKindStaticMethod:       "static-method",
	SymbolKindInstanceProperty:   "instance-property",
	SymbolKindClassProperty:      "class-property",
	SymbolKindStaticProperty:     "static-property",
	SymbolKindConstructor:        "constructor",
	SymbolKindDestructor:         "destructor",
	SymbolKindConversionFunction: "conversion-function",
	SymbolKindParameter:          "parameter",
	SymbolKindUsing:              "using",
	SymbolKindConcept:            "concept",
	SymbolKindCommentTag:         "comment-tag",
}

func (k SymbolKind) String() string {
	if name, ok := _symbolKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// SymbolRoleSet is a bitset over the roles a symbol plays at an occurrence,
// including its relations to other symbols at the same site.
type SymbolRoleSet uint64

// Occurrence roles.
const (
	SymbolRoleDeclaration SymbolRoleSet = 1 << iota
	SymbolRoleDefinition
	SymbolRoleReference
	SymbolRoleRead
	SymbolRoleWrite
	SymbolRoleCall
	SymbolRoleDynamic
	SymbolRoleAddressOf
	SymbolRoleImplicit

	SymbolRoleRelationChildOf
	SymbolRoleRelationBaseOf
	SymbolRoleRelationOverrideOf
	SymbolRoleRelationReceivedBy
	SymbolRoleRelationCalledBy
	SymbolRoleRelationExtendedBy
	SymbolRoleRelationAccessorOf
	SymbolRoleRelationContainedBy
	SymbolRoleRelationIBTypeOf
	SymbolRoleRelationSpecializationOf
)

var _symbolRoleNames = []struct {
	role SymbolRoleSet
	name string
}{
	{SymbolRoleDeclaration, "decl"},
	{SymbolRoleDefinition, "def"},
	{SymbolRoleReference, "ref"},
	{SymbolRoleRead, "read"},
	{SymbolRoleWrite, "write"},
	{SymbolRoleCall, "call"},
	{SymbolRoleDynamic, "dynamic"},
	{SymbolRoleAddressOf, "addr"},
	{SymbolRoleImplicit, "implicit"},
	{SymbolRoleRelationChildOf, "rel-child-of"},
	{SymbolRoleRelationBaseOf, "rel-base-of"},
	{SymbolRoleRelationOverrideOf, "rel-override-of"},
	{SymbolRoleRelationReceivedBy, "rel-received-by"},
	{SymbolRoleRelationCalledBy, "rel-called-by"},
	{SymbolRoleRelationExtendedBy, "rel-extended-by"},
	{SymbolRoleRelationAccessorOf, "rel-accessor-of"},
	{SymbolRoleRelationContainedBy, "rel-contained-by"},
	{SymbolRoleRelationIBTypeOf, "rel-ibtype-of"},
	{SymbolRoleRelationSpecializationOf, "rel-specialization-of"},
}

// Contains reports whether every bit of roles is present in the set.
func (s SymbolRoleSet) Contains(roles SymbolRoleSet) bool {
	return s&roles == roles
}

// ContainsAny reports whether any bit of roles is present in the set.
func (s SymbolRoleSet) ContainsAny(roles SymbolRoleSet) bool {
	return s&roles != 0
}

// Union returns the set with all bits of roles added.
func (s SymbolRoleSet) Union(roles SymbolRoleSet) SymbolRoleSet {
	return s | roles
}

// IsEmpty reports whether no role bits are set.
func (s SymbolRoleSet) IsEmpty() bool {
	return s == 0
}

func (s SymbolRoleSet) String() string {
	if s.IsEmpty() {
		return "<none>"
	}
	parts := make([]string, 0, 4)
	for _, entry := range _symbolRoleNames {
		if s.ContainsAny(entry.role) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, "|")
}

// Symbol is an immutable value handle identifying a code symbol. Identity for
// deduplication purposes is USR equality.
type Symbol struct {
	USR  string
	Name string
	Kind SymbolKind
}

// IsCallable reports whether occurrences of the symbol can be call targets.
func (s *Symbol) IsCallable() bool {
	switch s.Kind {
	case SymbolKindFunction,
		SymbolKindInstanceMethod,
		SymbolKindClassMethod,
		SymbolKindStaticMethod,
		SymbolKindConstructor,
		SymbolKindDestructor,
		SymbolKindConversionFunction:
		return true
	default:
		return false
	}
}

// SymbolRelation links an occurrence to another symbol at the same site.
type SymbolRelation struct {
	Roles  SymbolRoleSet
	Symbol *Symbol
}

// SymbolLocation is the position of an occurrence within a unit's source file.
type SymbolLocation struct {
	Path     CanonicalFilePath
	ModTime  time.Time
	Line     int
	Column   int
	IsSystem bool
}

// SymbolOccurrence is a single appearance of a symbol at a source location.
// Occurrences are immutable once constructed. Roles carries the union of the
// occurrence roles and all relation roles, matching what the symbol sub-index
// stores per record.
type SymbolOccurrence struct {
	Symbol    *Symbol
	Roles     SymbolRoleSet
	Relations []SymbolRelation
	Location  SymbolLocation
}

// NewSymbolOccurrence builds an occurrence, folding each relation's roles into
// the occurrence role set.
func NewSymbolOccurrence(sym *Symbol, roles SymbolRoleSet, loc SymbolLocation, relations ...SymbolRelation) *SymbolOccurrence {
	for _, rel := range relations {
		roles = roles.Union(rel.Roles)
	}
	return &SymbolOccurrence{
		Symbol:    sym,
		Roles:     roles,
		Relations: relations,
		Location:  loc,
	}
}

// ForeachRelatedSymbol invokes fn for each related symbol whose relation roles
// intersect roles.
func (o *SymbolOccurrence) ForeachRelatedSymbol(roles SymbolRoleSet, fn func(*Symbol)) {
	for _, rel := range o.Relations {
		if rel.Roles.ContainsAny(roles) {
			fn(rel.Symbol)
		}
	}
}
