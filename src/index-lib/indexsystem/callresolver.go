package indexsystem

import (
	"github.com/dreampiggy/indexstore-db/src/index-lib/model"
)

// Call-occurrence resolution. Given one occurrence of a callable symbol, find
// every occurrence that may call it, taking virtual methods, dynamic
// dispatch, protocol conformance, and class extensions into account.

func containsSymbolWithUSR(sym *model.Symbol, syms []*model.Symbol) bool {
	for _, found := range syms {
		if found.USR == sym.USR {
			return true
		}
	}
	return false
}

func occursContainSymbolWithUSR(sym *model.Symbol, occurs []*model.SymbolOccurrence) bool {
	for _, found := range occurs {
		if found.Symbol.USR == sym.USR {
			return true
		}
	}
	return false
}

// baseMethodsOrClasses accumulates into baseSyms the symbols related to sym by
// override (for instance methods) or by subtype (for classes, where "base"
// means parent class), walking the relation transitively. USR deduplication
// guarantees termination.
func (s *indexSystem) baseMethodsOrClasses(sym *model.Symbol, baseSyms *[]*model.Symbol) {
	addEntry := func(newSym *model.Symbol) {
		if !containsSymbolWithUSR(newSym, *baseSyms) {
			*baseSyms = append(*baseSyms, newSym)
			s.baseMethodsOrClasses(newSym, baseSyms)
		}
	}

	if sym.Kind == model.SymbolKindInstanceMethod {
		s.symIndex.ForeachSymbolOccurrenceByUSR(sym.USR, model.SymbolRoleRelationOverrideOf,
			func(occur *model.SymbolOccurrence) bool {
				occur.ForeachRelatedSymbol(model.SymbolRoleRelationOverrideOf, func(relSym *model.Symbol) {
					addEntry(relSym)
				})
				return true
			})
	} else {
		s.symIndex.ForeachRelatedSymbolOccurrenceByUSR(sym.USR, model.SymbolRoleRelationBaseOf,
			func(occur *model.SymbolOccurrence) bool {
				addEntry(occur.Symbol)
				return true
			})
	}
}

// allRelatedOccurrences performs the same transitive expansion as
// baseMethodsOrClasses but accumulates the occurrences visited, still deduped
// by the USR of their symbol.
func (s *indexSystem) allRelatedOccurrences(sym *model.Symbol, roles model.SymbolRoleSet, relOccurs *[]*model.SymbolOccurrence) {
	addEntry := func(newOccur *model.SymbolOccurrence) {
		if !occursContainSymbolWithUSR(newOccur.Symbol, *relOccurs) {
			*relOccurs = append(*relOccurs, newOccur)
			s.allRelatedOccurrences(newOccur.Symbol, roles, relOccurs)
		}
	}

	s.symIndex.ForeachRelatedSymbolOccurrenceByUSR(sym.USR, roles,
		func(occur *model.SymbolOccurrence) bool {
			addEntry(occur)
			return true
		})
}

func (s *indexSystem) GetBaseMethodsOrClasses(sym *model.Symbol) []*model.Symbol {
	var syms []*model.Symbol
	s.baseMethodsOrClasses(sym, &syms)
	return syms
}

func (s *indexSystem) ForeachSymbolCallOccurrence(callee *model.SymbolOccurrence, receiver func(*model.SymbolOccurrence) bool) bool {
	sym := callee.Symbol
	if !sym.IsCallable() {
		return false
	}

	// Find direct call references.
	if !s.symIndex.ForeachSymbolOccurrenceByUSR(sym.USR, model.SymbolRoleCall, receiver) {
		return false
	}

	if !callee.Roles.ContainsAny(model.SymbolRoleDynamic) {
		// No need to search for dynamic callers.
		return true
	}

	// Take virtual methods and dynamic dispatch into account: search for
	// dynamic calls whose receiver is a class in the method's base hierarchy.
	relationToUse := model.SymbolRoleRelationChildOf
	if callee.Roles.ContainsAny(model.SymbolRoleCall) {
		relationToUse = model.SymbolRoleRelationReceivedBy
	}

	var clsSyms []*model.Symbol
	callee.ForeachRelatedSymbol(relationToUse, func(relSym *model.Symbol) {
		clsSyms = append(clsSyms, relSym)
	})

	// Replace extensions with the types they extend.
	for i, clsSym := range clsSyms {
		if clsSym.Kind != model.SymbolKindExtension {
			continue
		}
		s.symIndex.ForeachRelatedSymbolOccurrenceByUSR(clsSym.USR, model.SymbolRoleRelationExtendedBy,
			func(occur *model.SymbolOccurrence) bool {
				clsSyms[i] = occur.Symbol
				return false
			})
	}

	if len(clsSyms) == 0 {
		return true
	}

	if clsSyms[0].Kind == model.SymbolKindProtocol {
		// Find direct call references of all the conforming methods.
		var overrideOccurs []*model.SymbolOccurrence
		s.allRelatedOccurrences(sym, model.SymbolRoleRelationOverrideOf, &overrideOccurs)
		for _, occur := range overrideOccurs {
			if !s.symIndex.ForeachSymbolOccurrenceByUSR(occur.Symbol.USR, model.SymbolRoleCall, receiver) {
				return false
			}
		}
		return true
	}

	// Collect the receiver classes and their base hierarchies. A dynamic call
	// received by any of these classes is a potential caller.
	var classSyms []*model.Symbol
	for _, clsSym := range clsSyms {
		s.baseMethodsOrClasses(clsSym, &classSyms)
		classSyms = append(classSyms, clsSym)
	}

	// All override methods walking the base hierarchy.
	baseMethodSyms := s.GetBaseMethodsOrClasses(sym)

	for _, methodSym := range baseMethodSyms {
		cont := s.symIndex.ForeachSymbolOccurrenceByUSR(methodSym.USR, model.SymbolRoleCall,
			func(occur *model.SymbolOccurrence) bool {
				if !occur.Roles.ContainsAny(model.SymbolRoleDynamic) {
					return true
				}

				possiblyCalledViaDispatch := false
				if !occur.Roles.Contains(model.SymbolRoleRelationReceivedBy) {
					// Receiver is untyped, so the class the method belongs to
					// is a candidate.
					possiblyCalledViaDispatch = true
				} else {
					occur.ForeachRelatedSymbol(model.SymbolRoleRelationReceivedBy, func(relSym *model.Symbol) {
						if containsSymbolWithUSR(relSym, classSyms) {
							possiblyCalledViaDispatch = true
						}
					})
				}
				if possiblyCalledViaDispatch {
					return receiver(occur)
				}
				return true
			})
		if !cont {
			return false
		}
	}

	return true
}
