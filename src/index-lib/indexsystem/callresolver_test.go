package indexsystem_test

import (
	"io"
	"testing"

	"github.com/dreampiggy/indexstore-db/src/index-lib/indexsystem"
	"github.com/dreampiggy/indexstore-db/src/index-lib/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeSymbolIndex answers the occurrence queries the call resolver performs
// from two in-memory tables, applying the same role matching as the real
// symbol sub-index: an occurrence matches a role set if its folded roles
// (occurrence roles plus relation roles) intersect it.
type fakeSymbolIndex struct {
	occurrences map[string][]*model.SymbolOccurrence
	related     map[string][]*model.SymbolOccurrence
}

func newFakeSymbolIndex() *fakeSymbolIndex {
	return &fakeSymbolIndex{
		occurrences: make(map[string][]*model.SymbolOccurrence),
		related:     make(map[string][]*model.SymbolOccurrence),
	}
}

func (f *fakeSymbolIndex) addOccurrence(usr string, occ *model.SymbolOccurrence) {
	f.occurrences[usr] = append(f.occurrences[usr], occ)
}

func (f *fakeSymbolIndex) addRelated(usr string, occ *model.SymbolOccurrence) {
	f.related[usr] = append(f.related[usr], occ)
}

func (f *fakeSymbolIndex) ForeachSymbolOccurrenceByUSR(usr string, roles model.SymbolRoleSet, receiver func(*model.SymbolOccurrence) bool) bool {
	for _, occ := range f.occurrences[usr] {
		if !occ.Roles.ContainsAny(roles) {
			continue
		}
		if !receiver(occ) {
			return false
		}
	}
	return true
}

func (f *fakeSymbolIndex) ForeachRelatedSymbolOccurrenceByUSR(usr string, roles model.SymbolRoleSet, receiver func(*model.SymbolOccurrence) bool) bool {
	for _, occ := range f.related[usr] {
		if !occ.Roles.ContainsAny(roles) {
			continue
		}
		if !receiver(occ) {
			return false
		}
	}
	return true
}

func (f *fakeSymbolIndex) ForeachCanonicalSymbolOccurrenceContainingPattern(pattern string, anchorStart, anchorEnd, subsequence, ignoreCase bool, receiver func(*model.SymbolOccurrence) bool) bool {
	return true
}

func (f *fakeSymbolIndex) ForeachCanonicalSymbolOccurrenceByName(name string, receiver func(*model.SymbolOccurrence) bool) bool {
	return true
}

func (f *fakeSymbolIndex) ForeachSymbolName(receiver func(string) bool) bool { return true }

func (f *fakeSymbolIndex) ForeachCanonicalSymbolOccurrenceByUSR(usr string, receiver func(*model.SymbolOccurrence) bool) bool {
	return true
}

func (f *fakeSymbolIndex) CountOfCanonicalSymbolsWithKind(kind model.SymbolKind, workspaceOnly bool) int {
	return 0
}

func (f *fakeSymbolIndex) ForeachCanonicalSymbolOccurrenceByKind(kind model.SymbolKind, workspaceOnly bool, receiver func(*model.SymbolOccurrence) bool) bool {
	return true
}

func (f *fakeSymbolIndex) ForeachUnitTestSymbolReferencedByOutputPaths(outFilePaths []model.CanonicalFilePath, receiver func(*model.SymbolOccurrence) bool) bool {
	return true
}

func (f *fakeSymbolIndex) PrintStats(w io.Writer) {}

func (f *fakeSymbolIndex) DumpProviderFileAssociations(w io.Writer) {}

var _ indexsystem.SymbolIndex = (*fakeSymbolIndex)(nil)

// newResolverSystem builds a system whose symbol sub-index is the fake.
func newResolverSystem(t *testing.T, index *fakeSymbolIndex) indexsystem.IndexSystem {
	ctrl := gomock.NewController(t)
	c := newTestCollaborators(ctrl)
	c.provider.EXPECT().LibraryForStorePath(gomock.Any()).Return(testLibrary{})

	params := testParams(t, c, testConfig(t), nil)
	params.Deps.NewSymbolIndex = func(db indexsystem.Database, store indexsystem.IndexStore, visibility indexsystem.FileVisibilityChecker) indexsystem.SymbolIndex {
		return index
	}

	sys, err := indexsystem.New(params)
	require.NoError(t, err)
	t.Cleanup(func() {
		c.datastore.EXPECT().Close().Return(nil)
		c.store.EXPECT().Close().Return(nil)
		c.db.EXPECT().Close().Return(nil)
		require.NoError(t, sys.Close())
	})
	return sys
}

func locationAt(file string, line int) model.SymbolLocation {
	return model.SymbolLocation{Path: model.NewCanonicalFilePath(file), Line: line, Column: 1}
}

func callSite(target *model.Symbol, file string, line int, extraRoles model.SymbolRoleSet, relations ...model.SymbolRelation) *model.SymbolOccurrence {
	return model.NewSymbolOccurrence(target, model.SymbolRoleCall.Union(extraRoles), locationAt(file, line), relations...)
}

func collectCalls(t *testing.T, sys indexsystem.IndexSystem, callee *model.SymbolOccurrence) ([]*model.SymbolOccurrence, bool) {
	t.Helper()
	var results []*model.SymbolOccurrence
	completed := sys.ForeachSymbolCallOccurrence(callee, func(occ *model.SymbolOccurrence) bool {
		results = append(results, occ)
		return true
	})
	return results, completed
}

func TestCallOccurrenceNonCallableSymbol(t *testing.T) {
	sys := newResolverSystem(t, newFakeSymbolIndex())

	callee := model.NewSymbolOccurrence(
		&model.Symbol{USR: "c:Widget", Kind: model.SymbolKindClass},
		model.SymbolRoleReference,
		locationAt("/src/widget.cc", 10),
	)

	invoked := false
	completed := sys.ForeachSymbolCallOccurrence(callee, func(*model.SymbolOccurrence) bool {
		invoked = true
		return true
	})
	assert.False(t, completed)
	assert.False(t, invoked)
}

func TestCallOccurrenceDirectNonDynamic(t *testing.T) {
	index := newFakeSymbolIndex()
	f := &model.Symbol{USR: "c:f", Name: "f", Kind: model.SymbolKindFunction}
	siteA := callSite(f, "/src/a.cc", 12, 0)
	index.addOccurrence("c:f", siteA)
	sys := newResolverSystem(t, index)

	callee := model.NewSymbolOccurrence(f, model.SymbolRoleCall, locationAt("/src/a.cc", 12))
	results, completed := collectCalls(t, sys, callee)

	assert.True(t, completed)
	assert.Equal(t, []*model.SymbolOccurrence{siteA}, results)
}

func TestCallOccurrenceDirectEarlyTermination(t *testing.T) {
	index := newFakeSymbolIndex()
	f := &model.Symbol{USR: "c:f", Name: "f", Kind: model.SymbolKindFunction}
	index.addOccurrence("c:f", callSite(f, "/src/a.cc", 12, 0))
	index.addOccurrence("c:f", callSite(f, "/src/b.cc", 30, 0))
	sys := newResolverSystem(t, index)

	callee := model.NewSymbolOccurrence(f, model.SymbolRoleCall, locationAt("/src/a.cc", 12))
	calls := 0
	completed := sys.ForeachSymbolCallOccurrence(callee, func(*model.SymbolOccurrence) bool {
		calls++
		return false
	})
	assert.False(t, completed)
	assert.Equal(t, 1, calls)
}

func TestCallOccurrenceProtocolReceiver(t *testing.T) {
	index := newFakeSymbolIndex()
	m := &model.Symbol{USR: "c:m", Name: "m", Kind: model.SymbolKindInstanceMethod}
	m1 := &model.Symbol{USR: "c:m1", Name: "m", Kind: model.SymbolKindInstanceMethod}
	m2 := &model.Symbol{USR: "c:m2", Name: "m", Kind: model.SymbolKindInstanceMethod}
	proto := &model.Symbol{USR: "c:P", Name: "P", Kind: model.SymbolKindProtocol}

	siteA := callSite(m, "/src/a.cc", 5, model.SymbolRoleDynamic,
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: proto})
	siteB := callSite(m1, "/src/b.cc", 9, 0)
	siteC := callSite(m2, "/src/c.cc", 14, 0)
	index.addOccurrence("c:m", siteA)
	index.addOccurrence("c:m1", siteB)
	index.addOccurrence("c:m2", siteC)

	// m1 conforms to m; m2 overrides m1 transitively.
	index.addRelated("c:m", model.NewSymbolOccurrence(m1, model.SymbolRoleDefinition, locationAt("/src/b.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: m}))
	index.addRelated("c:m1", model.NewSymbolOccurrence(m2, model.SymbolRoleDefinition, locationAt("/src/c.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: m1}))

	sys := newResolverSystem(t, index)

	callee := model.NewSymbolOccurrence(m, model.SymbolRoleCall.Union(model.SymbolRoleDynamic), locationAt("/src/a.cc", 5),
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: proto})
	results, completed := collectCalls(t, sys, callee)

	assert.True(t, completed)
	assert.Equal(t, []*model.SymbolOccurrence{siteA, siteB, siteC}, results)
}

func TestCallOccurrenceClassHierarchyReceiverFilter(t *testing.T) {
	index := newFakeSymbolIndex()
	m := &model.Symbol{USR: "c:m", Name: "m", Kind: model.SymbolKindInstanceMethod}
	mB := &model.Symbol{USR: "c:mB", Name: "m", Kind: model.SymbolKindInstanceMethod}
	mA := &model.Symbol{USR: "c:mA", Name: "m", Kind: model.SymbolKindInstanceMethod}
	classD := &model.Symbol{USR: "c:D", Name: "D", Kind: model.SymbolKindClass}
	classB := &model.Symbol{USR: "c:B", Name: "B", Kind: model.SymbolKindClass}
	classA := &model.Symbol{USR: "c:A", Name: "A", Kind: model.SymbolKindClass}
	unrelated := &model.Symbol{USR: "c:Other", Name: "Other", Kind: model.SymbolKindClass}

	// Class hierarchy: D <- B <- A.
	index.addRelated("c:D", model.NewSymbolOccurrence(classB, model.SymbolRoleReference, locationAt("/src/d.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationBaseOf, Symbol: classD}))
	index.addRelated("c:B", model.NewSymbolOccurrence(classA, model.SymbolRoleReference, locationAt("/src/b.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationBaseOf, Symbol: classB}))

	// Override chain: m overrides mB, which overrides mA.
	index.addOccurrence("c:m", model.NewSymbolOccurrence(m, model.SymbolRoleDefinition, locationAt("/src/d.cc", 3),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: mB}))
	index.addOccurrence("c:mB", model.NewSymbolOccurrence(mB, model.SymbolRoleDefinition, locationAt("/src/b.cc", 3),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: mA}))

	// X: dynamic call of m received by D — admitted (direct site of m).
	siteX := callSite(m, "/src/x.cc", 20, model.SymbolRoleDynamic,
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: classD})
	index.addOccurrence("c:m", siteX)
	// Y: dynamic call of mB received by an unrelated class — rejected.
	siteY := callSite(mB, "/src/y.cc", 21, model.SymbolRoleDynamic,
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: unrelated})
	index.addOccurrence("c:mB", siteY)
	// Z: dynamic call of mA with an untyped receiver — admitted.
	siteZ := callSite(mA, "/src/z.cc", 22, model.SymbolRoleDynamic)
	index.addOccurrence("c:mA", siteZ)

	sys := newResolverSystem(t, index)

	callee := model.NewSymbolOccurrence(m, model.SymbolRoleCall.Union(model.SymbolRoleDynamic), locationAt("/src/x.cc", 20),
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: classD})
	results, completed := collectCalls(t, sys, callee)

	assert.True(t, completed)
	assert.Equal(t, []*model.SymbolOccurrence{siteX, siteZ}, results)
}

func TestCallOccurrenceExtensionRewriting(t *testing.T) {
	index := newFakeSymbolIndex()
	m := &model.Symbol{USR: "c:m", Name: "m", Kind: model.SymbolKindInstanceMethod}
	m0 := &model.Symbol{USR: "c:m0", Name: "m", Kind: model.SymbolKindInstanceMethod}
	ext := &model.Symbol{USR: "c:ext", Name: "T+ext", Kind: model.SymbolKindExtension}
	classT := &model.Symbol{USR: "c:T", Name: "T", Kind: model.SymbolKindClass}

	// The extension extends T.
	index.addRelated("c:ext", model.NewSymbolOccurrence(classT, model.SymbolRoleReference, locationAt("/src/ext.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationExtendedBy, Symbol: ext}))

	// m overrides m0; V is a dynamic call of m0 received by T. It is admitted
	// only if the extension was rewritten to T before the receiver filter.
	index.addOccurrence("c:m", model.NewSymbolOccurrence(m, model.SymbolRoleDefinition, locationAt("/src/ext.cc", 4),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: m0}))
	siteV := callSite(m0, "/src/v.cc", 8, model.SymbolRoleDynamic,
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: classT})
	index.addOccurrence("c:m0", siteV)

	sys := newResolverSystem(t, index)

	callee := model.NewSymbolOccurrence(m, model.SymbolRoleCall.Union(model.SymbolRoleDynamic), locationAt("/src/v.cc", 8),
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: ext})
	results, completed := collectCalls(t, sys, callee)

	assert.True(t, completed)
	assert.Equal(t, []*model.SymbolOccurrence{siteV}, results)
}

func TestCallOccurrenceStaticShortcut(t *testing.T) {
	index := newFakeSymbolIndex()
	m := &model.Symbol{USR: "c:m", Name: "m", Kind: model.SymbolKindInstanceMethod}
	mB := &model.Symbol{USR: "c:mB", Name: "m", Kind: model.SymbolKindInstanceMethod}
	classD := &model.Symbol{USR: "c:D", Name: "D", Kind: model.SymbolKindClass}

	direct := callSite(m, "/src/a.cc", 3, 0)
	index.addOccurrence("c:m", direct)
	// Dynamic data that must not be consulted without the Dynamic role.
	index.addOccurrence("c:m", model.NewSymbolOccurrence(m, model.SymbolRoleDefinition, locationAt("/src/d.cc", 3),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: mB}))
	index.addOccurrence("c:mB", callSite(mB, "/src/b.cc", 7, model.SymbolRoleDynamic))

	sys := newResolverSystem(t, index)

	callee := model.NewSymbolOccurrence(m, model.SymbolRoleCall, locationAt("/src/a.cc", 3),
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: classD})
	results, completed := collectCalls(t, sys, callee)

	assert.True(t, completed)
	assert.Equal(t, []*model.SymbolOccurrence{direct}, results)
}

func TestGetBaseMethodsOrClassesDeduplicates(t *testing.T) {
	index := newFakeSymbolIndex()
	classD := &model.Symbol{USR: "c:D", Name: "D", Kind: model.SymbolKindClass}
	classB := &model.Symbol{USR: "c:B", Name: "B", Kind: model.SymbolKindClass}
	classC := &model.Symbol{USR: "c:C", Name: "C", Kind: model.SymbolKindClass}
	classA := &model.Symbol{USR: "c:A", Name: "A", Kind: model.SymbolKindClass}

	// Diamond: D derives from B and C, both deriving from A.
	index.addRelated("c:D", model.NewSymbolOccurrence(classB, model.SymbolRoleReference, locationAt("/src/d.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationBaseOf, Symbol: classD}))
	index.addRelated("c:D", model.NewSymbolOccurrence(classC, model.SymbolRoleReference, locationAt("/src/d.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationBaseOf, Symbol: classD}))
	index.addRelated("c:B", model.NewSymbolOccurrence(classA, model.SymbolRoleReference, locationAt("/src/b.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationBaseOf, Symbol: classB}))
	index.addRelated("c:C", model.NewSymbolOccurrence(classA, model.SymbolRoleReference, locationAt("/src/c.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationBaseOf, Symbol: classC}))

	sys := newResolverSystem(t, index)

	bases := sys.GetBaseMethodsOrClasses(classD)

	usrs := make([]string, 0, len(bases))
	for _, sym := range bases {
		usrs = append(usrs, sym.USR)
	}
	assert.Equal(t, []string{"c:B", "c:A", "c:C"}, usrs)
	assert.NotContains(t, usrs, "c:D")
}

func TestGetBaseMethodsOrClassesForMethodWalksOverrides(t *testing.T) {
	index := newFakeSymbolIndex()
	m := &model.Symbol{USR: "c:m", Name: "m", Kind: model.SymbolKindInstanceMethod}
	mB := &model.Symbol{USR: "c:mB", Name: "m", Kind: model.SymbolKindInstanceMethod}
	mA := &model.Symbol{USR: "c:mA", Name: "m", Kind: model.SymbolKindInstanceMethod}

	index.addOccurrence("c:m", model.NewSymbolOccurrence(m, model.SymbolRoleDefinition, locationAt("/src/d.cc", 3),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: mB}))
	index.addOccurrence("c:mB", model.NewSymbolOccurrence(mB, model.SymbolRoleDefinition, locationAt("/src/b.cc", 3),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: mA}))

	sys := newResolverSystem(t, index)

	bases := sys.GetBaseMethodsOrClasses(m)

	usrs := make([]string, 0, len(bases))
	for _, sym := range bases {
		usrs = append(usrs, sym.USR)
	}
	assert.Equal(t, []string{"c:mB", "c:mA"}, usrs)
}

func TestCallOccurrenceProtocolEarlyTermination(t *testing.T) {
	index := newFakeSymbolIndex()
	m := &model.Symbol{USR: "c:m", Name: "m", Kind: model.SymbolKindInstanceMethod}
	m1 := &model.Symbol{USR: "c:m1", Name: "m", Kind: model.SymbolKindInstanceMethod}
	proto := &model.Symbol{USR: "c:P", Name: "P", Kind: model.SymbolKindProtocol}

	index.addOccurrence("c:m1", callSite(m1, "/src/b.cc", 9, 0))
	index.addRelated("c:m", model.NewSymbolOccurrence(m1, model.SymbolRoleDefinition, locationAt("/src/b.cc", 1),
		model.SymbolRelation{Roles: model.SymbolRoleRelationOverrideOf, Symbol: m}))

	sys := newResolverSystem(t, index)

	callee := model.NewSymbolOccurrence(m, model.SymbolRoleCall.Union(model.SymbolRoleDynamic), locationAt("/src/a.cc", 5),
		model.SymbolRelation{Roles: model.SymbolRoleRelationReceivedBy, Symbol: proto})

	calls := 0
	completed := sys.ForeachSymbolCallOccurrence(callee, func(*model.SymbolOccurrence) bool {
		calls++
		return false
	})
	assert.False(t, completed)
	assert.Equal(t, 1, calls)
}
