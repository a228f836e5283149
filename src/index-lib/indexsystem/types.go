package indexsystem

import (
	"io"
	"time"

	"github.com/dreampiggy/indexstore-db/src/index-lib/model"
)

// Database is an opaque handle to the on-disk key/value store shared by the
// sub-indexes. The engine itself lives outside this layer.
type Database interface {
	Close() error
}

// DatabaseOpener opens the database at path. initialSize <= 0 means the
// engine's default size hint.
type DatabaseOpener func(path string, readOnly bool, initialSize int64) (Database, error)

// IndexStoreLibrary is an opaque handle to a loaded index-store reader
// library.
type IndexStoreLibrary interface{}

// IndexStoreLibraryProvider resolves the reader library capable of opening a
// given store path. A nil result means no suitable library exists.
type IndexStoreLibraryProvider interface {
	LibraryForStorePath(storePath string) IndexStoreLibrary
}

// IndexStore is an opaque handle to an opened store of unit artifacts.
type IndexStore interface {
	Close() error
}

// IndexStoreOpener opens the store at storePath using the resolved library.
type IndexStoreOpener func(storePath string, lib IndexStoreLibrary) (IndexStore, error)

// SymbolIndex is the symbol sub-index. Every Foreach operation returns true
// iff the enumeration completed without the receiver terminating it early.
type SymbolIndex interface {
	ForeachSymbolOccurrenceByUSR(usr string, roles model.SymbolRoleSet, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachRelatedSymbolOccurrenceByUSR(usr string, roles model.SymbolRoleSet, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachCanonicalSymbolOccurrenceContainingPattern(pattern string, anchorStart, anchorEnd, subsequence, ignoreCase bool, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachCanonicalSymbolOccurrenceByName(name string, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachSymbolName(receiver func(name string) bool) bool
	ForeachCanonicalSymbolOccurrenceByUSR(usr string, receiver func(*model.SymbolOccurrence) bool) bool
	CountOfCanonicalSymbolsWithKind(kind model.SymbolKind, workspaceOnly bool) int
	ForeachCanonicalSymbolOccurrenceByKind(kind model.SymbolKind, workspaceOnly bool, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachUnitTestSymbolReferencedByOutputPaths(outFilePaths []model.CanonicalFilePath, receiver func(*model.SymbolOccurrence) bool) bool
	PrintStats(w io.Writer)
	DumpProviderFileAssociations(w io.Writer)
}

// FilePathIndex is the path sub-index.
type FilePathIndex interface {
	GetCanonicalPath(raw string) model.CanonicalFilePath
	IsKnownFile(path model.CanonicalFilePath) bool
	ForeachMainUnitContainingFile(path model.CanonicalFilePath, receiver func(*model.StoreUnitInfo) bool) bool
	ForeachFileOfUnit(unitName string, followDependencies bool, receiver func(model.CanonicalFilePath) bool) bool
	ForeachFilenameContainingPattern(pattern string, anchorStart, anchorEnd, subsequence, ignoreCase bool, receiver func(model.CanonicalFilePath) bool) bool
	ForeachFileIncludingFile(target model.CanonicalFilePath, receiver func(source model.CanonicalFilePath, line int) bool) bool
	ForeachFileIncludedByFile(source model.CanonicalFilePath, receiver func(target model.CanonicalFilePath, line int) bool) bool
	ForeachIncludeOfUnit(unitName string, receiver func(source, target model.CanonicalFilePath, line int) bool) bool
}

// FileVisibilityChecker tracks which units are visible to queries based on the
// registered main files and explicit output units.
type FileVisibilityChecker interface {
	RegisterMainFiles(filePaths []string, productName string)
	UnregisterMainFiles(filePaths []string, productName string)
	AddUnitOutFilePaths(filePaths []string)
	RemoveUnitOutFilePaths(filePaths []string)
}

// IndexDatastore watches and ingests unit artifacts from the store. Close
// stops background ingestion.
type IndexDatastore interface {
	IsUnitOutOfDateByDirtyFiles(unitOutputPath string, dirtyFiles []string) bool
	IsUnitOutOfDateByModTime(unitOutputPath string, outOfDateModTime time.Time) bool
	CheckUnitContainingFileIsOutOfDate(file string)
	AddUnitOutFilePaths(filePaths []string, waitForProcessing bool)
	RemoveUnitOutFilePaths(filePaths []string, waitForProcessing bool)
	PurgeStaleData()
	PollForUnitChangesAndWait()
	Close() error
}

// Delegate receives index lifecycle events. Implementations are invoked
// serially from a dedicated worker, except for the explicitly synchronous
// out-of-date notification.
type Delegate interface {
	ProcessingAddedPending(numActions int)
	ProcessingCompleted(numActions int)
	ProcessedStoreUnit(unitInfo model.StoreUnitInfo)
	UnitIsOutOfDate(unitInfo model.StoreUnitInfo, outOfDateModTime time.Time, hint model.OutOfDateTriggerHint, synchronous bool)
}

// DatastoreParams carries everything the datastore constructor needs.
type DatastoreParams struct {
	Store       IndexStore
	SymbolIndex SymbolIndex
	Delegate    Delegate
	PathCache   *CanonicalPathCache

	UseExplicitOutputUnits      bool
	ReadOnly                    bool
	EnableOutOfDateFileWatching bool
	ListenToUnitEvents          bool
	WaitUntilDoneInitializing   bool
}

// Dependencies bundles the constructors for the collaborators the index
// system composes. Injected so tests can substitute each one.
type Dependencies struct {
	OpenDatabase             DatabaseOpener
	OpenIndexStore           IndexStoreOpener
	NewFileVisibilityChecker func(db Database, cache *CanonicalPathCache, useExplicitOutputUnits bool) FileVisibilityChecker
	NewSymbolIndex           func(db Database, store IndexStore, visibility FileVisibilityChecker) SymbolIndex
	NewFilePathIndex         func(db Database, store IndexStore, visibility FileVisibilityChecker, cache *CanonicalPathCache) FilePathIndex
	NewIndexDatastore        func(p DatastoreParams) (IndexDatastore, error)
}
