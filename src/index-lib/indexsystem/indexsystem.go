package indexsystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dreampiggy/indexstore-db/src/index-lib/model"
	"github.com/uber-go/tally"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// IndexSystem is the façade over the symbol sub-index, the path sub-index,
// the visibility checker, and the unit datastore. Query operations may be
// invoked from multiple goroutines concurrently; each collaborator owns its
// own thread safety. Every Foreach operation returns true iff the enumeration
// completed without the receiver terminating it early.
type IndexSystem interface {
	IsUnitOutOfDateByDirtyFiles(unitOutputPath string, dirtyFiles []string) bool
	IsUnitOutOfDateByModTime(unitOutputPath string, outOfDateModTime time.Time) bool
	CheckUnitContainingFileIsOutOfDate(file string)

	RegisterMainFiles(filePaths []string, productName string)
	UnregisterMainFiles(filePaths []string, productName string)
	AddUnitOutFilePaths(filePaths []string, waitForProcessing bool)
	RemoveUnitOutFilePaths(filePaths []string, waitForProcessing bool)

	PurgeStaleData()
	// PollForUnitChangesAndWait polls the datastore for unit changes and
	// blocks until they have been registered and all delegate notifications
	// arising from the poll have been delivered. For testing.
	PollForUnitChangesAndWait()

	PrintStats(w io.Writer)
	DumpProviderFileAssociations(w io.Writer)

	ForeachSymbolOccurrenceByUSR(usr string, roles model.SymbolRoleSet, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachRelatedSymbolOccurrenceByUSR(usr string, roles model.SymbolRoleSet, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachCanonicalSymbolOccurrenceContainingPattern(pattern string, anchorStart, anchorEnd, subsequence, ignoreCase bool, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachCanonicalSymbolOccurrenceByName(name string, receiver func(*model.SymbolOccurrence) bool) bool
	ForeachSymbolName(receiver func(name string) bool) bool
	ForeachCanonicalSymbolOccurrenceByUSR(usr string, receiver func(*model.SymbolOccurrence) bool) bool
	CountOfCanonicalSymbolsWithKind(kind model.SymbolKind, workspaceOnly bool) int
	ForeachCanonicalSymbolOccurrenceByKind(kind model.SymbolKind, workspaceOnly bool, receiver func(*model.SymbolOccurrence) bool) bool

	// ForeachSymbolCallOccurrence enumerates the occurrences that may call the
	// given occurrence of a callable symbol, accounting for dynamic dispatch,
	// protocol conformance, and class extensions.
	ForeachSymbolCallOccurrence(callee *model.SymbolOccurrence, receiver func(*model.SymbolOccurrence) bool) bool
	// GetBaseMethodsOrClasses returns the symbols related to sym by override
	// (for instance methods) or subtype (otherwise), walked transitively and
	// deduplicated by USR. sym itself is not included.
	GetBaseMethodsOrClasses(sym *model.Symbol) []*model.Symbol

	IsKnownFile(filePath string) bool
	ForeachMainUnitContainingFile(filePath string, receiver func(*model.StoreUnitInfo) bool) bool
	ForeachFileOfUnit(unitName string, followDependencies bool, receiver func(model.CanonicalFilePath) bool) bool
	ForeachFilenameContainingPattern(pattern string, anchorStart, anchorEnd, subsequence, ignoreCase bool, receiver func(model.CanonicalFilePath) bool) bool
	ForeachFileIncludingFile(targetPath string, receiver func(source model.CanonicalFilePath, line int) bool) bool
	ForeachFileIncludedByFile(sourcePath string, receiver func(target model.CanonicalFilePath, line int) bool) bool
	ForeachIncludeOfUnit(unitName string, receiver func(source, target model.CanonicalFilePath, line int) bool) bool
	ForeachUnitTestSymbolReferencedByOutputPaths(outFilePaths []model.CanonicalFilePath, receiver func(*model.SymbolOccurrence) bool) bool

	Close() error
}

// Params are the inbound dependencies for a new index system.
type Params struct {
	fx.In

	Config           config.Provider
	Logger           *zap.SugaredLogger
	Stats            tally.Scope
	StoreLibProvider IndexStoreLibraryProvider
	Delegate         Delegate `optional:"true"`
	Deps             Dependencies
}

type indexSystem struct {
	storePath    string
	databasePath string
	logger       *zap.SugaredLogger

	symbolQueries tally.Counter
	pathQueries   tally.Counter
	unitChecks    tally.Counter

	delegate   *asyncDelegate
	visibility FileVisibilityChecker
	symIndex   SymbolIndex
	pathIndex  FilePathIndex
	datastore  IndexDatastore

	db    Database
	store IndexStore

	closeOnce sync.Once
}

// New constructs an index system from the "indexsystem" configuration
// subtree. Construction either yields a fully initialized system or an error
// with nothing retained; partial construction is never observable.
func New(p Params) (IndexSystem, error) {
	var cfg Config
	if err := p.Config.Get(ConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("populating %q configuration: %w", ConfigKey, err)
	}

	logger := p.Logger.With("component", "indexsystem")
	stats := p.Stats.SubScope("indexsystem")

	db, err := p.Deps.OpenDatabase(cfg.DatabasePath, cfg.ReadOnly, cfg.InitialDatabaseSize)
	if err != nil {
		return nil, fmt.Errorf("opening index database at %q: %w", cfg.DatabasePath, err)
	}

	lib := p.StoreLibProvider.LibraryForStorePath(cfg.StorePath)
	if lib == nil {
		err := errors.New("could not determine indexstore library")
		return nil, multierr.Append(err, db.Close())
	}

	// Create the store path if it does not already exist. Failure here is not
	// fatal on its own; the store open below surfaces the hard error if the
	// directory is truly absent.
	var mkdirErr error
	if !cfg.ReadOnly {
		if err := os.MkdirAll(cfg.StorePath, 0o755); err != nil {
			mkdirErr = fmt.Errorf("could not create directories for data store path %s: %w", cfg.StorePath, err)
			logger.Warnf("%v", mkdirErr)
		}
	}

	store, err := p.Deps.OpenIndexStore(cfg.StorePath, lib)
	if err != nil {
		err = fmt.Errorf("opening index store at %q: %w", cfg.StorePath, err)
		err = multierr.Append(err, mkdirErr)
		return nil, multierr.Append(err, db.Close())
	}

	// The canonical-path cache is shared by the visibility checker, the path
	// sub-index, and the datastore.
	cache := NewCanonicalPathCache()
	visibility := p.Deps.NewFileVisibilityChecker(db, cache, cfg.UseExplicitOutputUnits)
	symIndex := p.Deps.NewSymbolIndex(db, store, visibility)
	pathIndex := p.Deps.NewFilePathIndex(db, store, visibility, cache)
	delegate := newAsyncDelegate(p.Delegate, logger, stats)

	datastore, err := p.Deps.NewIndexDatastore(DatastoreParams{
		Store:                       store,
		SymbolIndex:                 symIndex,
		Delegate:                    delegate,
		PathCache:                   cache,
		UseExplicitOutputUnits:      cfg.UseExplicitOutputUnits,
		ReadOnly:                    cfg.ReadOnly,
		EnableOutOfDateFileWatching: cfg.EnableOutOfDateFileWatching,
		ListenToUnitEvents:          cfg.ListenToUnitEvents,
		WaitUntilDoneInitializing:   cfg.WaitUntilDoneInitializing,
	})
	if err != nil {
		delegate.close()
		err = fmt.Errorf("initializing index datastore: %w", err)
		err = multierr.Append(err, store.Close())
		return nil, multierr.Append(err, db.Close())
	}

	logger.Debugw("index system initialized",
		"storePath", cfg.StorePath,
		"databasePath", cfg.DatabasePath,
		"readOnly", cfg.ReadOnly,
	)

	return &indexSystem{
		storePath:     cfg.StorePath,
		databasePath:  cfg.DatabasePath,
		logger:        logger,
		symbolQueries: stats.Counter("symbol_queries"),
		pathQueries:   stats.Counter("path_queries"),
		unitChecks:    stats.Counter("unit_checks"),
		delegate:      delegate,
		visibility:    visibility,
		symIndex:      symIndex,
		pathIndex:     pathIndex,
		datastore:     datastore,
		db:            db,
		store:         store,
	}, nil
}

// Close tears the system down: the datastore first (stopping background
// ingestion), then the delegate worker, then the store and database handles.
func (s *indexSystem) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = multierr.Append(err, s.datastore.Close())
		s.delegate.close()
		err = multierr.Append(err, s.store.Close())
		err = multierr.Append(err, s.db.Close())
		s.logger.Debug("index system closed")
	})
	return err
}

func (s *indexSystem) IsUnitOutOfDateByDirtyFiles(unitOutputPath string, dirtyFiles []string) bool {
	s.unitChecks.Inc(1)
	return s.datastore.IsUnitOutOfDateByDirtyFiles(unitOutputPath, dirtyFiles)
}

func (s *indexSystem) IsUnitOutOfDateByModTime(unitOutputPath string, outOfDateModTime time.Time) bool {
	s.unitChecks.Inc(1)
	return s.datastore.IsUnitOutOfDateByModTime(unitOutputPath, outOfDateModTime)
}

func (s *indexSystem) CheckUnitContainingFileIsOutOfDate(file string) {
	s.unitChecks.Inc(1)
	s.datastore.CheckUnitContainingFileIsOutOfDate(file)
}

func (s *indexSystem) RegisterMainFiles(filePaths []string, productName string) {
	s.visibility.RegisterMainFiles(filePaths, productName)
}

func (s *indexSystem) UnregisterMainFiles(filePaths []string, productName string) {
	s.visibility.UnregisterMainFiles(filePaths, productName)
}

// AddUnitOutFilePaths notifies the visibility checker before the datastore so
// that ingestion events emitted by the datastore find consistent visibility
// state.
func (s *indexSystem) AddUnitOutFilePaths(filePaths []string, waitForProcessing bool) {
	s.visibility.AddUnitOutFilePaths(filePaths)
	s.datastore.AddUnitOutFilePaths(filePaths, waitForProcessing)
}

func (s *indexSystem) RemoveUnitOutFilePaths(filePaths []string, waitForProcessing bool) {
	s.visibility.RemoveUnitOutFilePaths(filePaths)
	s.datastore.RemoveUnitOutFilePaths(filePaths, waitForProcessing)
}

func (s *indexSystem) PurgeStaleData() {
	s.datastore.PurgeStaleData()
}

func (s *indexSystem) PollForUnitChangesAndWait() {
	s.datastore.PollForUnitChangesAndWait()
	s.delegate.drain()
}

func (s *indexSystem) PrintStats(w io.Writer) {
	s.symIndex.PrintStats(w)
}

func (s *indexSystem) DumpProviderFileAssociations(w io.Writer) {
	s.symIndex.DumpProviderFileAssociations(w)
}

func (s *indexSystem) ForeachSymbolOccurrenceByUSR(usr string, roles model.SymbolRoleSet, receiver func(*model.SymbolOccurrence) bool) bool {
	s.symbolQueries.Inc(1)
	return s.symIndex.ForeachSymbolOccurrenceByUSR(usr, roles, receiver)
}

func (s *indexSystem) ForeachRelatedSymbolOccurrenceByUSR(usr string, roles model.SymbolRoleSet, receiver func(*model.SymbolOccurrence) bool) bool {
	s.symbolQueries.Inc(1)
	return s.symIndex.ForeachRelatedSymbolOccurrenceByUSR(usr, roles, receiver)
}

func (s *indexSystem) ForeachCanonicalSymbolOccurrenceContainingPattern(pattern string, anchorStart, anchorEnd, subsequence, ignoreCase bool, receiver func(*model.SymbolOccurrence) bool) bool {
	s.symbolQueries.Inc(1)
	return s.symIndex.ForeachCanonicalSymbolOccurrenceContainingPattern(pattern, anchorStart, anchorEnd, subsequence, ignoreCase, receiver)
}

func (s *indexSystem) ForeachCanonicalSymbolOccurrenceByName(name string, receiver func(*model.SymbolOccurrence) bool) bool {
	s.symbolQueries.Inc(1)
	return s.symIndex.ForeachCanonicalSymbolOccurrenceByName(name, receiver)
}

func (s *indexSystem) ForeachSymbolName(receiver func(name string) bool) bool {
	s.symbolQueries.Inc(1)
	return s.symIndex.ForeachSymbolName(receiver)
}

func (s *indexSystem) ForeachCanonicalSymbolOccurrenceByUSR(usr string, receiver func(*model.SymbolOccurrence) bool) bool {
	s.symbolQueries.Inc(1)
	return s.symIndex.ForeachCanonicalSymbolOccurrenceByUSR(usr, receiver)
}

func (s *indexSystem) CountOfCanonicalSymbolsWithKind(kind model.SymbolKind, workspaceOnly bool) int {
	s.symbolQueries.Inc(1)
	return s.symIndex.CountOfCanonicalSymbolsWithKind(kind, workspaceOnly)
}

func (s *indexSystem) ForeachCanonicalSymbolOccurrenceByKind(kind model.SymbolKind, workspaceOnly bool, receiver func(*model.SymbolOccurrence) bool) bool {
	s.symbolQueries.Inc(1)
	return s.symIndex.ForeachCanonicalSymbolOccurrenceByKind(kind, workspaceOnly, receiver)
}

func (s *indexSystem) IsKnownFile(filePath string) bool {
	s.pathQueries.Inc(1)
	canonPath := s.pathIndex.GetCanonicalPath(filePath)
	return s.pathIndex.IsKnownFile(canonPath)
}

func (s *indexSystem) ForeachMainUnitContainingFile(filePath string, receiver func(*model.StoreUnitInfo) bool) bool {
	s.pathQueries.Inc(1)
	canonPath := s.pathIndex.GetCanonicalPath(filePath)
	return s.pathIndex.ForeachMainUnitContainingFile(canonPath, receiver)
}

func (s *indexSystem) ForeachFileOfUnit(unitName string, followDependencies bool, receiver func(model.CanonicalFilePath) bool) bool {
	s.pathQueries.Inc(1)
	return s.pathIndex.ForeachFileOfUnit(unitName, followDependencies, receiver)
}

func (s *indexSystem) ForeachFilenameContainingPattern(pattern string, anchorStart, anchorEnd, subsequence, ignoreCase bool, receiver func(model.CanonicalFilePath) bool) bool {
	s.pathQueries.Inc(1)
	return s.pathIndex.ForeachFilenameContainingPattern(pattern, anchorStart, anchorEnd, subsequence, ignoreCase, receiver)
}

func (s *indexSystem) ForeachFileIncludingFile(targetPath string, receiver func(source model.CanonicalFilePath, line int) bool) bool {
	s.pathQueries.Inc(1)
	canonTargetPath := s.pathIndex.GetCanonicalPath(targetPath)
	return s.pathIndex.ForeachFileIncludingFile(canonTargetPath, receiver)
}

func (s *indexSystem) ForeachFileIncludedByFile(sourcePath string, receiver func(target model.CanonicalFilePath, line int) bool) bool {
	s.pathQueries.Inc(1)
	canonSourcePath := s.pathIndex.GetCanonicalPath(sourcePath)
	return s.pathIndex.ForeachFileIncludedByFile(canonSourcePath, receiver)
}

func (s *indexSystem) ForeachIncludeOfUnit(unitName string, receiver func(source, target model.CanonicalFilePath, line int) bool) bool {
	s.pathQueries.Inc(1)
	return s.pathIndex.ForeachIncludeOfUnit(unitName, receiver)
}

func (s *indexSystem) ForeachUnitTestSymbolReferencedByOutputPaths(outFilePaths []model.CanonicalFilePath, receiver func(*model.SymbolOccurrence) bool) bool {
	s.symbolQueries.Inc(1)
	return s.symIndex.ForeachUnitTestSymbolReferencedByOutputPaths(outFilePaths, receiver)
}
