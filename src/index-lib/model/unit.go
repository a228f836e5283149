package model

import "time"

// StoreUnitInfo describes one translation-unit artifact in the store.
type StoreUnitInfo struct {
	UnitName       string
	MainFilePath   CanonicalFilePath
	OutFilePath    string
	HasTestSymbols bool
	ModTime        time.Time
}
