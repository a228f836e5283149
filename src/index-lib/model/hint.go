package model

import "fmt"

// OutOfDateTriggerHint explains why a unit is considered out of date. It is a
// closed sum: either the stale file itself, or a chain of dependent units
// leading back to it. Hints are immutable values and safe to capture across an
// async boundary.
type OutOfDateTriggerHint interface {
	// OriginalFileTrigger returns the leaf file path at the root of the chain.
	OriginalFileTrigger() string
	// Description returns a human-readable dependency chain.
	Description() string

	isOutOfDateTriggerHint()
}

// DependentFileTriggerHint marks the originating stale file.
type DependentFileTriggerHint struct {
	FilePath string
}

// OriginalFileTrigger returns the stale file path.
func (h DependentFileTriggerHint) OriginalFileTrigger() string {
	return h.FilePath
}

// Description returns the stale file path.
func (h DependentFileTriggerHint) Description() string {
	return h.FilePath
}

func (DependentFileTriggerHint) isOutOfDateTriggerHint() {}

// DependentUnitTriggerHint is one link of a unit dependency chain.
type DependentUnitTriggerHint struct {
	UnitName      string
	DependentHint OutOfDateTriggerHint
}

// OriginalFileTrigger returns the leaf file path of the nested hint.
func (h DependentUnitTriggerHint) OriginalFileTrigger() string {
	return h.DependentHint.OriginalFileTrigger()
}

// Description returns the chain in the form "unit(NAME) -> <nested>".
func (h DependentUnitTriggerHint) Description() string {
	return fmt.Sprintf("unit(%s) -> %s", h.UnitName, h.DependentHint.Description())
}

func (DependentUnitTriggerHint) isOutOfDateTriggerHint() {}
