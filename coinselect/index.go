// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/btcsuite/btcd/txscript"

// Groups holds OutputGroups at one level of the index (either a single
// output type, or the type-agnostic union), split by whether every member
// group has a strictly positive selection amount.
type Groups struct {
	// Positive holds only groups whose selection amount is strictly
	// positive.
	Positive []*OutputGroup

	// Mixed may hold any group, positive or not.
	Mixed []*OutputGroup
}

// GroupIndex is a two-level index over OutputGroups: one level keyed by
// output type, and a type-agnostic union ("AllGroups") holding the same
// groups regardless of type. Each level is itself split into Positive and
// Mixed lists (see Groups).
type GroupIndex struct {
	// byType maps an output's script class to the groups sharing that
	// class.
	byType map[txscript.ScriptClass]*Groups

	// AllGroups is the type-agnostic union: every group pushed into this
	// index appears here too.
	AllGroups Groups
}

// NewGroupIndex returns an empty GroupIndex.
func NewGroupIndex() *GroupIndex {
	return &GroupIndex{
		byType: make(map[txscript.ScriptClass]*Groups),
	}
}

// Push appends group to the per-type Groups at outputType, and to
// AllGroups, gating each list by insertPositive/insertMixed respectively.
func (idx *GroupIndex) Push(group *OutputGroup, outputType txscript.ScriptClass,
	insertPositive, insertMixed bool) {

	typed, ok := idx.byType[outputType]
	if !ok {
		typed = &Groups{}
		idx.byType[outputType] = typed
	}

	if insertPositive {
		typed.Positive = append(typed.Positive, group)
		idx.AllGroups.Positive = append(idx.AllGroups.Positive, group)
	}

	if insertMixed {
		typed.Mixed = append(typed.Mixed, group)
		idx.AllGroups.Mixed = append(idx.AllGroups.Mixed, group)
	}
}

// TypesCount returns the number of distinct output types that have been
// pushed into this index.
func (idx *GroupIndex) TypesCount() int {
	return len(idx.byType)
}

// GroupsForType returns the Groups filed under the given output type, or
// the zero value if nothing has been pushed for it.
func (idx *GroupIndex) GroupsForType(outputType txscript.ScriptClass) Groups {
	if g, ok := idx.byType[outputType]; ok {
		return *g
	}

	return Groups{}
}

// EligibleGroups filters src down to the groups that pass filter, which is
// the step the driver performs between indexing and invoking a solver.
func EligibleGroups(src []*OutputGroup, filter EligibilityFilter) []*OutputGroup {
	eligible := make([]*OutputGroup, 0, len(src))
	for _, g := range src {
		if g.EligibleForSpending(filter) {
			eligible = append(eligible, g)
		}
	}

	return eligible
}
