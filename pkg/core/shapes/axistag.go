// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/multiarray/pkg/support/smallvec"
)

// AxisTag is a semantic label for an axis of an array.
//
// The values are ordered, so tags can be compared and sorted deterministically.
type AxisTag int

//go:generate go tool enumer -type=AxisTag -linecomment -text -output=gen_axistag_enumer.go axistag.go

const (
	// AxisUnknown is the default tag of axes without a declared meaning.
	AxisUnknown AxisTag = iota // ?

	// AxisMissing marks an axis that is known not to exist, e.g. when looking up a tag.
	AxisMissing // missing

	// AxisChannels marks the axis holding the channels (or components) of each element, e.g. RGB.
	AxisChannels // c

	AxisX    // x
	AxisY    // y
	AxisZ    // z
	AxisTime // t

	// Frequency-domain variants of the spatial and time axes, in the same order.
	AxisFrequencyX    // fx
	AxisFrequencyY    // fy
	AxisFrequencyZ    // fz
	AxisFrequencyTime // ft

	// Graph axes.
	AxisEdge // e
	AxisNode // n

	// AxisEnd is an end-marker: all valid tags are < AxisEnd.
	AxisEnd // end
)

const frequencyOffset = AxisFrequencyX - AxisX

// IsSpatial returns whether the tag is one of the spatial axes x, y or z.
func (t AxisTag) IsSpatial() bool {
	return t >= AxisX && t <= AxisZ
}

// IsFrequency returns whether the tag is one of the frequency-domain axes.
func (t AxisTag) IsFrequency() bool {
	return t >= AxisFrequencyX && t <= AxisFrequencyTime
}

// ToFrequency returns the frequency-domain variant of a spatial or time tag.
// Other tags are returned unchanged.
func (t AxisTag) ToFrequency() AxisTag {
	if t >= AxisX && t <= AxisTime {
		return t + frequencyOffset
	}
	return t
}

// FromFrequency is the inverse of ToFrequency.
func (t AxisTag) FromFrequency() AxisTag {
	if t.IsFrequency() {
		return t - frequencyOffset
	}
	return t
}

// AxisTags holds one AxisTag per axis. It's a value type, like Shape.
type AxisTags struct {
	tags smallvec.Vec[AxisTag]
}

// UnknownTags returns rank tags all set to AxisUnknown.
func UnknownTags(rank int) AxisTags {
	return AxisTags{tags: smallvec.Make[AxisTag](rank)}
}

// Tags returns an AxisTags with the given tags.
func Tags(tags ...AxisTag) AxisTags {
	return AxisTags{tags: smallvec.Of(tags...)}
}

// Len returns the number of tags.
func (at AxisTags) Len() int { return at.tags.Len() }

// At returns the tag of the given axis. Negative axes count from the end.
func (at AxisTags) At(axis int) AxisTag { return at.tags.At(axis) }

// Values returns a newly allocated slice with the tags.
func (at AxisTags) Values() []AxisTag { return at.tags.Values() }

// With returns a copy with the tag of the given axis replaced.
func (at AxisTags) With(axis int, tag AxisTag) AxisTags {
	out := at.tags.Clone()
	out.Set(axis, tag)
	return AxisTags{tags: out}
}

// Find returns the first axis with the given tag, or -1 if there is none.
func (at AxisTags) Find(tag AxisTag) int {
	for axis, t := range at.tags.All() {
		if t == tag {
			return axis
		}
	}
	return -1
}

// Channel returns the axis tagged AxisChannels, or -1 if there is none.
func (at AxisTags) Channel() int {
	return at.Find(AxisChannels)
}

// Remove returns a copy without the tag of the given axis.
func (at AxisTags) Remove(axis int) AxisTags {
	return AxisTags{tags: at.tags.Remove(axis)}
}

// Insert returns a copy with tag inserted at position axis.
func (at AxisTags) Insert(axis int, tag AxisTag) AxisTags {
	return AxisTags{tags: at.tags.Insert(axis, tag)}
}

// Permute returns a copy with the tags permuted: out.At(i) = at.At(perm[i]).
func (at AxisTags) Permute(perm []int) AxisTags {
	return AxisTags{tags: at.tags.Permute(perm)}
}

// Equal returns whether both hold the same tags.
func (at AxisTags) Equal(other AxisTags) bool {
	return smallvec.Equal(at.tags, other.tags)
}

// String implements fmt.Stringer.
func (at AxisTags) String() string {
	return at.tags.String()
}

// CheckTags panics if the number of tags is different from the rank of the shape.
func CheckTags(s Shape, tags AxisTags) {
	if tags.Len() != s.Rank() {
		exceptions.Panicf("%d axis tags %s given for shape %s of rank %d", tags.Len(), tags, s, s.Rank())
	}
}
