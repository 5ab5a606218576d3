// Package kinematics defines the per-swing velocity curve record consumed by
// the scoring engine. Records are immutable once validated.
package kinematics

import (
	"errors"
	"fmt"
)

// DefaultSampleCount is the length of zero-filled curves when a record
// supplies no curve at all.
const DefaultSampleCount = 100

// FrameRate is the assumed capture rate used for frame-domain conversions.
const FrameRate = 30

// ErrCurveLengthMismatch is returned when the supplied curves of one swing do
// not share a sample count.
var ErrCurveLengthMismatch = errors.New("curve length mismatch")

// Segment identifies one body segment of the kinetic chain.
type Segment string

const (
	SegmentPelvis  Segment = "pelvis"
	SegmentTorso   Segment = "torso"
	SegmentLeadArm Segment = "leadArm"
	SegmentHands   Segment = "hands"
)

// Segments lists the kinetic chain in proximal-to-distal order.
var Segments = []Segment{SegmentPelvis, SegmentTorso, SegmentLeadArm, SegmentHands}

// Curve is an ordered series of velocity samples for one segment,
// time-normalized by sample index.
type Curve []float64

// Record is the raw kinematics input as delivered by the pose pipeline.
// A nil curve means the segment was not measured.
type Record struct {
	PelvisAngVel  Curve `json:"pelvisAngVel,omitempty" yaml:"pelvisAngVel,omitempty"`
	TorsoAngVel   Curve `json:"torsoAngVel,omitempty" yaml:"torsoAngVel,omitempty"`
	LeadArmAngVel Curve `json:"leadArmAngVel,omitempty" yaml:"leadArmAngVel,omitempty"`
	HandVel       Curve `json:"handVel,omitempty" yaml:"handVel,omitempty"`
}

// Curves is a validated record: four equal-length curves, with missing
// segments replaced by zero-filled curves.
type Curves struct {
	Pelvis  Curve `json:"pelvis"`
	Torso   Curve `json:"torso"`
	LeadArm Curve `json:"leadArm"`
	Hands   Curve `json:"hands"`
}

// Len returns the shared sample count.
func (c Curves) Len() int {
	return len(c.Pelvis)
}

// Get returns the curve for a segment.
func (c Curves) Get(s Segment) Curve {
	switch s {
	case SegmentPelvis:
		return c.Pelvis
	case SegmentTorso:
		return c.Torso
	case SegmentLeadArm:
		return c.LeadArm
	case SegmentHands:
		return c.Hands
	default:
		return nil
	}
}

// Empty reports whether the record carries no curve for any segment.
func (r Record) Empty() bool {
	return r.PelvisAngVel == nil && r.TorsoAngVel == nil && r.LeadArmAngVel == nil && r.HandVel == nil
}

func (r Record) named() []namedCurve {
	return []namedCurve{
		{"pelvisAngVel", r.PelvisAngVel},
		{"torsoAngVel", r.TorsoAngVel},
		{"leadArmAngVel", r.LeadArmAngVel},
		{"handVel", r.HandVel},
	}
}

type namedCurve struct {
	name  string
	curve Curve
}

// Normalize validates the record and substitutes zero-filled curves for
// missing segments. Missing curves take the length of the first present
// curve, or DefaultSampleCount if none is present. Present curves of
// differing lengths are rejected with ErrCurveLengthMismatch.
func (r Record) Normalize() (Curves, error) {
	n := -1
	first := ""
	for _, nc := range r.named() {
		if nc.curve == nil {
			continue
		}
		if n < 0 {
			n = len(nc.curve)
			first = nc.name
			continue
		}
		if len(nc.curve) != n {
			return Curves{}, fmt.Errorf("%w: %s has %d samples, %s has %d",
				ErrCurveLengthMismatch, nc.name, len(nc.curve), first, n)
		}
	}
	if n < 0 {
		n = DefaultSampleCount
	}

	return Curves{
		Pelvis:  orZeros(r.PelvisAngVel, n),
		Torso:   orZeros(r.TorsoAngVel, n),
		LeadArm: orZeros(r.LeadArmAngVel, n),
		Hands:   orZeros(r.HandVel, n),
	}, nil
}

func orZeros(c Curve, n int) Curve {
	if c != nil {
		out := make(Curve, len(c))
		copy(out, c)
		return out
	}
	return make(Curve, n)
}
