package bvhstats

import (
	"strings"
	"testing"

	"github.com/anthonyjsmith/geobvh/bvh"
	"github.com/anthonyjsmith/geobvh/vmath"
)

func TestFromShapeAndReport(t *testing.T) {
	positions := []vmath.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	shape := bvh.NewShape(bvh.Triangle, []uint32{0, 1, 2}, positions, nil, bvh.HeuristicSAH)
	shape.Build()

	s := FromShape("tri", shape)
	if s.PrimitiveCount != 1 {
		t.Fatalf("expected 1 primitive, got %d", s.PrimitiveCount)
	}
	if s.LeafCount == 0 {
		t.Fatalf("expected at least one leaf, got %+v", s)
	}

	report := Report([]Stats{s})
	if !strings.Contains(report, "tri") {
		t.Errorf("expected report to mention label, got:\n%s", report)
	}
}

func TestStatsAvgLeafOccupancy(t *testing.T) {
	s := Stats{PrimitiveCount: 10, LeafCount: 4}
	if got := s.AvgLeafOccupancy(); got != 2.5 {
		t.Errorf("got %v want 2.5", got)
	}
	empty := Stats{}
	if got := empty.AvgLeafOccupancy(); got != 0 {
		t.Errorf("expected 0 for no leaves, got %v", got)
	}
}
