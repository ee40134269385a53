// Package bvhstats renders build statistics as a table, kept external to
// the core library. It depends on package bvh for nothing but the numbers
// callers already have on hand; bvh never imports bvhstats.
package bvhstats

import (
	"bytes"
	"fmt"

	"github.com/anthonyjsmith/geobvh/bvh"
	"github.com/olekukonko/tablewriter"
)

// Stats is a snapshot of a single BVH: node and leaf counts, the deepest
// leaf, and occupancy.
type Stats struct {
	Label          string
	PrimitiveCount int
	NodeCount      int
	LeafCount      int
	MaxDepth       int
}

// FromShape snapshots a built shape's statistics under label.
func FromShape(label string, s *bvh.Shape) Stats {
	return Stats{
		Label:          label,
		PrimitiveCount: s.NumElements(),
		NodeCount:      s.NodeCount(),
		LeafCount:      s.LeafCount(),
		MaxDepth:       s.MaxDepth(),
	}
}

// FromScene snapshots the scene BVH's own statistics (shapes-as-primitives),
// not the per-shape trees it owns — pair with FromShape over sc.Shapes() for
// a full Report.
func FromScene(label string, sc *bvh.Scene) Stats {
	return Stats{
		Label:          label,
		PrimitiveCount: len(sc.Shapes()),
		NodeCount:      sc.NodeCount(),
		LeafCount:      sc.LeafCount(),
		MaxDepth:       sc.MaxDepth(),
	}
}

// AvgLeafOccupancy returns the mean number of primitives per leaf.
func (s Stats) AvgLeafOccupancy() float64 {
	if s.LeafCount == 0 {
		return 0
	}
	return float64(s.PrimitiveCount) / float64(s.LeafCount)
}

// String renders the stats as a small table via tablewriter.
func (s Stats) String() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Label", s.Label})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", s.PrimitiveCount)})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", s.NodeCount)})
	table.Append([]string{"Leaves", fmt.Sprintf("%d", s.LeafCount)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Avg leaf occupancy", fmt.Sprintf("%.2f", s.AvgLeafOccupancy())})
	table.Render()
	return buf.String()
}

// Report renders a collection of per-shape Stats plus a combined total row,
// the way a caller inspecting a whole scene would want it printed.
func Report(shapes []Stats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Shape", "Primitives", "Nodes", "Leaves", "Max depth"})

	var totalPrims, totalNodes, totalLeaves int
	for _, s := range shapes {
		table.Append([]string{
			s.Label,
			fmt.Sprintf("%d", s.PrimitiveCount),
			fmt.Sprintf("%d", s.NodeCount),
			fmt.Sprintf("%d", s.LeafCount),
			fmt.Sprintf("%d", s.MaxDepth),
		})
		totalPrims += s.PrimitiveCount
		totalNodes += s.NodeCount
		totalLeaves += s.LeafCount
	}
	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d", totalPrims),
		fmt.Sprintf("%d", totalNodes),
		fmt.Sprintf("%d", totalLeaves),
		" ",
	})

	table.Render()
	return buf.String()
}
