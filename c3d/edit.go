package c3d

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-c3d/internal/dtype"
	"github.com/robert-malhotra/go-c3d/internal/log"
)

const maxPoints = 0xffff

// AddPoints appends one point per label to every frame. New points start at
// the origin with a zero residual and an empty camera mask.
//
// When POINT:LABELS is a two dimensional character parameter each new label
// is padded or truncated to the existing label width and stored at the index
// of its point. A label list shorter than the old point count is first padded
// with blank labels. Without POINT:LABELS the new points stay unlabeled.
// POINT:USED is kept in step with the point count. The parameter section
// block count grows when the section no longer fits and never shrinks.
func (f *File) AddPoints(labels ...string) error {
	n := len(labels)
	if n == 0 {
		return nil
	}

	total := f.header.PointCount + n
	if total > maxPoints {
		return errors.Wrapf(ErrDimension, "%d points", total)
	}
	p := f.params.Param("POINT", "LABELS")
	relabel := p != nil && p.Type == dtype.Char && len(p.Dims) == 2
	if relabel {
		if c := labelCount(p.Dims[1], f.header.PointCount, n); c > 255 {
			return errors.Wrapf(ErrDimension, "POINT:LABELS would hold %d labels", c)
		}
	}

	points := f.header.PointCount
	for _, fr := range f.frames {
		fr.Resize(total)
	}
	f.header.PointCount = total

	if used := f.params.Param("POINT", "USED"); used != nil && used.Type == dtype.Int16 && len(used.Ints) > 0 {
		used.Ints[0] = int16(total)
	}

	if relabel {
		p.Strings = insertLabels(p.Strings, p.Dims[0], p.Dims[1], points, labels)
		p.Dims[1] = len(p.Strings)
	} else {
		log.Debug("no POINT:LABELS parameter, new points are unlabeled", map[string]interface{}{
			log.KeyPoints: n,
		})
	}

	if need := f.params.BlocksNeeded(); need > f.params.Blocks {
		log.Debug("growing parameter section", map[string]interface{}{
			"from": f.params.Blocks,
			"to":   need,
		})
		f.params.Blocks = need
	}
	return nil
}

func labelCount(count, points, n int) int {
	if count < points {
		count = points
	}
	return count + n
}

// insertLabels stores the new labels from index points on. Labels beyond
// points are kept after the new ones.
func insertLabels(old []string, width, count, points int, labels []string) []string {
	cur := make([]string, count)
	for i := range cur {
		if i < len(old) {
			cur[i] = old[i]
		} else {
			cur[i] = dtype.FitString("", width)
		}
	}
	head := points
	if head > count {
		head = count
	}

	out := make([]string, 0, labelCount(count, points, len(labels)))
	out = append(out, cur[:head]...)
	for i := head; i < points; i++ {
		out = append(out, dtype.FitString("", width))
	}
	for _, l := range labels {
		out = append(out, dtype.FitString(l, width))
	}
	return append(out, cur[head:]...)
}
