package dendrogram

import (
	"fmt"
	"io"
)

// WriteSVG renders the dendrogram as a simple polyline diagram: one
// vertical-then-horizontal stroke per sample, from its own column down
// to its merge height and across to its merge target's column. This is
// a debug aid for interactive exploration, not a tested data contract.
func (d Dendrogram) WriteSVG(w io.Writer, margin, xScale float64) error {
	n := d.Len()
	if n == 0 {
		return nil
	}

	width := float64(n) * xScale
	height := 0.0
	for _, h := range d.height[:n-1] {
		if h > height {
			height = h
		}
	}

	if _, err := fmt.Fprintf(w, "<svg width=\"100%%\" height=\"100%%\" viewBox=\"%f %f %f %f\">\n",
		-margin, -margin, width+margin, height+margin); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<rect fill=\"#ffffff\" stroke=\"#ffffff\" x=\"%f\" y=\"%f\" width=\"%f\" height=\"%f\"/>\n",
		-margin, -margin, width+margin, height+margin); err != nil {
		return err
	}

	for i, mergeHeight := range d.height {
		x1 := float64(i) * xScale
		x2 := float64(d.target[i]) * xScale
		y1 := height
		y2 := height - finiteOr(mergeHeight, height)

		if _, err := fmt.Fprintf(w, "<polyline points=\"%f,%f %f,%f %f,%f\" fill=\"none\" stroke=\"black\"/>\n",
			x1, y1, x1, y2, x2, y2); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</svg>")
	return err
}
