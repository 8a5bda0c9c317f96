package report

import (
	"fmt"
	"io"

	"github.com/edp1096/rcnet/pkg/analysis"
	"github.com/edp1096/rcnet/pkg/units"
	"github.com/edp1096/rcnet/pkg/util"
)

// DescribeDC prints the open-circuit voltage and short-circuit current of
// the network at each drive value.
func DescribeDC[D fmt.Stringer](w io.Writer, n analysis.Net[D]) {
	fmt.Fprintf(w, "%s in -> out\n", n.Title)
	for _, p := range n.DC() {
		fmt.Fprintf(w, "%v \t -> %v, %v\n", p.Drive, p.Open, p.Short)
	}
}

// DescribeAC prints the corner frequency of the output filter.
func DescribeAC[D fmt.Stringer](w io.Writer, n analysis.Net[D]) {
	fmt.Fprintf(w, "%s 3db f = %v\n", n.Title, n.Corner())
}

func Describe[D fmt.Stringer](w io.Writer, n analysis.Net[D]) {
	fmt.Fprintln(w)
	DescribeDC(w, n)
	DescribeAC(w, n)
	fmt.Fprintln(w)
}

func Divider(w io.Writer, title string, r1, r2, r3 units.Ohm) {
	fmt.Fprintf(w, "%s: r1 = %v, r2 = %v, r3 = %v\n", title, r1, r2, r3)
}

// ACTable prints frequency, gain and phase of every point.
func ACTable(w io.Writer, title string, points []analysis.ACPoint) {
	fmt.Fprintf(w, "\n%s AC response (%d frequency points):\n", title, len(points))
	fmt.Fprintln(w, "Frequency      Gain         Phase")
	fmt.Fprintln(w, "----------------------------------")
	for _, p := range points {
		fmt.Fprintf(w, "%-13s  %s  %sdeg\n",
			util.FormatFrequency(float64(p.Freq)),
			util.FormatDecibel(p.Decibel()),
			util.FormatPhase(p.Phase()))
	}
}
