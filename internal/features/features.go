package features

import (
	"bufio"
	"fmt"
	"io"
)

const (
	// FirstDay and LastDay bound the puzzle days, inclusive.
	FirstDay = 1
	LastDay  = 25

	// GroupSize is the number of labels printed per line of the default list.
	GroupSize = 5

	groupIndent = "    "
)

// Label returns the feature label for one day, e.g. Label("2022", 3) → "y2022d03".
// The year is interpolated verbatim.
func Label(year string, day int) string {
	return fmt.Sprintf("y%sd%02d", year, day)
}

// Days returns FirstDay..LastDay in ascending order.
func Days() []int {
	days := make([]int, 0, LastDay-FirstDay+1)
	for day := FirstDay; day <= LastDay; day++ {
		days = append(days, day)
	}
	return days
}

// Labels returns the labels for every day of the year in ascending order.
func Labels(year string) []string {
	days := Days()
	labels := make([]string, len(days))
	for i, day := range days {
		labels[i] = Label(year, day)
	}
	return labels
}

// Write renders the feature table for year to w.
func Write(w io.Writer, year string) error {
	bw := bufio.NewWriter(w)
	labels := Labels(year)

	fmt.Fprintln(bw, "default = [...")
	for i, label := range labels {
		if i%GroupSize == 0 {
			fmt.Fprint(bw, groupIndent)
		}
		fmt.Fprintf(bw, "\"%s\",", label)
		if i%GroupSize == GroupSize-1 {
			fmt.Fprintln(bw)
		}
	}
	fmt.Fprintln(bw, "...]")
	fmt.Fprintln(bw)

	for _, label := range labels {
		fmt.Fprintf(bw, "%s = []\n", label)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing features for year %q: %w", year, err)
	}
	return nil
}
