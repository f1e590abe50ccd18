package features

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		year string
		day  int
		want string
	}{
		{"2022", 1, "y2022d01"},
		{"2022", 9, "y2022d09"},
		{"2022", 10, "y2022d10"},
		{"23", 25, "y23d25"},
		{"", 4, "yd04"},
		{"next", 12, "ynextd12"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.year, tt.day))
		})
	}
}

func TestDays(t *testing.T) {
	days := Days()
	require.Len(t, days, 25)
	for i, day := range days {
		assert.Equal(t, i+1, day)
	}
}

func TestLabels(t *testing.T) {
	labels := Labels("2015")
	require.Len(t, labels, 25)
	assert.Equal(t, "y2015d01", labels[0])
	assert.Equal(t, "y2015d25", labels[24])
}

func render(t *testing.T, year string) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, year))
	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestWrite_Shape(t *testing.T) {
	lines := render(t, "2022")

	// header + 5 groups + footer + blank + 25 assignments
	require.Len(t, lines, 1+5+1+1+25)
	assert.Equal(t, "default = [...", lines[0])
	assert.Equal(t, "...]", lines[6])
	assert.Equal(t, "", lines[7])

	for g, line := range lines[1:6] {
		assert.True(t, strings.HasPrefix(line, "    "), "group %d is not indented: %q", g, line)
		assert.False(t, strings.HasPrefix(line, "     "), "group %d is over-indented: %q", g, line)

		labels := strings.Split(strings.TrimSuffix(strings.TrimPrefix(line, "    "), ","), ",")
		require.Len(t, labels, GroupSize)
		for i, quoted := range labels {
			day := g*GroupSize + i + 1
			assert.Equal(t, `"`+Label("2022", day)+`"`, quoted)
		}
	}

	for i, line := range lines[8:] {
		assert.Equal(t, Label("2022", i+1)+" = []", line)
	}
}

func TestWrite_Year23(t *testing.T) {
	lines := render(t, "23")

	assert.Equal(t, `    "y23d01","y23d02","y23d03","y23d04","y23d05",`, lines[1])
	assert.Equal(t, `    "y23d21","y23d22","y23d23","y23d24","y23d25",`, lines[5])
	assert.Equal(t, "y23d01 = []", lines[8])
	assert.Equal(t, "y23d25 = []", lines[len(lines)-1])
}

func TestWrite_VerbatimYear(t *testing.T) {
	for _, year := range []string{"", "abc", `q"x`, "20 22"} {
		t.Run(year, func(t *testing.T) {
			lines := render(t, year)
			assert.Equal(t, `    "y`+year+`d01",`, lines[1][:len(`    "y`+year+`d01",`)])
			assert.Equal(t, "y"+year+"d25 = []", lines[len(lines)-1])
		})
	}
}

func TestWrite_Idempotent(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, "2024"))
	require.NoError(t, Write(&b, "2024"))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriteError(t *testing.T) {
	err := Write(failingWriter{}, "2022")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
