package golden

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadMissingFixture(t *testing.T) {
	assert.Empty(t, Read(t, t.TempDir(), "absent"))
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	Write(t, dir, "sample", "exact content\n")

	assert.Equal(t, "exact content\n", Read(t, dir, "sample"))
}

func TestCheckMatches(t *testing.T) {
	dir := t.TempDir()
	Write(t, dir, "sample", "line\n")

	Check(t, dir, "sample", "line\n")
}
