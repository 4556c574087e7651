package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTips(t *testing.T) {
	got := Tips()
	assert.Len(t, got, 8)
	assert.Equal(t, "Write code that is easy to understand, not clever.", got[0])

	got[0] = "changed"
	assert.NotEqual(t, "changed", Tips()[0])
}

func TestAbout(t *testing.T) {
	got := About()
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.NotEmpty(t, p)
	}
}
