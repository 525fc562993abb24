package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"debug", "net", "ui"}, SplitList(" net, debug,,ui  net"))
	assert.Equal(t, []string{}, SplitList(""))
}

func TestTheme(t *testing.T) {
	assert.NotNil(t, Theme())
}
