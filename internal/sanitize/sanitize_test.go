package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextStripsMarkup(t *testing.T) {
	assert.Equal(t, "hello", Text("<b>hello</b>"))
	assert.Equal(t, "", Text("<script>alert(1)</script>"))
	assert.Equal(t, "click here", Text(`<a href="https://evil.example">click here</a>`))
}

func TestTextKeepsPlainText(t *testing.T) {
	assert.Equal(t, "Mahjong at 3pm, bring friends!", Text("  Mahjong at 3pm, bring friends!  "))
}
