package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("cell 42", From("cell %d", 42))
	assert.Equal("plain", From("plain"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "%v: %v\n", "add", "ok")
	assert.NoError(err)
	assert.Equal(8, n)
	assert.Equal("add: ok\n", buf.String())
}
