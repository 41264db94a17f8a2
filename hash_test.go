package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashName(t *testing.T) {
	// djb2-xor reference values.
	assert.Equal(t, uint32(5381), hashName(""))
	assert.Equal(t, uint32(177604), hashName("a"))

	assert.Equal(t, hashName("startup"), hashName("startup"), "Hash must be deterministic")
	assert.NotEqual(t, hashName("startup"), hashName("shutdown"))
}
