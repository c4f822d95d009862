package main

import (
	"testing"

	"github.com/attohq/attoval/value"
	"github.com/stretchr/testify/assert"
)

func TestFormatTemplateAgainstParsedArgs(t *testing.T) {
	args := value.ParseJSON(value.NewStringFromBytes([]byte(`["world"]`)))
	out := value.NewStringFromBytes([]byte("hello {0}")).Format(args)
	assert.Equal(t, "hello world", out.String())
}
