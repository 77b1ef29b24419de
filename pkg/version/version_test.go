package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := Get()

	assert.Equal(t, Version, v.Version)
	assert.Equal(t, Commit, v.GitCommit)
	assert.Equal(t, BuildTime, v.BuildTime)
	assert.NotEmpty(t, v.GoVersion)
	assert.Contains(t, v.Platform, "/")
}

func TestString(t *testing.T) {
	s := Info{
		Version:   "1.2.3",
		GitCommit: "abcdefg",
		BuildTime: "2026-08-30T15:04:05Z",
		GoVersion: "go1.23.1",
		Platform:  "linux/amd64",
	}.String()

	assert.True(t, strings.HasPrefix(s, "collo version 1.2.3"))
	assert.Contains(t, s, "commit: abcdefg")
	assert.Contains(t, s, "linux/amd64")
}
