package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "no path",
			err:  errors.New("system query option not allowed: $expand"),
			want: "system query option not allowed: $expand",
		},
		{
			name: "tmp path stripped",
			err:  errors.New("failed to read request document: open /tmp/work/request.yaml: no such file"),
			want: "failed to read request document: open <path>: no such file",
		},
		{
			name: "home path stripped",
			err:  errors.New("open /home/dev/metadata.yaml: permission denied"),
			want: "open <path>: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	assert.True(t, result.IsError)
	assert.Len(t, result.Content, 1)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))
	s := makeSlice[int](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}
