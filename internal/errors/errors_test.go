package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *LoaderError
		want string
	}{
		{
			name: "message only",
			err:  New(CodeInvalidConfig, "invalid configuration"),
			want: "invalid configuration",
		},
		{
			name: "with path",
			err:  EmptySheetError("roster.xlsx"),
			want: "sheet has no header row (roster.xlsx)",
		},
		{
			name: "with path and cause",
			err:  ReadError("roster.xlsx", fmt.Errorf("zip: not a valid zip file")),
			want: "failed to read file (roster.xlsx): zip: not a valid zip file",
		},
		{
			name: "missing columns lists names",
			err:  MissingColumnsError("lookup.xlsx", []string{"Name", "researcherUserID"}),
			want: "required columns missing: Name, researcherUserID (lookup.xlsx)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestLoaderError_IsAndUnwrap(t *testing.T) {
	err := FileNotFoundError("WorkdayCourses.xlsx", fs.ErrNotExist)
	wrapped := fmt.Errorf("load roster: %w", err)

	assert.True(t, stderrors.Is(wrapped, ErrFileNotFound))
	assert.True(t, stderrors.Is(wrapped, fs.ErrNotExist))
	assert.False(t, stderrors.Is(wrapped, ErrReadFailed))

	var le *LoaderError
	require.True(t, stderrors.As(wrapped, &le))
	assert.Equal(t, "WorkdayCourses.xlsx", le.Path)
}

func TestLoaderError_IsMatchesPath(t *testing.T) {
	err := WriteError("out.xlsx", fs.ErrPermission)

	assert.True(t, stderrors.Is(err, &LoaderError{Code: CodeWriteFailed, Path: "out.xlsx"}))
	assert.False(t, stderrors.Is(err, &LoaderError{Code: CodeWriteFailed, Path: "other.xlsx"}))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: fmt.Errorf("boom"), want: ""},
		{name: "direct", err: WriteError("x.xlsx", nil), want: CodeWriteFailed},
		{
			name: "step wrapper is skipped",
			err:  StepError("load", MissingColumnsError("x.xlsx", []string{"Title"})),
			want: CodeMissingColumns,
		},
		{
			name: "step wrapper around plain error",
			err:  StepError("transform", fmt.Errorf("boom")),
			want: CodeStepFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}
