package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/wellmaintained/cachekey/internal/errors"
)

func TestMatchRequiresArgs(t *testing.T) {
	err := matchCmd.Args(matchCmd, []string{})
	assert.Error(t, err)

	err = matchCmd.Args(matchCmd, []string{"FOO*"})
	assert.NoError(t, err)
}

func TestMatchValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "plain pattern", args: []string{"FOO"}, wantErr: false},
		{name: "exclusion pattern", args: []string{"!FOO"}, wantErr: false},
		{name: "several patterns", args: []string{"BUILD_*", "!BUILD_SCRATCH"}, wantErr: false},
		{name: "blank pattern", args: []string{"  "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := matchCmd.PreRunE(&cobra.Command{}, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 2, errors.GetExitCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
