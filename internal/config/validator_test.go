package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tealert/internal/dialog"
	tealerterrors "github.com/alexisbeaulieu97/tealert/pkg/errors"
)

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidateDefinition(t *testing.T) {
	t.Parallel()

	no := false
	cases := []struct {
		name  string
		def   *Definition
		field string
		is    error
	}{
		{
			name: "valid action sheet",
			def: &Definition{
				Style:   "action_sheet",
				Title:   "Share",
				Buttons: []Button{{Label: "Copy"}, {Label: "Cancel", Style: "cancel"}},
			},
		},
		{
			name:  "nil definition",
			field: "definition",
		},
		{
			name:  "unknown dialog style",
			def:   &Definition{Style: "popover"},
			field: "style",
		},
		{
			name:  "unknown button style",
			def:   &Definition{Buttons: []Button{{Label: "Go", Style: "loud"}}},
			field: "buttons[0].style",
		},
		{
			name: "second cancel button",
			def: &Definition{Buttons: []Button{
				{Label: "Cancel", Style: "cancel"},
				{Label: "Close", Style: "cancel"},
			}},
			field: "buttons[1].style",
			is:    dialog.ErrDuplicateCancel,
		},
		{
			name: "inputs on an action sheet",
			def: &Definition{
				Style:   "action_sheet",
				Inputs:  []Input{{Placeholder: "Name"}},
				Buttons: []Button{{Label: "OK"}},
			},
			field: "inputs",
			is:    dialog.ErrInputUnsupported,
		},
		{
			name: "duplicate input tag",
			def: &Definition{
				Inputs:  []Input{{Tag: 3}, {Tag: 3}},
				Buttons: []Button{{Label: "OK"}},
			},
			field: "inputs[1].tag",
		},
		{
			name:  "negative char limit",
			def:   &Definition{Inputs: []Input{{CharLimit: -1}}},
			field: "inputs[0].char_limit",
		},
		{
			name:  "undismissable dialog",
			def:   &Definition{Title: "Stuck", DismissOnBackgroundTap: &no},
			field: "buttons",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateDefinition(tc.def)
			if tc.field == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *tealerterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			if tc.is != nil {
				assert.True(t, errors.Is(err, tc.is))
			}
		})
	}
}
