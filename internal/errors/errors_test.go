package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	ierr "github.com/KriaaCompany/flw-sdk/internal/errors"
)

func TestBuilderMarksAndHints(t *testing.T) {
	t.Parallel()

	err := ierr.NewErrorf("resp field has no %s", "data.id").
		WithHint("resp field is missing data.id").
		WithReportableDetails(map[string]any{"field": "resp"}).
		Mark(ierr.ErrCallback)

	require.True(t, ierr.IsCallback(err))
	require.False(t, ierr.IsDecode(err))
	require.Contains(t, err.Error(), "resp field has no data.id")
	require.Equal(t, []string{"resp field is missing data.id"}, ierr.GetAllHints(err))
}

func TestMarkSurvivesWrapping(t *testing.T) {
	t.Parallel()

	base := ierr.NewError("bad key").Mark(ierr.ErrConfig)
	wrapped := fmt.Errorf("payments: %w", base)

	require.True(t, ierr.IsConfig(wrapped))
	require.True(t, ierr.Is(wrapped, ierr.ErrConfig))
}

func TestInternalErrorIsMatchesCode(t *testing.T) {
	t.Parallel()

	copyOf := &ierr.InternalError{Code: ierr.ErrCodeValidation, Message: "other message"}
	require.True(t, copyOf.Is(ierr.ErrValidation))
	require.False(t, copyOf.Is(ierr.ErrConfig))
	require.Equal(t, "validation_error: other message", copyOf.Error())

	var target *ierr.InternalError
	require.True(t, ierr.As(fmt.Errorf("wrap: %w", copyOf), &target))
	require.Equal(t, ierr.ErrCodeValidation, target.Code)
}

func TestWithMessage(t *testing.T) {
	t.Parallel()

	err := ierr.WithError(fmt.Errorf("unexpected EOF")).
		WithMessage("decoding response").
		Mark(ierr.ErrDecode)
	require.Equal(t, "decoding response: unexpected EOF", err.Error())
	require.True(t, ierr.IsDecode(err))
}
