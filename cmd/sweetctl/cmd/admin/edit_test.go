package admin

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
)

func TestMergeEdit(t *testing.T) {
	var flags forms.Sweet
	cmd := &cobra.Command{Use: "edit"}
	bindSweetFlags(cmd, &flags)
	require.NoError(t, cmd.ParseFlags([]string{"--price", "5", "--name", "Kaju Katli"}))

	current := forms.Sweet{Name: "Katli", Category: "Indian", Price: "4.5", Quantity: "20"}
	got := mergeEdit(cmd, current, flags)

	assert.Equal(t, forms.Sweet{Name: "Kaju Katli", Category: "Indian", Price: "5", Quantity: "20"}, got)
}

func TestMergeEdit_ExplicitEmptyIsKept(t *testing.T) {
	var flags forms.Sweet
	cmd := &cobra.Command{Use: "edit"}
	bindSweetFlags(cmd, &flags)
	require.NoError(t, cmd.ParseFlags([]string{"--category", ""}))

	got := mergeEdit(cmd, forms.Sweet{Name: "Katli", Category: "Indian", Price: "4", Quantity: "1"}, flags)
	_, err := got.Validate()
	assert.Error(t, err, "an explicitly emptied field fails validation instead of silently keeping the old value")
}
