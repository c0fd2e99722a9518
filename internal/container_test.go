//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/orgexport/internal"
	"github.com/rios0rios0/orgexport/internal/infrastructure/controllers"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should wire the export controller with all its collaborators", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()

		// when
		err := internal.RegisterProviders(container)

		// then
		require.NoError(t, err)
		require.NoError(t, container.Invoke(func(ec *controllers.ExportController) {
			require.NotNil(t, ec)
		}))
	})
}
