package portalsdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	t.Run("replaces all tokens", func(t *testing.T) {
		r := Recipient{Name: "Amy", Phone: "+911", Property: "Sunrise Villa", Budget: "50L"}
		got := RenderTemplate("Hi {{name}} ({{phone}}), {{property}} fits {{budget}}", r)
		require.Equal(t, "Hi Amy (+911), Sunrise Villa fits 50L", got)
	})

	t.Run("property and budget fall back", func(t *testing.T) {
		r := Recipient{Name: "Amy", Phone: "+911"}
		got := RenderTemplate("Hi {{name}}, see {{property}} within {{budget}}", r)
		require.Equal(t, "Hi Amy, see our property within your budget", got)
	})

	t.Run("no tokens passes through", func(t *testing.T) {
		got := RenderTemplate("Open house this Sunday", Recipient{Name: "Amy"})
		require.Equal(t, "Open house this Sunday", got)
	})

	t.Run("repeated tokens all replaced", func(t *testing.T) {
		got := RenderTemplate("{{name}} {{name}}", Recipient{Name: "Amy"})
		require.Equal(t, "Amy Amy", got)
	})
}
