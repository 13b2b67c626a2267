package blinkplugin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlinkRegistration(t *testing.T) {
	t.Parallel()

	p := New()
	require.Equal(t, "blink", p.Name())

	reg := p.Register()
	require.Equal(t, "5", reg.Styles["blink"])
	require.Equal(t, "6", reg.Styles["rapid_blink"])
}
