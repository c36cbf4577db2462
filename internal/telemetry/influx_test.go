package telemetry

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestRecorder_DisabledIsSafe(t *testing.T) {
	viper.Reset()
	viper.Set("influx.enabled", false)

	r := New(zerolog.Nop())
	require.NotNil(t, r)

	// Every method must be a no-op on a disabled recorder.
	r.RecordAction("phandalin", "AddMarker")
	r.RecordSave("phandalin", 15*time.Millisecond, true)
	r.RecordSave("phandalin", 15*time.Millisecond, false)
	r.Close()
}

func TestSaveResult(t *testing.T) {
	require.Equal(t, "success", saveResult(true))
	require.Equal(t, "failure", saveResult(false))
}
