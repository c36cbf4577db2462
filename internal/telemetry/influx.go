// Package telemetry optionally records edit-session measurements (applied
// actions, save timings) to InfluxDB. Disabled by default; every method is
// safe to call on a disabled recorder.
package telemetry

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2api "github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Recorder writes edit telemetry points through the non-blocking write API.
type Recorder struct {
	client  influxdb2.Client
	write   influxdb2api.WriteAPI
	enabled bool
	log     zerolog.Logger
}

// New creates a recorder from the influx.* configuration. When influx is
// disabled or unreachable the recorder is returned in disabled state.
func New(log zerolog.Logger) *Recorder {
	r := &Recorder{log: log}
	if !viper.GetBool("influx.enabled") {
		return r
	}

	r.client = influxdb2.NewClientWithOptions(
		fmt.Sprintf(
			"%s://%s:%s",
			viper.GetString("influx.protocol"),
			viper.GetString("influx.host"),
			viper.GetString("influx.port"),
		),
		viper.GetString("influx.token"),
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)

	running, err := r.client.Ping(context.Background())
	if err != nil || !running {
		r.log.Warn().Err(err).Msg("InfluxDB unreachable, edit telemetry disabled")
		r.client.Close()
		r.client = nil
		return r
	}

	r.write = r.client.WriteAPI(
		viper.GetString("influx.org"),
		viper.GetString("influx.bucket"),
	)
	r.enabled = true
	r.log.Info().Msg("InfluxDB edit telemetry enabled")
	return r
}

// RecordAction records one applied editor action.
func (r *Recorder) RecordAction(mapKey, action string) {
	if !r.enabled {
		return
	}
	p := influxdb2.NewPoint(
		"editor_actions",
		map[string]string{"mapKey": mapKey, "action": action},
		map[string]any{"count": 1},
		time.Now(),
	)
	r.write.WritePoint(p)
}

// RecordSave records a save attempt with its duration and outcome.
func (r *Recorder) RecordSave(mapKey string, duration time.Duration, ok bool) {
	if !r.enabled {
		return
	}
	p := influxdb2.NewPoint(
		"editor_saves",
		map[string]string{"mapKey": mapKey, "result": saveResult(ok)},
		map[string]any{"durationMs": duration.Milliseconds()},
		time.Now(),
	)
	r.write.WritePoint(p)
}

func saveResult(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// Close flushes pending points and shuts the client down.
func (r *Recorder) Close() {
	if r.client == nil {
		return
	}
	if r.write != nil {
		r.write.Flush()
	}
	r.client.Close()
}
