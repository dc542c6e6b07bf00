// Command simreplay builds a small scenario in the in-memory data store,
// replays it through the time controller, and exposes store metrics. A LEO
// satellite is propagated from a TLE into the platform's update history; a
// ground station rides along as a static platform with a target beam and
// range gate tracking the satellite.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/simstore/internal/logging"
	"github.com/signalsfoundry/simstore/internal/observability"
	"github.com/signalsfoundry/simstore/model"
	"github.com/signalsfoundry/simstore/store"
	"github.com/signalsfoundry/simstore/timectrl"
)

func main() {
	duration := flag.Float64("duration", 600, "scenario seconds to replay")
	tick := flag.Float64("tick", 10, "scenario seconds per step")
	interval := flag.Duration("interval", 100*time.Millisecond, "wall-clock interval between steps")
	live := flag.Bool("live", false, "bind a live-mode clock (platforms never expire)")
	metricsAddr := flag.String("metrics-addr", ":9109", "address for the /metrics endpoint")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error("tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	collector, err := observability.NewStoreCollector(nil)
	if err != nil {
		log.Error("metrics init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
			log.Warn("metrics server stopped", logging.String("error", err.Error()))
		}
	}()

	ds := store.New(store.WithLogger(log), store.WithMetricsRecorder(collector))
	ds.SetInterpolator(store.LinearInterpolator{})
	ds.EnableInterpolation(true)

	mode := timectrl.Replay
	if *live {
		mode = timectrl.Live
	}
	tc := timectrl.NewController(0, *tick, mode)
	ds.BindClock(tc)

	satId, groundId, beamId, gateId := buildScenario(ds, *duration, *tick)
	log.Info("scenario built",
		logging.Uint64("satellite", uint64(satId)),
		logging.Uint64("ground", uint64(groundId)),
		logging.Uint64("beam", uint64(beamId)),
		logging.Uint64("gate", uint64(gateId)))

	tracer := otel.Tracer("simreplay")
	tc.AddListener(func(t float64) {
		_, span := tracer.Start(ctx, "advance",
			trace.WithAttributes(attribute.Float64("scenario.time", t)))
		ds.Update(t)
		span.End()

		if cur := ds.PlatformUpdateSlice(satId).Current(); cur != nil {
			fmt.Printf("[t=%7.1f] sat @ (%.0f, %.0f, %.0f) m, beam current=%v\n",
				t, cur.Position.X, cur.Position.Y, cur.Position.Z,
				ds.BeamUpdateSlice(beamId).Current() != nil)
		} else {
			fmt.Printf("[t=%7.1f] sat expired\n", t)
		}
	})

	log.Info("starting replay",
		logging.Float64("duration", *duration),
		logging.Float64("tick", *tick),
		logging.String("mode", map[bool]string{false: "replay", true: "live"}[*live]))
	<-tc.Run(*interval, *duration)
	log.Info("replay complete", logging.Float64("final_time", ds.UpdateTime()))
}

// ISS TLE used as the demo orbit.
const (
	tleLine1 = "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990"
	tleLine2 = "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760"
)

// buildScenario populates the store: one TLE-propagated satellite platform,
// one static ground station, a target beam on the ground station tracking
// the satellite, and a range gate on the beam.
func buildScenario(ds *store.Store, duration, tick float64) (satId, groundId, beamId, gateId model.ObjectId) {
	props, tx := ds.MutableScenarioProperties()
	props.ReferenceYear = 2021
	props.Description = "simreplay demo scenario"
	tx.Commit()
	tx.Release()

	satProps, satTx := ds.AddPlatform()
	satId = satProps.Id
	satProps.OriginalId = 25544
	satTx.Commit()
	satTx.Release()

	satPrefs, prefsTx := ds.MutablePlatformPrefs(satId)
	satPrefs.Name = "LEO-Sat-1"
	satPrefs.DataDraw = true
	satPrefs.InterpolatePos = true
	prefsTx.Commit()
	prefsTx.Release()

	// propagate the TLE into the satellite's recorded history
	sat := satellite.TLEToSat(tleLine1, tleLine2, satellite.GravityWGS72)
	epoch := time.Date(2021, time.October, 2, 14, 11, 0, 0, time.UTC)
	const kmToM = 1000.0
	for t := 0.0; t <= duration; t += tick {
		at := epoch.Add(time.Duration(t * float64(time.Second)))
		year, month, day := at.Date()
		hour, min, sec := at.Clock()
		posECI, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
		gmst := satellite.ThetaG_JD(satellite.JDay(year, int(month), day, hour, min, sec))
		posECEF := satellite.ECIToECEF(posECI, gmst)

		updTx := ds.AddPlatformUpdate(satId, model.PlatformUpdate{
			Time: t,
			Position: model.Position{
				X: posECEF.X * kmToM,
				Y: posECEF.Y * kmToM,
				Z: posECEF.Z * kmToM,
			},
			HasPosition: true,
		})
		updTx.Commit()
		updTx.Release()
	}

	groundProps, groundTx := ds.AddPlatform()
	groundId = groundProps.Id
	groundTx.Commit()
	groundTx.Release()

	groundPrefs, gpTx := ds.MutablePlatformPrefs(groundId)
	groundPrefs.Name = "Equator-GS"
	groundPrefs.DataDraw = true
	gpTx.Commit()
	gpTx.Release()

	// static platform: a single update at the static time sentinel
	staticTx := ds.AddPlatformUpdate(groundId, model.PlatformUpdate{
		Time:        model.StaticTime,
		Position:    model.Position{X: 6371000},
		HasPosition: true,
	})
	staticTx.Commit()
	staticTx.Release()

	beamProps, beamTx := ds.AddBeam()
	beamId = beamProps.Id
	beamProps.HostId = groundId
	beamProps.Kind = model.BeamTarget
	beamTx.Commit()
	beamTx.Release()

	beamPrefs, bpTx := ds.MutableBeamPrefs(beamId)
	beamPrefs.Name = "uplink"
	beamPrefs.DataDraw = true
	beamPrefs.TargetId = satId
	beamPrefs.HorizontalWidth = 0.05
	beamPrefs.VerticalWidth = 0.05
	bpTx.Commit()
	bpTx.Release()

	gateProps, gateTx := ds.AddGate()
	gateId = gateProps.Id
	gateProps.HostId = beamId
	gateProps.Kind = model.GateTarget
	gateTx.Commit()
	gateTx.Release()

	gatePrefs, gateprefsTx := ds.MutableGatePrefs(gateId)
	gatePrefs.Name = "range-gate"
	gatePrefs.DataDraw = true
	gateprefsTx.Commit()
	gateprefsTx.Release()

	return satId, groundId, beamId, gateId
}
