/*
Copyright (c) The acdp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command acdpd runs the analyzer daemon: it opens a signal source,
// pumps its output through the sender façade onto a queue, and serves
// that queue to a single connected client over a framed transport
// listener.
//
// Grounded on _examples/facebook-time/cmd/ptp4u/main.go's flag/config
// wiring and _examples/facebook-time/ptp/c4u/c4u.go's SdNotify helper.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/suscan/acdp/config"
	"github.com/suscan/acdp/message"
	"github.com/suscan/acdp/queue"
	"github.com/suscan/acdp/sender"
	"github.com/suscan/acdp/source"
	"github.com/suscan/acdp/transport"
)

// drivers is the registry of sources acdpd can open by name. Real SDR
// hardware drivers are out of scope here (spec Non-goal "real-time
// DSP"); "null" is the only built-in, for dry runs and smoke tests.
var drivers = map[string]func() (source.Source, error){
	"null": func() (source.Source, error) {
		return source.NewNullSource(source.Info{Driver: "null"}), nil
	},
}

func main() {
	configPath := flag.String("config", "", "path to a YAML service config")
	logLevel := flag.String("loglevel", "", "override the config's log level: debug, info, warning, error")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("missing required -config flag")
	}
	cfg, err := config.ReadServiceConfig(*configPath)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("unrecognized log level %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	open, ok := drivers[cfg.Source]
	if !ok {
		log.Fatalf("unrecognized source driver %q", cfg.Source)
	}
	src, err := open()
	if err != nil {
		log.Fatalf("opening source %q: %v", cfg.Source, err)
	}
	defer src.Close()

	reg := prometheus.NewRegistry()
	metrics := queue.NewMetrics(reg)
	q := queue.New(cfg.QueueSize, metrics)
	defer q.Close()

	expiry := queue.NewExpiryTracker()
	if cfg.ExpiryThreshold > 0 {
		expiry.Threshold = cfg.ExpiryThreshold
	}
	expiry.Metrics = metrics

	snd := sender.New(q)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.MonitoringAddr != "" {
		go serveMonitoring(cfg.MonitoringAddr, reg)
	}

	go pumpSource(ctx, src, snd)

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("listening on %s: %v", cfg.ListenAddr, err)
	}
	defer ln.Close()

	log.Infof("acdpd listening on %s, source %q", cfg.ListenAddr, cfg.Source)
	if err := sdNotifyReady(); err != nil {
		log.Warningf("sd_notify failed: %v", err)
	}

	go acceptLoop(ctx, ln, q, expiry)

	<-ctx.Done()
	log.Info("shutting down")
}

func serveMonitoring(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.Infof("monitoring listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorf("monitoring server: %v", err)
	}
}

// sdNotifyReady notifies systemd the daemon is ready, tolerating an
// environment with no systemd supervision at all.
func sdNotifyReady() error {
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if !supported && err != nil {
		return err
	} else if !supported {
		log.Debug("sd_notify not supported")
	}
	return nil
}

// pumpSource polls src's three feeds and hands each result to the
// sender façade until ctx is cancelled. The three feeds run under one
// errgroup so a panic-free exit of any of them is waited on cleanly
// instead of leaking goroutines past daemon shutdown.
func pumpSource(ctx context.Context, src source.Source, snd *sender.Sender) {
	info := src.Info()
	if err := snd.SendSourceInfo(info); err != nil {
		log.Errorf("sending source info: %v", err)
	}

	eg := new(errgroup.Group)
	eg.Go(func() error { pumpChannels(ctx, src, snd); return nil })
	eg.Go(func() error { pumpSpectrum(ctx, src, snd); return nil })
	eg.Go(func() error { pumpSamples(ctx, src, snd); return nil })
	if err := eg.Wait(); err != nil {
		log.Errorf("source pump: %v", err)
	}
}

func pumpChannels(ctx context.Context, src source.Source, snd *sender.Sender) {
	for {
		dets, err := src.NextChannel(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Errorf("reading channel detections: %v", err)
				_ = snd.SendReadError(-1, err.Error())
			}
			return
		}
		if err := snd.SendChannel(dets); err != nil {
			log.Debugf("dropping channel update: %v", err)
		}
	}
}

func pumpSpectrum(ctx context.Context, src source.Source, snd *sender.Sender) {
	for {
		frame, err := src.NextSpectrum(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Errorf("reading spectrum frame: %v", err)
				_ = snd.SendReadError(-1, err.Error())
			}
			return
		}
		if err := snd.SendPsd(frame); err != nil {
			log.Debugf("dropping PSD frame: %v", err)
		}
	}
}

func pumpSamples(ctx context.Context, src source.Source, snd *sender.Sender) {
	for {
		batch, err := src.NextSamples(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Errorf("reading sample batch: %v", err)
				_ = snd.SendReadError(-1, err.Error())
			}
			return
		}
		if err := snd.SendSamples(batch); err != nil {
			log.Debugf("dropping sample batch: %v", err)
		}
	}
}

// acceptLoop serves the current queue contents to one client connection
// at a time over the framed transport (spec §6).
func acceptLoop(ctx context.Context, ln net.Listener, q *queue.Queue, expiry *queue.ExpiryTracker) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Errorf("accept: %v", err)
			continue
		}
		serveClient(ctx, conn, q, expiry)
	}
}

// serveClient runs the version handshake (the client's first frame is
// its protocol version; a compatible peer gets a success SourceInit
// reply, an incompatible one a failure reply and a closed connection)
// before streaming the queue's contents.
func serveClient(ctx context.Context, conn net.Conn, q *queue.Queue, expiry *queue.ExpiryTracker) {
	defer conn.Close()
	w := transport.NewWriter(conn)

	r := transport.NewReader(conn)
	peerVersion, err := r.ReadFrame()
	if err != nil {
		log.Debugf("handshake read failed: %v", err)
		return
	}
	ok, err := message.CompatibleWith(string(peerVersion))
	if err != nil || !ok {
		log.Warningf("rejecting client %s: incompatible protocol version %q", conn.RemoteAddr(), peerVersion)
		_ = w.WriteValue(message.NewStatus(message.TypeSourceInit, message.InitFailure, fmt.Sprintf("incompatible protocol version %q", peerVersion)))
		return
	}
	if err := w.WriteValue(message.NewStatus(message.TypeSourceInit, message.InitSuccess, "ok")); err != nil {
		log.Debugf("handshake reply failed: %v", err)
		return
	}

	for {
		env, err := q.Read(ctx)
		if err != nil {
			return
		}
		// Channel messages are process-local only (spec §6/§9); the codec
		// rejects them outright, so drop them here rather than let a
		// failed WriteValue tear down the connection.
		if env.Value.Type() == message.TypeChannel {
			message.Dispose(env.Value)
			continue
		}
		if !expiry.ShouldDispatch(env.Value) {
			continue
		}
		if err := w.WriteValue(env.Value); err != nil {
			log.Debugf("client write failed: %v", err)
			return
		}
	}
}
