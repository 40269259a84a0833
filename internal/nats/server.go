// Package nats runs the embedded JetStream node whose key-value
// buckets back all pubflow persistence. Nothing listens on the
// network; the planner talks to its own server in-process.
package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/pubflow/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	readyTimeout    = 4 * time.Second
	drainTimeout    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// StartEmbeddedNATS boots a port-less JetStream server storing its
// files under dataDir.
func StartEmbeddedNATS(dataDir string) (*server.Server, error) {
	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   dataDir,
		DontListen: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedded server: %w", err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(readyTimeout) {
		return nil, errors.New("nats server failed to start within timeout")
	}
	logger.Debug("Embedded NATS ready, store dir %s", dataDir)
	return ns, nil
}

// ConnectInProcess dials the embedded server without touching the
// network stack.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	return nats.Connect("", nats.InProcessServer(ns))
}

// CreateJetStream wraps the connection in a JetStream context.
func CreateJetStream(nc *nats.Conn) (jetstream.JetStream, error) {
	return jetstream.New(nc)
}

// Runtime bundles the embedded server, its in-process connection and
// the two pubflow buckets.
type Runtime struct {
	Data      jetstream.KeyValue
	ChangeLog jetstream.KeyValue

	ns *server.Server
	nc *nats.Conn
}

// Open starts the embedded server and provisions both buckets. Callers
// must Close the runtime when done.
func Open(ctx context.Context, dataDir string) (*Runtime, error) {
	ns, err := StartEmbeddedNATS(dataDir)
	if err != nil {
		return nil, err
	}
	nc, err := ConnectInProcess(ns)
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("connecting in-process: %w", err)
	}
	js, err := CreateJetStream(nc)
	if err != nil {
		_ = Shutdown(nc, ns)
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	data, err := SetupDataBucket(ctx, js)
	if err != nil {
		_ = Shutdown(nc, ns)
		return nil, fmt.Errorf("opening data bucket: %w", err)
	}
	changeLog, err := SetupChangeLogBucket(ctx, js)
	if err != nil {
		_ = Shutdown(nc, ns)
		return nil, fmt.Errorf("opening change log bucket: %w", err)
	}

	return &Runtime{Data: data, ChangeLog: changeLog, ns: ns, nc: nc}, nil
}

// Close drains the connection and stops the server.
func (r *Runtime) Close() error {
	return Shutdown(r.nc, r.ns)
}

// Shutdown drains the connection, then stops the server. Both steps
// are bounded so a wedged store never hangs program exit.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		drained := make(chan error, 1)
		go func() { drained <- nc.Drain() }()
		select {
		case err := <-drained:
			if err != nil {
				logger.Warn("NATS drain failed, closing: %v", err)
				nc.Close()
			}
		case <-time.After(drainTimeout):
			logger.Warn("NATS drain timed out, closing")
			nc.Close()
		}
	}

	if ns != nil {
		ns.Shutdown()
		stopped := make(chan struct{})
		go func() {
			ns.WaitForShutdown()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(shutdownTimeout):
			return errors.New("nats server shutdown timed out")
		}
	}
	return nil
}
