// Package metrics exposes Prometheus counters for packet encode/decode
// activity and the error taxonomy packet.Classify produces: counter
// vectors labeled by packet type or error kind plus two byte counters,
// registered once, incremented inline by callers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sparrowmqtt/mqtt5/packet"
)

// Collectors groups every metric this module exposes. The zero value is
// not usable; construct with New.
type Collectors struct {
	PacketsEncoded *prometheus.CounterVec
	PacketsDecoded *prometheus.CounterVec
	BytesEncoded   prometheus.Counter
	BytesDecoded   prometheus.Counter
	DecodeErrors   *prometheus.CounterVec
}

// New builds a fresh Collectors. Callers register it with a
// prometheus.Registerer of their choosing (or prometheus.DefaultRegisterer
// via Register) — construction alone has no global side effect.
func New() *Collectors {
	return &Collectors{
		PacketsEncoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqtt5_packets_encoded_total",
			Help: "Total control packets encoded, by packet type.",
		}, []string{"type"}),
		PacketsDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqtt5_packets_decoded_total",
			Help: "Total control packets decoded, by packet type.",
		}, []string{"type"}),
		BytesEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mqtt5_bytes_encoded_total",
			Help: "Total wire bytes produced by Encode calls.",
		}),
		BytesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mqtt5_bytes_decoded_total",
			Help: "Total wire bytes consumed by Decode calls.",
		}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqtt5_decode_errors_total",
			Help: "Total decode failures, by error kind (malformed, protocol, other).",
		}, []string{"kind"}),
	}
}

// Register adds every collector in c to reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, coll := range []prometheus.Collector{c.PacketsEncoded, c.PacketsDecoded, c.BytesEncoded, c.BytesDecoded, c.DecodeErrors} {
		if err := reg.Register(coll); err != nil {
			return err
		}
	}
	return nil
}

// ObserveEncode records one successful Encode of the named packet type.
func (c *Collectors) ObserveEncode(typ packet.Type, n int) {
	c.PacketsEncoded.WithLabelValues(typ.String()).Inc()
	c.BytesEncoded.Add(float64(n))
}

// ObserveDecode records one successful Decode of the named packet type.
func (c *Collectors) ObserveDecode(typ packet.Type, n int) {
	c.PacketsDecoded.WithLabelValues(typ.String()).Inc()
	c.BytesDecoded.Add(float64(n))
}

// ObserveDecodeError records a failed Decode, classifying err the same
// way the codec itself does.
func (c *Collectors) ObserveDecodeError(err error) {
	kind := "other"
	if pe := packet.Classify(err); pe != nil {
		switch pe.Kind {
		case packet.Malformed:
			kind = "malformed"
		case packet.Protocol:
			kind = "protocol"
		}
	}
	c.DecodeErrors.WithLabelValues(kind).Inc()
}
