// SPDX-License-Identifier: MIT
package trace_test

import (
	"testing"

	"github.com/colkit/rangeselect/internal/trace"
	"github.com/stretchr/testify/require"
)

func TestNoopDiscardsEverything(t *testing.T) {
	require.NotPanics(t, func() {
		trace.Noop.Trace(trace.EventStrategyChosen, map[string]any{"strategy": "scan"})
	})
}

func TestCollectorRecordsInOrder(t *testing.T) {
	c := &trace.Collector{}
	c.Trace(trace.EventHashBuilt, nil)
	c.Trace(trace.EventStrategyChosen, map[string]any{"strategy": "hash"})

	require.Equal(t, 2, c.Len())
	require.Equal(t, trace.EventHashBuilt, c.Events[0].Event)
	require.Equal(t, trace.EventStrategyChosen, c.Events[1].Event)
	require.Equal(t, "hash", c.Events[1].Fields["strategy"])
}

func TestSinkFuncAdapts(t *testing.T) {
	var got trace.Event
	s := trace.SinkFunc(func(evt trace.Event, _ map[string]any) { got = evt })
	s.Trace(trace.EventPageSkipped, nil)
	require.Equal(t, trace.EventPageSkipped, got)
}
