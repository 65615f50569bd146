package client

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

var errNotReady = errors.New("gathering not ready")

type pollConfig struct {
	initial time.Duration
	max     time.Duration
}

func defaultPollConfig() pollConfig {
	return pollConfig{initial: 500 * time.Millisecond, max: 5 * time.Second}
}

// WaitGatheringReady polls GetGathering until the gathering's game server has
// been assigned an address, then returns the gathering.
//
// Only "not ready yet" is polled again. Any error from GetGathering ends the
// wait and is returned unchanged; bound the wait with ctx.
func (c *Client) WaitGatheringReady(ctx context.Context, req *GetGatheringRequest) (*Gathering, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.poll.initial
	exp.MaxInterval = c.poll.max
	exp.Multiplier = 2
	exp.MaxElapsedTime = 0
	exp.Reset()

	var ready *Gathering
	poll := func() error {
		g, err := c.GetGathering(ctx, req)
		if err != nil {
			return backoff.Permanent(err)
		}
		if g == nil || !g.Ready() {
			return errNotReady
		}
		ready = g
		return nil
	}
	notify := func(_ error, wait time.Duration) {
		log.Debug().
			Str("gathering_pool", req.GatheringPoolName).
			Str("gathering", req.GatheringName).
			Dur("next_poll", wait).
			Msg("gathering not ready yet")
	}

	if err := backoff.RetryNotify(poll, backoff.WithContext(exp, ctx), notify); err != nil {
		return nil, err
	}
	return ready, nil
}
