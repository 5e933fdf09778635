package scan

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yougoldberg/yougoldberg/internal/catalog"
	"github.com/yougoldberg/yougoldberg/internal/probe"
)

type Scanner struct {
	prober probe.Prober
	cfg    Config
	log    logrus.FieldLogger

	sleep func(ctx context.Context, d time.Duration) error
}

func NewScanner(prober probe.Prober, cfg Config, log logrus.FieldLogger) *Scanner {
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	return &Scanner{
		prober: prober,
		cfg:    cfg,
		log:    log,
		sleep:  sleepContext,
	}
}

// Run probes every platform in order, one at a time, and returns the profiles
// that answered 200. Transport errors only affect their own platform.
//
// The returned error is non-nil when rc is invalid (nothing is probed) or when
// ctx is cancelled; in the latter case the profiles found so far are returned.
func (s *Scanner) Run(ctx context.Context, platforms []catalog.Platform, rc RunConfig, obs Observer) ([]FoundProfile, error) {
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = nopObserver{}
	}

	found := make([]FoundProfile, 0)
	total := len(platforms)

	for i, p := range platforms {
		if err := ctx.Err(); err != nil {
			return found, err
		}

		res := s.probeOne(ctx, p, rc, Progress{Index: i + 1, Total: total, Platform: p.Name}, obs)

		switch {
		case !res.Succeeded:
			s.log.WithFields(logrus.Fields{
				"platform": res.Platform,
				"url":      res.URL,
			}).WithError(res.Err).Debug("probe failed")
			if rc.Verbose {
				obs.Failure(Failure{Platform: res.Platform, URL: res.URL, Err: res.Err})
			}
		case rc.Verbose:
			obs.Detail(Detail{Platform: res.Platform, StatusCode: res.StatusCode, URL: res.URL})
		}

		if probe.Classify(res.Succeeded, res.StatusCode) {
			fp := FoundProfile{Platform: res.Platform, URL: res.URL, ResponseCode: res.StatusCode}
			found = append(found, fp)
			obs.Found(fp)
		}

		if err := s.sleep(ctx, s.cfg.Delay); err != nil {
			return found, err
		}
	}

	return found, nil
}

func (s *Scanner) probeOne(ctx context.Context, p catalog.Platform, rc RunConfig, progress Progress, obs Observer) ProbeResult {
	target := catalog.Format(p.URLTemplate, rc.Username)
	obs.Progress(progress)

	code, err := s.prober.Probe(ctx, target, rc.Timeout())
	return ProbeResult{
		Platform:   p.Name,
		URL:        target,
		StatusCode: code,
		Succeeded:  err == nil,
		Err:        err,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
